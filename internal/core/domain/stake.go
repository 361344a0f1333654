package domain

import (
	"math"
	"time"
)

// Stake records a single-unit item held in staking custody. StakedAt is the
// accrual anchor: rewards accumulate from it and claiming resets it.
type Stake struct {
	ItemID   uint64    `json:"item_id"`
	Staker   string    `json:"staker"`
	StakedAt time.Time `json:"staked_at"`
}

// Accrued returns the reward earned by this stake at `now`, truncating
// sub-second remainders so the treasury is never over-paid. The product
// saturates at MaxUint64 instead of wrapping; a saturated claim then fails
// against the treasury balance rather than paying out a tiny wrapped amount.
func (s Stake) Accrued(now time.Time, ratePerSecond uint64) uint64 {
	elapsed := now.Sub(s.StakedAt)
	if elapsed <= 0 || ratePerSecond == 0 {
		return 0
	}
	secs := uint64(elapsed / time.Second)
	if secs > math.MaxUint64/ratePerSecond {
		return math.MaxUint64
	}
	return secs * ratePerSecond
}
