package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStake_Accrued(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Stake{ItemID: 1, Staker: "0xaaa", StakedAt: anchor}

	assert.Equal(t, uint64(36000), s.Accrued(anchor.Add(time.Hour), 10))
	assert.Equal(t, uint64(0), s.Accrued(anchor, 10))
	// Truncation favors the treasury: 999ms pays nothing.
	assert.Equal(t, uint64(0), s.Accrued(anchor.Add(999*time.Millisecond), 10))
	assert.Equal(t, uint64(10), s.Accrued(anchor.Add(1900*time.Millisecond), 10))
	// Clock skew never produces a negative payout.
	assert.Equal(t, uint64(0), s.Accrued(anchor.Add(-time.Minute), 10))
}

func TestStake_AccruedSaturatesInsteadOfWrapping(t *testing.T) {
	anchor := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := Stake{ItemID: 1, Staker: "0xaaa", StakedAt: anchor}

	// 3s at a rate of MaxUint64/2 would wrap; it must pin to MaxUint64 so
	// the treasury check rejects the claim instead of paying a tiny residue.
	rate := uint64(math.MaxUint64 / 2)
	assert.Equal(t, uint64(math.MaxUint64), s.Accrued(anchor.Add(3*time.Second), rate))
	assert.Equal(t, rate, s.Accrued(anchor.Add(time.Second), rate))
	assert.Equal(t, uint64(0), s.Accrued(anchor.Add(time.Hour), 0))
}

func TestListing_TotalPrice(t *testing.T) {
	l := Listing{UnitPrice: 500000000000000000, Amount: 40}

	total, ok := l.TotalPrice(1)
	require.True(t, ok)
	assert.Equal(t, uint64(500000000000000000), total)

	total, ok = l.TotalPrice(3)
	require.True(t, ok)
	assert.Equal(t, uint64(1500000000000000000), total)

	total, ok = l.TotalPrice(0)
	require.True(t, ok)
	assert.Equal(t, uint64(0), total)
}

func TestListing_TotalPriceOverflow(t *testing.T) {
	// 0.5-token unit price: 37 units already pushes the product past uint64.
	l := Listing{UnitPrice: 500000000000000000, Amount: 40}
	_, ok := l.TotalPrice(37)
	assert.False(t, ok)

	l = Listing{UnitPrice: math.MaxUint64, Amount: 2}
	_, ok = l.TotalPrice(2)
	assert.False(t, ok)

	total, ok := l.TotalPrice(1)
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), total)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleSwap))
	assert.True(t, ValidRole(RoleMetadataManager))
	assert.False(t, ValidRole(Role("ROOT")))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindSingleUnit))
	assert.True(t, ValidKind(KindMultiUnit))
	assert.False(t, ValidKind(CollectionKind("erc20")))
}

func TestNewEvent_MarshalsPayload(t *testing.T) {
	ev, err := NewEvent(EventSold, SoldPayload{
		ItemID: 1, Buyer: "0xbbb", Amount: 1, TotalPrice: 500000000000000000,
	})
	require.NoError(t, err)
	assert.Equal(t, EventSold, ev.Type)

	var p SoldPayload
	require.NoError(t, json.Unmarshal(ev.Payload, &p))
	assert.Equal(t, "0xbbb", p.Buyer)
	assert.Equal(t, uint64(500000000000000000), p.TotalPrice)
}

func TestComponents_CoversAll(t *testing.T) {
	assert.Len(t, Components(), 5)
}
