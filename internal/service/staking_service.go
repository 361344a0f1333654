package service

import (
	"context"
	"fmt"
	"math"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// StakingServiceImpl implements ports.StakingService. Staked items are held
// by the staking custody account; rewards accrue per second and are paid
// from the treasury's payment-token balance.
type StakingServiceImpl struct {
	access     ports.AccessService
	single     ports.SingleCollectionService
	stakeRepo  ports.StakeRepository
	eventRepo  ports.EventRepository
	token      ports.PaymentToken
	transactor ports.DBTransactor
	custody    string
	rate       uint64
	clock      ports.Clock
	log        zerolog.Logger
}

// NewStakingService creates a new StakingServiceImpl. custody holds both the
// escrowed items and the reward treasury; rate is the per-item reward paid
// per whole second staked.
func NewStakingService(
	access ports.AccessService,
	single ports.SingleCollectionService,
	stakeRepo ports.StakeRepository,
	eventRepo ports.EventRepository,
	token ports.PaymentToken,
	transactor ports.DBTransactor,
	custody string,
	rate uint64,
	clock ports.Clock,
	log zerolog.Logger,
) *StakingServiceImpl {
	return &StakingServiceImpl{
		access:     access,
		single:     single,
		stakeRepo:  stakeRepo,
		eventRepo:  eventRepo,
		token:      token,
		transactor: transactor,
		custody:    custody,
		rate:       rate,
		clock:      clock,
		log:        log,
	}
}

// Stake escrows the item with the custody account and starts accrual. A
// second stake of the same item fails the ownership check on the transfer,
// since the staker no longer holds it.
func (s *StakingServiceImpl) Stake(ctx context.Context, staker string, id uint64) error {
	if err := s.access.RequireActive(ctx, domain.ComponentStaking); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.single.TransferTx(ctx, tx, staker, staker, id, s.custody); err != nil {
		return err
	}

	stake := &domain.Stake{
		ItemID:   id,
		Staker:   staker,
		StakedAt: s.clock.Now(),
	}
	if err := s.stakeRepo.Insert(ctx, tx, stake); err != nil {
		return apperror.InternalError(fmt.Errorf("insert stake: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventStaked, domain.StakedPayload{
		Staker: staker, ItemID: id,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("staker", staker).Uint64("item_id", id).Msg("item staked")
	return nil
}

// Unstake pays out the item's pending reward, releases the item back to the
// staker, and removes the stake. Returns the claimed reward.
func (s *StakingServiceImpl) Unstake(ctx context.Context, staker string, id uint64) (uint64, error) {
	if err := s.access.RequireActive(ctx, domain.ComponentStaking); err != nil {
		return 0, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	stake, err := s.stakeRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock stake: %w", err))
	}
	if stake == nil {
		return 0, apperror.ErrNoStake()
	}
	if stake.Staker != staker {
		return 0, apperror.ErrNotOwner()
	}

	reward := stake.Accrued(s.clock.Now(), s.rate)
	if reward > 0 {
		if err := s.payReward(ctx, tx, staker, reward); err != nil {
			return 0, err
		}
	}

	if err := s.stakeRepo.Delete(ctx, tx, id); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("delete stake: %w", err))
	}
	if err := s.single.TransferTx(ctx, tx, s.custody, s.custody, id, staker); err != nil {
		return 0, err
	}

	if reward > 0 {
		if err := s.appendEvent(ctx, tx, domain.EventRewardsClaimed, domain.RewardsClaimedPayload{
			Staker: staker, Amount: reward,
		}); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("staker", staker).
		Uint64("item_id", id).
		Uint64("reward", reward).
		Msg("item unstaked")

	return reward, nil
}

// ClaimRewards pays the total accrued reward over all of the staker's stakes
// and restarts accrual on each. A staker with no stakes gets NoStake; a
// staker whose stakes have accrued nothing yet claims zero successfully.
func (s *StakingServiceImpl) ClaimRewards(ctx context.Context, staker string) (uint64, error) {
	if err := s.access.RequireActive(ctx, domain.ComponentStaking); err != nil {
		return 0, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	stakes, err := s.stakeRepo.ByStakerForUpdate(ctx, tx, staker)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("lock stakes: %w", err))
	}
	if len(stakes) == 0 {
		return 0, apperror.ErrNoStake()
	}

	now := s.clock.Now()
	var total uint64
	for _, stake := range stakes {
		accrued := stake.Accrued(now, s.rate)
		if total > math.MaxUint64-accrued {
			total = math.MaxUint64
			break
		}
		total += accrued
	}

	for _, stake := range stakes {
		if err := s.stakeRepo.ResetStakedAt(ctx, tx, stake.ItemID, now); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("reset stake %d: %w", stake.ItemID, err))
		}
	}

	if total > 0 {
		if err := s.payReward(ctx, tx, staker, total); err != nil {
			return 0, err
		}
	}

	if err := s.appendEvent(ctx, tx, domain.EventRewardsClaimed, domain.RewardsClaimedPayload{
		Staker: staker, Amount: total,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Str("staker", staker).Uint64("reward", total).Msg("rewards claimed")
	return total, nil
}

// StakesOf lists the staker's active stakes.
func (s *StakingServiceImpl) StakesOf(ctx context.Context, staker string) ([]domain.Stake, error) {
	stakes, err := s.stakeRepo.ByStaker(ctx, staker)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list stakes: %w", err))
	}
	return stakes, nil
}

// payReward moves amount from the treasury to the staker, checking the
// treasury balance under lock first so a short treasury fails cleanly.
func (s *StakingServiceImpl) payReward(ctx context.Context, tx pgx.Tx, staker string, amount uint64) error {
	treasury, err := s.token.BalanceOfForUpdate(ctx, tx, s.custody)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock treasury: %w", err))
	}
	if treasury < amount {
		return apperror.ErrInsufficientTreasury()
	}
	if err := s.token.Transfer(ctx, tx, s.custody, staker, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("pay reward: %w", err))
	}
	return nil
}

func (s *StakingServiceImpl) appendEvent(ctx context.Context, tx pgx.Tx, eventType domain.EventType, payload any) error {
	ev, err := domain.NewEvent(eventType, payload)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	return nil
}
