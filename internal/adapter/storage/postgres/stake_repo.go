package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// StakeRepo implements ports.StakeRepository.
type StakeRepo struct {
	pool Pool
}

// NewStakeRepo creates a new StakeRepo.
func NewStakeRepo(pool Pool) *StakeRepo {
	return &StakeRepo{pool: pool}
}

// Get fetches the stake on an item, or nil.
func (r *StakeRepo) Get(ctx context.Context, itemID uint64) (*domain.Stake, error) {
	query := `SELECT item_id, staker, staked_at FROM stakes WHERE item_id = $1`
	return scanStake(r.pool.QueryRow(ctx, query, itemID))
}

// GetForUpdate fetches the stake with a row lock.
func (r *StakeRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Stake, error) {
	query := `SELECT item_id, staker, staked_at FROM stakes WHERE item_id = $1 FOR UPDATE`
	return scanStake(tx.QueryRow(ctx, query, itemID))
}

// Insert records a new stake.
func (r *StakeRepo) Insert(ctx context.Context, tx pgx.Tx, stake *domain.Stake) error {
	query := `INSERT INTO stakes (item_id, staker, staked_at) VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, query, stake.ItemID, stake.Staker, stake.StakedAt); err != nil {
		return fmt.Errorf("insert stake: %w", err)
	}
	return nil
}

// Delete removes a released stake.
func (r *StakeRepo) Delete(ctx context.Context, tx pgx.Tx, itemID uint64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM stakes WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("delete stake: %w", err)
	}
	return nil
}

// ByStaker lists an account's stakes, oldest item first.
func (r *StakeRepo) ByStaker(ctx context.Context, staker string) ([]domain.Stake, error) {
	query := `SELECT item_id, staker, staked_at FROM stakes WHERE staker = $1 ORDER BY item_id`

	rows, err := r.pool.Query(ctx, query, staker)
	if err != nil {
		return nil, fmt.Errorf("stakes by staker: %w", err)
	}
	defer rows.Close()
	return collectStakes(rows)
}

// ByStakerForUpdate lists an account's stakes with row locks.
func (r *StakeRepo) ByStakerForUpdate(ctx context.Context, tx pgx.Tx, staker string) ([]domain.Stake, error) {
	query := `SELECT item_id, staker, staked_at FROM stakes WHERE staker = $1 ORDER BY item_id FOR UPDATE`

	rows, err := tx.Query(ctx, query, staker)
	if err != nil {
		return nil, fmt.Errorf("lock stakes by staker: %w", err)
	}
	defer rows.Close()
	return collectStakes(rows)
}

// ResetStakedAt restarts accrual after a claim.
func (r *StakeRepo) ResetStakedAt(ctx context.Context, tx pgx.Tx, itemID uint64, at time.Time) error {
	query := `UPDATE stakes SET staked_at = $2 WHERE item_id = $1`

	if _, err := tx.Exec(ctx, query, itemID, at); err != nil {
		return fmt.Errorf("reset staked_at: %w", err)
	}
	return nil
}

func collectStakes(rows pgx.Rows) ([]domain.Stake, error) {
	var out []domain.Stake
	for rows.Next() {
		var s domain.Stake
		if err := rows.Scan(&s.ItemID, &s.Staker, &s.StakedAt); err != nil {
			return nil, fmt.Errorf("scan stake: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanStake(row pgx.Row) (*domain.Stake, error) {
	s := &domain.Stake{}
	err := row.Scan(&s.ItemID, &s.Staker, &s.StakedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan stake: %w", err)
	}
	return s, nil
}
