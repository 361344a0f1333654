package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// MultiUnitRepo implements ports.MultiUnitRepository across three tables:
// multi_unit_items (per-id metadata), multi_unit_balances (the quantity
// ledger) and multi_unit_operators (blanket transfer approvals).
type MultiUnitRepo struct {
	pool Pool
}

// NewMultiUnitRepo creates a new MultiUnitRepo.
func NewMultiUnitRepo(pool Pool) *MultiUnitRepo {
	return &MultiUnitRepo{pool: pool}
}

// NextID allocates the next monotonic item id.
func (r *MultiUnitRepo) NextID(ctx context.Context, tx pgx.Tx) (uint64, error) {
	var id uint64
	if err := tx.QueryRow(ctx, `SELECT nextval('multi_unit_item_id_seq')`).Scan(&id); err != nil {
		return 0, fmt.Errorf("next multi-unit id: %w", err)
	}
	return id, nil
}

// GetItem fetches the id's metadata row, or nil.
func (r *MultiUnitRepo) GetItem(ctx context.Context, id uint64) (*domain.MultiUnitItem, error) {
	query := `SELECT id, metadata_uri, price, minted_at FROM multi_unit_items WHERE id = $1`

	item := &domain.MultiUnitItem{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&item.ID, &item.MetadataURI, &item.Price, &item.MintedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get multi-unit item: %w", err)
	}
	return item, nil
}

// InsertItem stores a freshly allocated id.
func (r *MultiUnitRepo) InsertItem(ctx context.Context, tx pgx.Tx, item *domain.MultiUnitItem) error {
	query := `INSERT INTO multi_unit_items (id, metadata_uri, price, minted_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, query, item.ID, item.MetadataURI, item.Price, item.MintedAt); err != nil {
		return fmt.Errorf("insert multi-unit item: %w", err)
	}
	return nil
}

// SetMetadataURI updates the id's metadata pointer.
func (r *MultiUnitRepo) SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error {
	query := `UPDATE multi_unit_items SET metadata_uri = $2 WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, uri); err != nil {
		return fmt.Errorf("set multi-unit metadata: %w", err)
	}
	return nil
}

// SetPrice records the id's display price.
func (r *MultiUnitRepo) SetPrice(ctx context.Context, tx pgx.Tx, id uint64, price uint64) error {
	query := `UPDATE multi_unit_items SET price = $2 WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, price); err != nil {
		return fmt.Errorf("set multi-unit price: %w", err)
	}
	return nil
}

// Balance reads an (owner, id) quantity; a missing row is zero.
func (r *MultiUnitRepo) Balance(ctx context.Context, owner string, id uint64) (uint64, error) {
	query := `SELECT amount FROM multi_unit_balances WHERE owner = $1 AND item_id = $2`
	return r.scanBalance(r.pool.QueryRow(ctx, query, owner, id))
}

// BalanceForUpdate reads the quantity with a row lock.
func (r *MultiUnitRepo) BalanceForUpdate(ctx context.Context, tx pgx.Tx, owner string, id uint64) (uint64, error) {
	query := `SELECT amount FROM multi_unit_balances WHERE owner = $1 AND item_id = $2 FOR UPDATE`
	return r.scanBalance(tx.QueryRow(ctx, query, owner, id))
}

// AddBalance credits units to an owner, creating the row on first credit.
func (r *MultiUnitRepo) AddBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error {
	query := `INSERT INTO multi_unit_balances (owner, item_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, item_id) DO UPDATE SET amount = multi_unit_balances.amount + $3`

	if _, err := tx.Exec(ctx, query, owner, id, delta); err != nil {
		return fmt.Errorf("add multi-unit balance: %w", err)
	}
	return nil
}

// SubBalance debits units and prunes the row at zero. Callers verify
// sufficiency under lock before calling.
func (r *MultiUnitRepo) SubBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error {
	query := `UPDATE multi_unit_balances SET amount = amount - $3
		WHERE owner = $1 AND item_id = $2 AND amount >= $3`

	tag, err := tx.Exec(ctx, query, owner, id, delta)
	if err != nil {
		return fmt.Errorf("sub multi-unit balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sub multi-unit balance: insufficient units for %s/%d", owner, id)
	}

	prune := `DELETE FROM multi_unit_balances WHERE owner = $1 AND item_id = $2 AND amount = 0`
	if _, err := tx.Exec(ctx, prune, owner, id); err != nil {
		return fmt.Errorf("prune multi-unit balance: %w", err)
	}
	return nil
}

// SetOperator grants or revokes a blanket transfer approval.
func (r *MultiUnitRepo) SetOperator(ctx context.Context, tx pgx.Tx, owner, operator string, approved bool) error {
	if approved {
		query := `INSERT INTO multi_unit_operators (owner, operator)
			VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.Exec(ctx, query, owner, operator); err != nil {
			return fmt.Errorf("set multi-unit operator: %w", err)
		}
		return nil
	}

	query := `DELETE FROM multi_unit_operators WHERE owner = $1 AND operator = $2`
	if _, err := tx.Exec(ctx, query, owner, operator); err != nil {
		return fmt.Errorf("clear multi-unit operator: %w", err)
	}
	return nil
}

// IsOperator reports whether operator may move owner's balances.
func (r *MultiUnitRepo) IsOperator(ctx context.Context, owner, operator string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM multi_unit_operators WHERE owner = $1 AND operator = $2)`

	var ok bool
	if err := r.pool.QueryRow(ctx, query, owner, operator).Scan(&ok); err != nil {
		return false, fmt.Errorf("operator lookup: %w", err)
	}
	return ok, nil
}

func (r *MultiUnitRepo) scanBalance(row pgx.Row) (uint64, error) {
	var amount uint64
	err := row.Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("scan multi-unit balance: %w", err)
	}
	return amount, nil
}
