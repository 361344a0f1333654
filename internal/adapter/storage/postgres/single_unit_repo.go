package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SingleUnitRepo implements ports.SingleUnitRepository. Item ids come from
// a dedicated sequence, so a burned id is never handed out again.
type SingleUnitRepo struct {
	pool Pool
}

// NewSingleUnitRepo creates a new SingleUnitRepo.
func NewSingleUnitRepo(pool Pool) *SingleUnitRepo {
	return &SingleUnitRepo{pool: pool}
}

// NextID allocates the next monotonic item id.
func (r *SingleUnitRepo) NextID(ctx context.Context, tx pgx.Tx) (uint64, error) {
	var id uint64
	if err := tx.QueryRow(ctx, `SELECT nextval('single_unit_item_id_seq')`).Scan(&id); err != nil {
		return 0, fmt.Errorf("next single-unit id: %w", err)
	}
	return id, nil
}

// Insert stores a freshly minted item.
func (r *SingleUnitRepo) Insert(ctx context.Context, tx pgx.Tx, item *domain.SingleUnitItem) error {
	query := `INSERT INTO single_unit_items (id, owner, metadata_uri, delegate, minted_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, item.ID, item.Owner, item.MetadataURI, item.Delegate, item.MintedAt)
	if err != nil {
		return fmt.Errorf("insert single-unit item: %w", err)
	}
	return nil
}

// Delete removes a burned item.
func (r *SingleUnitRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM single_unit_items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete single-unit item: %w", err)
	}
	return nil
}

// Get fetches an item, or nil when it does not exist.
func (r *SingleUnitRepo) Get(ctx context.Context, id uint64) (*domain.SingleUnitItem, error) {
	query := `SELECT id, owner, metadata_uri, delegate, minted_at
		FROM single_unit_items WHERE id = $1`
	return scanSingleItem(r.pool.QueryRow(ctx, query, id))
}

// GetForUpdate fetches an item with a row lock inside the transaction.
func (r *SingleUnitRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.SingleUnitItem, error) {
	query := `SELECT id, owner, metadata_uri, delegate, minted_at
		FROM single_unit_items WHERE id = $1 FOR UPDATE`
	return scanSingleItem(tx.QueryRow(ctx, query, id))
}

// UpdateOwner reassigns ownership and clears the transfer delegate.
func (r *SingleUnitRepo) UpdateOwner(ctx context.Context, tx pgx.Tx, id uint64, owner string) error {
	query := `UPDATE single_unit_items SET owner = $2, delegate = '' WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, owner); err != nil {
		return fmt.Errorf("update single-unit owner: %w", err)
	}
	return nil
}

// SetDelegate names the account allowed to transfer the item.
func (r *SingleUnitRepo) SetDelegate(ctx context.Context, tx pgx.Tx, id uint64, delegate string) error {
	query := `UPDATE single_unit_items SET delegate = $2 WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, delegate); err != nil {
		return fmt.Errorf("set single-unit delegate: %w", err)
	}
	return nil
}

// SetMetadataURI updates the item's metadata pointer.
func (r *SingleUnitRepo) SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error {
	query := `UPDATE single_unit_items SET metadata_uri = $2 WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, uri); err != nil {
		return fmt.Errorf("set single-unit metadata: %w", err)
	}
	return nil
}

// OwnedBy returns the account's item ids, ascending.
func (r *SingleUnitRepo) OwnedBy(ctx context.Context, owner string) ([]uint64, error) {
	query := `SELECT id FROM single_unit_items WHERE owner = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("owned by: %w", err)
	}
	defer rows.Close()

	var ids []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan owned id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanSingleItem(row pgx.Row) (*domain.SingleUnitItem, error) {
	item := &domain.SingleUnitItem{}
	err := row.Scan(&item.ID, &item.Owner, &item.MetadataURI, &item.Delegate, &item.MintedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan single-unit item: %w", err)
	}
	return item, nil
}
