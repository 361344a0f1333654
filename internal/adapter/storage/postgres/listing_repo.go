package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ListingRepo implements ports.ListingRepository.
type ListingRepo struct {
	pool Pool
}

// NewListingRepo creates a new ListingRepo.
func NewListingRepo(pool Pool) *ListingRepo {
	return &ListingRepo{pool: pool}
}

// Upsert creates or replaces the (kind, item, seller) listing. A replaced
// listing keeps its original created_at so it holds its position in the
// insertion-ordered listing view.
func (r *ListingRepo) Upsert(ctx context.Context, tx pgx.Tx, listing *domain.Listing) error {
	query := `INSERT INTO listings (kind, item_id, seller, amount, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kind, item_id, seller)
		DO UPDATE SET amount = $4, unit_price = $5`

	_, err := tx.Exec(ctx, query,
		listing.Kind, listing.ItemID, listing.Seller,
		listing.Amount, listing.UnitPrice, listing.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert listing: %w", err)
	}
	return nil
}

// Get fetches a listing, or nil.
func (r *ListingRepo) Get(ctx context.Context, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error) {
	query := `SELECT kind, item_id, seller, amount, unit_price, created_at
		FROM listings WHERE kind = $1 AND item_id = $2 AND seller = $3`
	return scanListing(r.pool.QueryRow(ctx, query, kind, itemID, seller))
}

// GetForUpdate fetches a listing with a row lock.
func (r *ListingRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error) {
	query := `SELECT kind, item_id, seller, amount, unit_price, created_at
		FROM listings WHERE kind = $1 AND item_id = $2 AND seller = $3 FOR UPDATE`
	return scanListing(tx.QueryRow(ctx, query, kind, itemID, seller))
}

// FindSingleForUpdate resolves the unique single-unit listing for an item.
func (r *ListingRepo) FindSingleForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Listing, error) {
	query := `SELECT kind, item_id, seller, amount, unit_price, created_at
		FROM listings WHERE kind = $1 AND item_id = $2 FOR UPDATE`
	return scanListing(tx.QueryRow(ctx, query, domain.KindSingleUnit, itemID))
}

// Reduce shrinks a partially bought listing to newAmount.
func (r *ListingRepo) Reduce(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string, newAmount uint64) error {
	query := `UPDATE listings SET amount = $4
		WHERE kind = $1 AND item_id = $2 AND seller = $3`

	if _, err := tx.Exec(ctx, query, kind, itemID, seller, newAmount); err != nil {
		return fmt.Errorf("reduce listing: %w", err)
	}
	return nil
}

// Delete removes a consumed or cancelled listing.
func (r *ListingRepo) Delete(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) error {
	query := `DELETE FROM listings WHERE kind = $1 AND item_id = $2 AND seller = $3`

	if _, err := tx.Exec(ctx, query, kind, itemID, seller); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	return nil
}

// ListDetailed joins active listings with each item's current metadata URI,
// oldest listings first.
func (r *ListingRepo) ListDetailed(ctx context.Context) (*domain.DetailedListings, error) {
	query := `SELECT l.kind, l.item_id, l.seller, l.amount, l.unit_price,
			COALESCE(s.metadata_uri, m.metadata_uri, '') AS uri
		FROM listings l
		LEFT JOIN single_unit_items s ON l.kind = 'single_unit' AND s.id = l.item_id
		LEFT JOIN multi_unit_items m ON l.kind = 'multi_unit' AND m.id = l.item_id
		ORDER BY l.created_at, l.item_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list detailed: %w", err)
	}
	defer rows.Close()

	out := &domain.DetailedListings{}
	for rows.Next() {
		var kind domain.CollectionKind
		var d domain.DetailedListing
		if err := rows.Scan(&kind, &d.ItemID, &d.Seller, &d.Amount, &d.UnitPrice, &d.URI); err != nil {
			return nil, fmt.Errorf("scan detailed listing: %w", err)
		}
		switch kind {
		case domain.KindSingleUnit:
			out.SingleUnit = append(out.SingleUnit, d)
		case domain.KindMultiUnit:
			out.MultiUnit = append(out.MultiUnit, d)
		}
	}
	return out, rows.Err()
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	l := &domain.Listing{}
	err := row.Scan(&l.Kind, &l.ItemID, &l.Seller, &l.Amount, &l.UnitPrice, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}
	return l, nil
}
