package postgres

import (
	"context"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository over the append-only
// ledger_events table.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Append writes the event inside the mutating transaction and fills in the
// assigned id and timestamp.
func (r *EventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	query := `INSERT INTO ledger_events (type, payload)
		VALUES ($1, $2) RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, event.Type, event.Payload).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// List returns up to limit events after the cursor, in commit order.
func (r *EventRepo) List(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	query := `SELECT id, type, payload, created_at FROM ledger_events
		WHERE id > $1 ORDER BY id LIMIT $2`

	rows, err := r.pool.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.LedgerEvent
	for rows.Next() {
		var ev domain.LedgerEvent
		if err := rows.Scan(&ev.ID, &ev.Type, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
