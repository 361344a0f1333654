package metrics

import (
	"context"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// InstrumentedEventRepo counts appended ledger events per type while
// delegating persistence to the wrapped repository. Counting happens at
// append time, before the surrounding transaction commits; an append whose
// transaction later rolls back is still counted.
type InstrumentedEventRepo struct {
	inner   ports.EventRepository
	metrics *Metrics
}

// InstrumentEventRepo wraps repo so every successful append is counted.
func InstrumentEventRepo(repo ports.EventRepository, m *Metrics) *InstrumentedEventRepo {
	return &InstrumentedEventRepo{inner: repo, metrics: m}
}

func (r *InstrumentedEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	if err := r.inner.Append(ctx, tx, event); err != nil {
		return err
	}
	r.metrics.IncrementLedgerEvent(string(event.Type))
	return nil
}

func (r *InstrumentedEventRepo) List(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	return r.inner.List(ctx, afterID, limit)
}
