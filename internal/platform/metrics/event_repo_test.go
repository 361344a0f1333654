package metrics

import (
	"context"
	"errors"
	"testing"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One shared Metrics instance: promauto registers on the default registry,
// which rejects duplicate registration across tests.
var testMetrics = New()

type stubEventRepo struct {
	err    error
	events []domain.LedgerEvent
}

func (r *stubEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *stubEventRepo) List(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	return r.events, nil
}

func TestInstrumentedEventRepo_CountsAppendsByType(t *testing.T) {
	inner := &stubEventRepo{}
	repo := InstrumentEventRepo(inner, testMetrics)
	ctx := context.Background()

	before := testutil.ToFloat64(testMetrics.LedgerEventsTotal.WithLabelValues(string(domain.EventMinted)))

	require.NoError(t, repo.Append(ctx, nil, &domain.LedgerEvent{Type: domain.EventMinted}))
	require.NoError(t, repo.Append(ctx, nil, &domain.LedgerEvent{Type: domain.EventMinted}))
	require.NoError(t, repo.Append(ctx, nil, &domain.LedgerEvent{Type: domain.EventSold}))

	minted := testutil.ToFloat64(testMetrics.LedgerEventsTotal.WithLabelValues(string(domain.EventMinted)))
	sold := testutil.ToFloat64(testMetrics.LedgerEventsTotal.WithLabelValues(string(domain.EventSold)))
	assert.Equal(t, before+2, minted)
	assert.Equal(t, float64(1), sold)
	assert.Len(t, inner.events, 3)
}

func TestInstrumentedEventRepo_SkipsFailedAppends(t *testing.T) {
	inner := &stubEventRepo{err: errors.New("append rejected")}
	repo := InstrumentEventRepo(inner, testMetrics)

	before := testutil.ToFloat64(testMetrics.LedgerEventsTotal.WithLabelValues(string(domain.EventStaked)))

	err := repo.Append(context.Background(), nil, &domain.LedgerEvent{Type: domain.EventStaked})
	require.Error(t, err)

	after := testutil.ToFloat64(testMetrics.LedgerEventsTotal.WithLabelValues(string(domain.EventStaked)))
	assert.Equal(t, before, after)
}
