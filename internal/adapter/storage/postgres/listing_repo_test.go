package postgres

import (
	"context"
	"testing"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingRepo_UpsertKeepsOriginalCreatedAt(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepo(mock)
	listed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// The conflict branch must not refresh created_at, or a re-listed item
	// would jump to the end of the insertion-ordered listing view.
	mock.ExpectBegin()
	mock.ExpectExec(`ON CONFLICT \(kind, item_id, seller\)\s*DO UPDATE SET amount = \$4, unit_price = \$5$`).
		WithArgs(domain.KindMultiUnit, uint64(7), "0xseller", uint64(25), uint64(900), listed).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, tx, &domain.Listing{
		Kind:      domain.KindMultiUnit,
		ItemID:    7,
		Seller:    "0xseller",
		Amount:    25,
		UnitPrice: 900,
		CreatedAt: listed,
	}))
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
