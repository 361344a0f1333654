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

func singleItemColumns() []string {
	return []string{"id", "owner", "metadata_uri", "delegate", "minted_at"}
}

func TestSingleUnitRepo_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSingleUnitRepo(mock)
	mintedAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT .+ FROM single_unit_items WHERE id").
		WithArgs(uint64(7)).
		WillReturnRows(pgxmock.NewRows(singleItemColumns()).
			AddRow(uint64(7), "0xalice", "ipfs://meta/7", "", mintedAt))

	item, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "0xalice", item.Owner)
	assert.Equal(t, "ipfs://meta/7", item.MetadataURI)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSingleUnitRepo_GetNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSingleUnitRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM single_unit_items WHERE id").
		WithArgs(uint64(404)).
		WillReturnRows(pgxmock.NewRows(singleItemColumns()))

	item, err := repo.Get(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, item)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSingleUnitRepo_NextIDUsesSequence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSingleUnitRepo(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT nextval").
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(uint64(42)))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	id, err := repo.NextID(ctx, tx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSingleUnitRepo_InsertAndUpdateOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSingleUnitRepo(mock)
	mintedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO single_unit_items").
		WithArgs(uint64(1), "0xalice", "", "", mintedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("UPDATE single_unit_items SET owner").
		WithArgs(uint64(1), "0xbob").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	item := &domain.SingleUnitItem{ID: 1, Owner: "0xalice", MintedAt: mintedAt}
	require.NoError(t, repo.Insert(ctx, tx, item))
	require.NoError(t, repo.UpdateOwner(ctx, tx, 1, "0xbob"))
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSingleUnitRepo_OwnedBy(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSingleUnitRepo(mock)

	mock.ExpectQuery("SELECT id FROM single_unit_items WHERE owner").
		WithArgs("0xalice").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).
			AddRow(uint64(1)).AddRow(uint64(3)).AddRow(uint64(9)))

	ids, err := repo.OwnedBy(context.Background(), "0xalice")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 9}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
