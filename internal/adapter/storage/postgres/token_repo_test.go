package postgres

import (
	"context"
	"testing"

	"asset-exchange-ledger/internal/core/ports"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepo_TransferDebitsAndCredits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE token_balances SET balance = balance -").
		WithArgs("0xfrom", uint64(100)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO token_balances").
		WithArgs("0xto", uint64(100)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Transfer(ctx, tx, "0xfrom", "0xto", 100))
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_TransferInsufficientBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	// A guarded debit touching zero rows means the balance was short.
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE token_balances SET balance = balance -").
		WithArgs("0xfrom", uint64(100)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	err = repo.Transfer(ctx, tx, "0xfrom", "0xto", 100)
	assert.ErrorIs(t, err, ports.ErrTokenInsufficientBalance)
	require.NoError(t, tx.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_TransferFromChecksAllowanceFirst(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE token_allowances SET amount = amount -").
		WithArgs("0xowner", "0xspender", uint64(50)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectRollback()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	err = repo.TransferFrom(ctx, tx, "0xspender", "0xowner", "0xto", 50)
	assert.ErrorIs(t, err, ports.ErrTokenInsufficientAllowance)
	require.NoError(t, tx.Rollback(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_BalanceOfMissingRowIsZero(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectQuery("SELECT balance FROM token_balances").
		WithArgs("0xnobody").
		WillReturnRows(pgxmock.NewRows([]string{"balance"}))

	balance, err := repo.BalanceOf(context.Background(), "0xnobody")
	require.NoError(t, err)
	assert.Zero(t, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenRepo_Approve(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTokenRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO token_allowances").
		WithArgs("0xowner", "0xspender", uint64(500)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Approve(ctx, tx, "0xowner", "0xspender", 500))
	require.NoError(t, tx.Commit(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}
