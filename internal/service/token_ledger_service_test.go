package service

import (
	"context"
	"testing"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenLedgerFixture() (*TokenLedgerServiceImpl, *ledgerFixture) {
	f := newLedgerFixture()
	svc := NewTokenLedgerService(f.token, f.ledger, zerolog.Nop())
	return svc, f
}

func TestTokenLedger_TransferMovesBalance(t *testing.T) {
	svc, f := newTokenLedgerFixture()
	ctx := context.Background()

	f.creditTokens(addrAlice, 1000)

	require.NoError(t, svc.Transfer(ctx, addrAlice, addrBob, 400))

	aliceBal, err := svc.BalanceOf(ctx, addrAlice)
	require.NoError(t, err)
	bobBal, err := svc.BalanceOf(ctx, addrBob)
	require.NoError(t, err)
	assert.Equal(t, uint64(600), aliceBal)
	assert.Equal(t, uint64(400), bobBal)
}

func TestTokenLedger_TransferInsufficientBalance(t *testing.T) {
	svc, f := newTokenLedgerFixture()
	ctx := context.Background()

	f.creditTokens(addrAlice, 100)

	err := svc.Transfer(ctx, addrAlice, addrBob, 101)
	assertCode(t, err, "AST_003")

	aliceBal, _ := svc.BalanceOf(ctx, addrAlice)
	assert.Equal(t, uint64(100), aliceBal)
}

func TestTokenLedger_TransferZeroAmount(t *testing.T) {
	svc, _ := newTokenLedgerFixture()

	err := svc.Transfer(context.Background(), addrAlice, addrBob, 0)
	assertCode(t, err, "AST_004")
}

func TestTokenLedger_ApproveAndAllowance(t *testing.T) {
	svc, _ := newTokenLedgerFixture()
	ctx := context.Background()

	require.NoError(t, svc.Approve(ctx, addrAlice, fixtureMarket, 5000))

	allowance, err := svc.Allowance(ctx, addrAlice, fixtureMarket)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), allowance)

	// Re-approval overwrites, it does not add.
	require.NoError(t, svc.Approve(ctx, addrAlice, fixtureMarket, 100))
	allowance, err = svc.Allowance(ctx, addrAlice, fixtureMarket)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), allowance)
}

func TestEventService_ListsCommittedEventsInOrder(t *testing.T) {
	f := newLedgerFixture()
	f.grant(domain.ComponentSingleUnit, domain.RoleMinter, addrMinter)
	ctx := context.Background()

	svc := NewEventService(&memEventRepo{l: f.ledger})

	for i := 0; i < 3; i++ {
		_, err := f.single.Mint(ctx, addrMinter, addrAlice)
		require.NoError(t, err)
	}

	events, err := svc.Events(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, domain.EventMinted, events[0].Type)

	// Cursor paging.
	events, err = svc.Events(ctx, events[1].ID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3), events[0].ID)

	// A non-positive limit falls back to the default page size.
	events, err = svc.Events(ctx, 0, -1)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
