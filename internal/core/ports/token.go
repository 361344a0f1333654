package ports

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Payment token rejections. The marketplace and staking ledger propagate
// these verbatim; they never retry.
var (
	ErrTokenInsufficientBalance   = errors.New("payment token: insufficient balance")
	ErrTokenInsufficientAllowance = errors.New("payment token: insufficient allowance")
)

// PaymentToken is the external fungible-token boundary. The ledger only
// calls these operations and propagates their failures. Methods take pgx.Tx
// so token movement commits atomically with asset movement.
type PaymentToken interface {
	// Mint credits freshly issued supply. Bootstrap only.
	Mint(ctx context.Context, tx pgx.Tx, to string, amount uint64) error
	Transfer(ctx context.Context, tx pgx.Tx, from, to string, amount uint64) error
	// TransferFrom spends `spender`'s allowance over `from`'s balance.
	TransferFrom(ctx context.Context, tx pgx.Tx, spender, from, to string, amount uint64) error
	Approve(ctx context.Context, tx pgx.Tx, owner, spender string, amount uint64) error
	Allowance(ctx context.Context, owner, spender string) (uint64, error)
	BalanceOf(ctx context.Context, owner string) (uint64, error)
	BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, owner string) (uint64, error)
}
