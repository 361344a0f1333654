package postgres

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// TokenRepo implements ports.PaymentToken over token_balances and
// token_allowances. Debits are guarded in SQL, so a short balance or
// allowance surfaces as the matching sentinel error without a read-first
// race.
type TokenRepo struct {
	pool Pool
}

// NewTokenRepo creates a new TokenRepo.
func NewTokenRepo(pool Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Mint credits freshly issued supply. Bootstrap only.
func (r *TokenRepo) Mint(ctx context.Context, tx pgx.Tx, to string, amount uint64) error {
	if err := r.credit(ctx, tx, to, amount); err != nil {
		return fmt.Errorf("mint tokens: %w", err)
	}
	return nil
}

// Transfer moves amount between accounts.
func (r *TokenRepo) Transfer(ctx context.Context, tx pgx.Tx, from, to string, amount uint64) error {
	if err := r.debit(ctx, tx, from, amount); err != nil {
		return err
	}
	if err := r.credit(ctx, tx, to, amount); err != nil {
		return fmt.Errorf("credit %s: %w", to, err)
	}
	return nil
}

// TransferFrom spends spender's allowance over from's balance.
func (r *TokenRepo) TransferFrom(ctx context.Context, tx pgx.Tx, spender, from, to string, amount uint64) error {
	query := `UPDATE token_allowances SET amount = amount - $3
		WHERE owner = $1 AND spender = $2 AND amount >= $3`

	tag, err := tx.Exec(ctx, query, from, spender, amount)
	if err != nil {
		return fmt.Errorf("spend allowance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrTokenInsufficientAllowance
	}

	return r.Transfer(ctx, tx, from, to, amount)
}

// Approve sets the (owner, spender) allowance, replacing any previous value.
func (r *TokenRepo) Approve(ctx context.Context, tx pgx.Tx, owner, spender string, amount uint64) error {
	query := `INSERT INTO token_allowances (owner, spender, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner, spender) DO UPDATE SET amount = $3`

	if _, err := tx.Exec(ctx, query, owner, spender, amount); err != nil {
		return fmt.Errorf("approve: %w", err)
	}
	return nil
}

// Allowance reads an (owner, spender) allowance; a missing row is zero.
func (r *TokenRepo) Allowance(ctx context.Context, owner, spender string) (uint64, error) {
	query := `SELECT amount FROM token_allowances WHERE owner = $1 AND spender = $2`

	var amount uint64
	err := r.pool.QueryRow(ctx, query, owner, spender).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("allowance: %w", err)
	}
	return amount, nil
}

// BalanceOf reads an account's balance; a missing row is zero.
func (r *TokenRepo) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	query := `SELECT balance FROM token_balances WHERE account = $1`

	var balance uint64
	err := r.pool.QueryRow(ctx, query, owner).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("balance of: %w", err)
	}
	return balance, nil
}

// BalanceOfForUpdate reads the balance with a row lock.
func (r *TokenRepo) BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, owner string) (uint64, error) {
	query := `SELECT balance FROM token_balances WHERE account = $1 FOR UPDATE`

	var balance uint64
	err := tx.QueryRow(ctx, query, owner).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("balance of for update: %w", err)
	}
	return balance, nil
}

func (r *TokenRepo) debit(ctx context.Context, tx pgx.Tx, from string, amount uint64) error {
	query := `UPDATE token_balances SET balance = balance - $2
		WHERE account = $1 AND balance >= $2`

	tag, err := tx.Exec(ctx, query, from, amount)
	if err != nil {
		return fmt.Errorf("debit %s: %w", from, err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrTokenInsufficientBalance
	}
	return nil
}

func (r *TokenRepo) credit(ctx context.Context, tx pgx.Tx, to string, amount uint64) error {
	query := `INSERT INTO token_balances (account, balance)
		VALUES ($1, $2)
		ON CONFLICT (account) DO UPDATE SET balance = token_balances.balance + $2`

	_, err := tx.Exec(ctx, query, to, amount)
	return err
}
