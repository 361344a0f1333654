package service

import (
	"context"
	"errors"
	"fmt"

	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// TokenLedgerServiceImpl implements ports.TokenLedgerService, exposing the
// payment token to API callers with one transaction per mutation.
type TokenLedgerServiceImpl struct {
	token      ports.PaymentToken
	transactor ports.DBTransactor
	log        zerolog.Logger
}

// NewTokenLedgerService creates a new TokenLedgerServiceImpl.
func NewTokenLedgerService(token ports.PaymentToken, transactor ports.DBTransactor, log zerolog.Logger) *TokenLedgerServiceImpl {
	return &TokenLedgerServiceImpl{token: token, transactor: transactor, log: log}
}

// Approve sets the caller's allowance for spender.
func (s *TokenLedgerServiceImpl) Approve(ctx context.Context, caller, spender string, amount uint64) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.token.Approve(ctx, tx, caller, spender, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("approve: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner", caller).
		Str("spender", spender).
		Uint64("amount", amount).
		Msg("allowance set")
	return nil
}

// Transfer moves amount from the caller to another account.
func (s *TokenLedgerServiceImpl) Transfer(ctx context.Context, caller, to string, amount uint64) error {
	if amount == 0 {
		return apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.token.Transfer(ctx, tx, caller, to, amount); err != nil {
		if errors.Is(err, ports.ErrTokenInsufficientBalance) {
			balance, balErr := s.token.BalanceOf(ctx, caller)
			if balErr == nil {
				return apperror.ErrInsufficientBalance(amount, balance)
			}
		}
		return apperror.InternalError(fmt.Errorf("transfer: %w", err))
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("from", caller).
		Str("to", to).
		Uint64("amount", amount).
		Msg("token transferred")
	return nil
}

// BalanceOf reads an account's token balance.
func (s *TokenLedgerServiceImpl) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	balance, err := s.token.BalanceOf(ctx, owner)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("balance of: %w", err))
	}
	return balance, nil
}

// Allowance reads an (owner, spender) allowance.
func (s *TokenLedgerServiceImpl) Allowance(ctx context.Context, owner, spender string) (uint64, error) {
	allowance, err := s.token.Allowance(ctx, owner, spender)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("allowance: %w", err))
	}
	return allowance, nil
}
