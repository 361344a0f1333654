package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAccountRepo struct {
	byUsername map[string]*domain.Account
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{byUsername: map[string]*domain.Account{}}
}

func (r *memAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.byUsername[account.Username] = account
	return nil
}

func (r *memAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	for _, a := range r.byUsername {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.byUsername[username], nil
}

func (r *memAccountRepo) GetByAddress(ctx context.Context, address string) (*domain.Account, error) {
	for _, a := range r.byUsername {
		if a.Address == address {
			return a, nil
		}
	}
	return nil, nil
}

func newAuthFixture() (*AuthServiceImpl, *memAccountRepo) {
	repo := newMemAccountRepo()
	hashSvc := NewArgon2HashService()
	tokenSvc := NewJWTTokenService("test-secret-key-for-auth-tests", time.Hour, "asset-exchange-ledger")
	return NewAuthService(repo, hashSvc, tokenSvc, zerolog.Nop()), repo
}

func TestAuthService_RegisterAssignsAddress(t *testing.T) {
	svc, _ := newAuthFixture()

	account, err := svc.Register(context.Background(), "alice", "correct-horse-battery")
	require.NoError(t, err)

	assert.Equal(t, "alice", account.Username)
	assert.True(t, strings.HasPrefix(account.Address, "0x"))
	assert.Len(t, account.Address, 42)
	assert.NotEqual(t, "correct-horse-battery", account.PasswordHash)
}

func TestAuthService_RegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "pw-one")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "pw-two")
	assertCode(t, err, "AUTH_002")
}

func TestAuthService_LoginIssuesAddressBoundToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)

	token, expiresAt, account, err := svc.Login(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))
	assert.Equal(t, registered.Address, account.Address)

	tokenSvc := NewJWTTokenService("test-secret-key-for-auth-tests", time.Hour, "asset-exchange-ledger")
	claims, err := tokenSvc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.AccountID)
	assert.Equal(t, registered.Address, claims.Address)
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "correct-horse-battery")
	require.NoError(t, err)

	_, _, _, err = svc.Login(ctx, "alice", "wrong-password")
	assertCode(t, err, "AUTH_001")

	_, _, _, err = svc.Login(ctx, "mallory", "correct-horse-battery")
	assertCode(t, err, "AUTH_001")
}

func TestJWTTokenService_RejectsTamperedToken(t *testing.T) {
	tokenSvc := NewJWTTokenService("secret-a", time.Hour, "asset-exchange-ledger")
	token, _, err := tokenSvc.Generate(uuid.New(), "0xabc")
	require.NoError(t, err)

	otherSvc := NewJWTTokenService("secret-b", time.Hour, "asset-exchange-ledger")
	_, err = otherSvc.Validate(token)
	assert.Error(t, err)

	_, err = tokenSvc.Validate(token + "x")
	assert.Error(t, err)
}
