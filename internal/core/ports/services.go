package ports

import (
	"context"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT session token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, address string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Address   string
}

// ListingCache is the Redis snapshot of the detailed-listing view.
// Best-effort: a miss or failure falls through to the database.
type ListingCache interface {
	Get(ctx context.Context) (*domain.DetailedListings, error)
	Set(ctx context.Context, listings *domain.DetailedListings, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// --- Service Ports (Business Logic) ---

// AccessService is the per-component role registry and pause switch.
// Callers are ledger addresses; checks fail with Unauthorized or Paused.
type AccessService interface {
	Grant(ctx context.Context, caller string, component domain.Component, role domain.Role, account string) error
	Revoke(ctx context.Context, caller string, component domain.Component, role domain.Role, account string) error
	HasRole(ctx context.Context, component domain.Component, role domain.Role, account string) (bool, error)
	Pause(ctx context.Context, caller string, component domain.Component) error
	Unpause(ctx context.Context, caller string, component domain.Component) error
	Paused(ctx context.Context, component domain.Component) (bool, error)
	// RequireRole returns Unauthorized{role, caller} unless caller holds role.
	RequireRole(ctx context.Context, component domain.Component, role domain.Role, caller string) error
	// RequireActive returns Paused if the component's flag is set.
	RequireActive(ctx context.Context, component domain.Component) error
	// Bootstrap grants ADMIN and PAUSER on every component to the admin
	// account and seeds the pause flags. Idempotent.
	Bootstrap(ctx context.Context, admin string) error
}

// SingleCollectionService manages the one-owner-per-item collection.
// The Tx variants join a caller-owned transaction for composed operations.
type SingleCollectionService interface {
	Mint(ctx context.Context, caller, to string) (uint64, error)
	Burn(ctx context.Context, caller string, id uint64) error
	SetMetadataURI(ctx context.Context, caller string, id uint64, uri string) error
	Approve(ctx context.Context, caller string, id uint64, delegate string) error
	Transfer(ctx context.Context, caller, from string, id uint64, to string) error
	TransferTx(ctx context.Context, tx pgx.Tx, caller, from string, id uint64, to string) error
	OwnerOf(ctx context.Context, id uint64) (string, error)
	Get(ctx context.Context, id uint64) (*domain.SingleUnitItem, error)
	ItemsOwnedBy(ctx context.Context, account string) ([]uint64, error)
}

// MultiCollectionService manages the quantity ledger.
type MultiCollectionService interface {
	// Mint with id == 0 allocates the next id; id > 0 tops up an existing id.
	Mint(ctx context.Context, caller, to string, id, amount uint64) (uint64, error)
	Burn(ctx context.Context, caller, owner string, id, amount uint64) error
	SetMetadataURI(ctx context.Context, caller string, id uint64, uri string) error
	SetPrice(ctx context.Context, caller string, id uint64, price uint64) error
	SetApprovalForAll(ctx context.Context, caller, operator string, approved bool) error
	Transfer(ctx context.Context, caller, from string, id, amount uint64, to string) error
	TransferTx(ctx context.Context, tx pgx.Tx, caller, from string, id, amount uint64, to string) error
	BalanceOf(ctx context.Context, owner string, id uint64) (uint64, error)
	GetItem(ctx context.Context, id uint64) (*domain.MultiUnitItem, error)
}

// PurchaseResult reports a settled buy.
type PurchaseResult struct {
	ItemID     uint64
	Buyer      string
	Seller     string
	Amount     uint64
	TotalPrice uint64
	Remaining  uint64 // residual listed amount, 0 when the listing is gone
}

// MarketplaceService is the escrow-based listing and purchase engine.
type MarketplaceService interface {
	ListForSale(ctx context.Context, seller string, kind domain.CollectionKind, id, unitPrice, amount uint64) error
	// Buy settles a purchase. seller may be empty for single-unit listings
	// (resolved from the unique listing); amount 0 means the full listed amount.
	Buy(ctx context.Context, buyer string, kind domain.CollectionKind, id uint64, seller string, amount uint64) (*PurchaseResult, error)
	GetDetailedListedNFTs(ctx context.Context) (*domain.DetailedListings, error)
}

// StakingService accrues time-based rewards over escrowed single-unit items.
type StakingService interface {
	Stake(ctx context.Context, staker string, id uint64) error
	// Unstake auto-claims the pending reward for the item before release.
	Unstake(ctx context.Context, staker string, id uint64) (uint64, error)
	ClaimRewards(ctx context.Context, staker string) (uint64, error)
	StakesOf(ctx context.Context, staker string) ([]domain.Stake, error)
}

// OrchestratorService is the single externally-facing entry point for swaps
// and for role/pause-checked delegation into the other components.
type OrchestratorService interface {
	SwapSingleUnit(ctx context.Context, caller, ownerA string, idA uint64, ownerB string, idB uint64) error
	SwapMultiUnit(ctx context.Context, caller, ownerA string, idA, qtyA uint64, ownerB string, idB, qtyB uint64) error
	SwapCross(ctx context.Context, caller, ownerA string, idA uint64, ownerB string, idB, qtyB uint64) error
	StakeNFT(ctx context.Context, caller string, id uint64) error
	ClaimRewards(ctx context.Context, caller string) (uint64, error)
	ListForSale(ctx context.Context, caller string, kind domain.CollectionKind, id, unitPrice, amount uint64) error
	Pause(ctx context.Context, caller string) error
	Unpause(ctx context.Context, caller string) error
}

// TokenLedgerService exposes the payment token to callers (approve,
// transfer, balance), wrapping each mutation in its own transaction.
type TokenLedgerService interface {
	Approve(ctx context.Context, caller, spender string, amount uint64) error
	Transfer(ctx context.Context, caller, to string, amount uint64) error
	BalanceOf(ctx context.Context, owner string) (uint64, error)
	Allowance(ctx context.Context, owner, spender string) (uint64, error)
}

// AuthService defines authentication business logic.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	// Login returns the session token, its expiry, and the account.
	Login(ctx context.Context, username, password string) (string, time.Time, *domain.Account, error)
}

// EventService reads the committed event log.
type EventService interface {
	Events(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error)
}
