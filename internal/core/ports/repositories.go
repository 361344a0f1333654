package ports

import (
	"context"
	"time"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByAddress(ctx context.Context, address string) (*domain.Account, error)
}

// RoleRepository persists role grants and per-component pause flags.
// Mutations take pgx.Tx so they join the caller's transaction.
type RoleRepository interface {
	Has(ctx context.Context, component domain.Component, role domain.Role, account string) (bool, error)
	Grant(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error
	Revoke(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error
	IsPaused(ctx context.Context, component domain.Component) (bool, error)
	SetPaused(ctx context.Context, tx pgx.Tx, component domain.Component, paused bool) error
	// EnsureComponent seeds the pause-flag row for a component (unpaused).
	EnsureComponent(ctx context.Context, tx pgx.Tx, component domain.Component) error
}

// SingleUnitRepository persists the one-owner-per-item registry.
type SingleUnitRepository interface {
	// NextID allocates the next monotonic item id; ids are never reused.
	NextID(ctx context.Context, tx pgx.Tx) (uint64, error)
	Insert(ctx context.Context, tx pgx.Tx, item *domain.SingleUnitItem) error
	Delete(ctx context.Context, tx pgx.Tx, id uint64) error
	Get(ctx context.Context, id uint64) (*domain.SingleUnitItem, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.SingleUnitItem, error)
	// UpdateOwner reassigns ownership and clears any transfer delegate.
	UpdateOwner(ctx context.Context, tx pgx.Tx, id uint64, owner string) error
	SetDelegate(ctx context.Context, tx pgx.Tx, id uint64, delegate string) error
	SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error
	// OwnedBy returns the ids held by an account, ascending.
	OwnedBy(ctx context.Context, owner string) ([]uint64, error)
}

// MultiUnitRepository persists the (item, owner) => quantity ledger.
type MultiUnitRepository interface {
	NextID(ctx context.Context, tx pgx.Tx) (uint64, error)
	GetItem(ctx context.Context, id uint64) (*domain.MultiUnitItem, error)
	InsertItem(ctx context.Context, tx pgx.Tx, item *domain.MultiUnitItem) error
	SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error
	SetPrice(ctx context.Context, tx pgx.Tx, id uint64, price uint64) error
	Balance(ctx context.Context, owner string, id uint64) (uint64, error)
	BalanceForUpdate(ctx context.Context, tx pgx.Tx, owner string, id uint64) (uint64, error)
	AddBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error
	// SubBalance decrements and prunes the row at zero. Callers must have
	// verified sufficiency under lock first.
	SubBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error
	SetOperator(ctx context.Context, tx pgx.Tx, owner, operator string, approved bool) error
	IsOperator(ctx context.Context, owner, operator string) (bool, error)
}

// ListingRepository persists active marketplace listings.
type ListingRepository interface {
	Upsert(ctx context.Context, tx pgx.Tx, listing *domain.Listing) error
	Get(ctx context.Context, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error)
	// FindSingleForUpdate resolves the unique single-unit listing for an item.
	FindSingleForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Listing, error)
	Reduce(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string, newAmount uint64) error
	Delete(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) error
	// ListDetailed joins listings with item metadata, insertion-ordered.
	ListDetailed(ctx context.Context) (*domain.DetailedListings, error)
}

// StakeRepository persists active stakes.
type StakeRepository interface {
	Get(ctx context.Context, itemID uint64) (*domain.Stake, error)
	Insert(ctx context.Context, tx pgx.Tx, stake *domain.Stake) error
	Delete(ctx context.Context, tx pgx.Tx, itemID uint64) error
	ByStaker(ctx context.Context, staker string) ([]domain.Stake, error)
	ByStakerForUpdate(ctx context.Context, tx pgx.Tx, staker string) ([]domain.Stake, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Stake, error)
	ResetStakedAt(ctx context.Context, tx pgx.Tx, itemID uint64, at time.Time) error
}

// EventRepository persists the append-only event log. Append joins the
// mutating transaction so events commit with the state change or not at all.
type EventRepository interface {
	Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error
	List(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
