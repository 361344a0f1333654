package service

import (
	"context"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// SingleCollectionServiceImpl implements ports.SingleCollectionService:
// the one-owner-per-item registry with role-gated mint/burn/metadata.
type SingleCollectionServiceImpl struct {
	access     ports.AccessService
	itemRepo   ports.SingleUnitRepository
	eventRepo  ports.EventRepository
	transactor ports.DBTransactor
	clock      ports.Clock
	log        zerolog.Logger
}

// NewSingleCollectionService creates a new SingleCollectionServiceImpl.
func NewSingleCollectionService(
	access ports.AccessService,
	itemRepo ports.SingleUnitRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *SingleCollectionServiceImpl {
	return &SingleCollectionServiceImpl{
		access:     access,
		itemRepo:   itemRepo,
		eventRepo:  eventRepo,
		transactor: transactor,
		clock:      clock,
		log:        log,
	}
}

// Mint allocates the next id and assigns it to `to`. MINTER-gated.
func (s *SingleCollectionServiceImpl) Mint(ctx context.Context, caller, to string) (uint64, error) {
	if err := s.access.RequireActive(ctx, domain.ComponentSingleUnit); err != nil {
		return 0, err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentSingleUnit, domain.RoleMinter, caller); err != nil {
		return 0, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	id, err := s.itemRepo.NextID(ctx, tx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("allocate id: %w", err))
	}

	item := &domain.SingleUnitItem{
		ID:       id,
		Owner:    to,
		MintedAt: s.clock.Now(),
	}
	if err := s.itemRepo.Insert(ctx, tx, item); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("insert item: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventMinted, domain.MintedPayload{
		Kind: domain.KindSingleUnit, To: to, ItemID: id,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Uint64("item_id", id).Str("to", to).Msg("single-unit item minted")
	return id, nil
}

// Burn removes the item entirely; the id is never reassigned. BURNER-gated.
func (s *SingleCollectionServiceImpl) Burn(ctx context.Context, caller string, id uint64) error {
	if err := s.access.RequireActive(ctx, domain.ComponentSingleUnit); err != nil {
		return err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentSingleUnit, domain.RoleBurner, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	item, err := s.itemRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock item: %w", err))
	}
	if item == nil {
		return apperror.ErrNotFound(id)
	}

	if err := s.itemRepo.Delete(ctx, tx, id); err != nil {
		return apperror.InternalError(fmt.Errorf("delete item: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventBurned, domain.BurnedPayload{
		Kind: domain.KindSingleUnit, Owner: item.Owner, ItemID: id,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Uint64("item_id", id).Str("owner", item.Owner).Msg("single-unit item burned")
	return nil
}

// SetMetadataURI updates the item's metadata. METADATA_MANAGER-gated.
func (s *SingleCollectionServiceImpl) SetMetadataURI(ctx context.Context, caller string, id uint64, uri string) error {
	if err := s.access.RequireActive(ctx, domain.ComponentSingleUnit); err != nil {
		return err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentSingleUnit, domain.RoleMetadataManager, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	item, err := s.itemRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock item: %w", err))
	}
	if item == nil {
		return apperror.ErrNotFound(id)
	}

	if err := s.itemRepo.SetMetadataURI(ctx, tx, id, uri); err != nil {
		return apperror.InternalError(fmt.Errorf("set metadata uri: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventMetadataUpdated, domain.MetadataUpdatedPayload{
		Kind: domain.KindSingleUnit, ItemID: id, URI: uri,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Approve names a delegate allowed to transfer the item. Owner-only.
func (s *SingleCollectionServiceImpl) Approve(ctx context.Context, caller string, id uint64, delegate string) error {
	if err := s.access.RequireActive(ctx, domain.ComponentSingleUnit); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	item, err := s.itemRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock item: %w", err))
	}
	if item == nil {
		return apperror.ErrNotFound(id)
	}
	if item.Owner != caller {
		return apperror.ErrNotOwner()
	}

	if err := s.itemRepo.SetDelegate(ctx, tx, id, delegate); err != nil {
		return apperror.InternalError(fmt.Errorf("set delegate: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Transfer moves the item in its own transaction.
func (s *SingleCollectionServiceImpl) Transfer(ctx context.Context, caller, from string, id uint64, to string) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.TransferTx(ctx, tx, caller, from, id, to); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// TransferTx moves the item inside a caller-owned transaction. The caller
// must be the owner or the item's approved delegate; the delegate is
// cleared by the transfer.
func (s *SingleCollectionServiceImpl) TransferTx(ctx context.Context, tx pgx.Tx, caller, from string, id uint64, to string) error {
	if err := s.access.RequireActive(ctx, domain.ComponentSingleUnit); err != nil {
		return err
	}

	item, err := s.itemRepo.GetForUpdate(ctx, tx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock item: %w", err))
	}
	if item == nil {
		return apperror.ErrNotFound(id)
	}
	if item.Owner != from {
		return apperror.ErrNotOwner()
	}
	if caller != from && caller != item.Delegate {
		return apperror.ErrNotOwner()
	}

	if err := s.itemRepo.UpdateOwner(ctx, tx, id, to); err != nil {
		return apperror.InternalError(fmt.Errorf("update owner: %w", err))
	}
	return nil
}

// OwnerOf returns the current owner, or NotFound for a burned or
// never-minted id.
func (s *SingleCollectionServiceImpl) OwnerOf(ctx context.Context, id uint64) (string, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return item.Owner, nil
}

// Get fetches the item, or NotFound.
func (s *SingleCollectionServiceImpl) Get(ctx context.Context, id uint64) (*domain.SingleUnitItem, error) {
	item, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item: %w", err))
	}
	if item == nil {
		return nil, apperror.ErrNotFound(id)
	}
	return item, nil
}

// ItemsOwnedBy returns the account's ids, ascending.
func (s *SingleCollectionServiceImpl) ItemsOwnedBy(ctx context.Context, account string) ([]uint64, error) {
	ids, err := s.itemRepo.OwnedBy(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("owned by: %w", err))
	}
	return ids, nil
}

func (s *SingleCollectionServiceImpl) appendEvent(ctx context.Context, tx pgx.Tx, eventType domain.EventType, payload any) error {
	ev, err := domain.NewEvent(eventType, payload)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	return nil
}
