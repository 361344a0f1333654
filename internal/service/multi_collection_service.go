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

// MultiCollectionServiceImpl implements ports.MultiCollectionService:
// the (item, owner) => quantity ledger.
type MultiCollectionServiceImpl struct {
	access     ports.AccessService
	itemRepo   ports.MultiUnitRepository
	eventRepo  ports.EventRepository
	transactor ports.DBTransactor
	clock      ports.Clock
	log        zerolog.Logger
}

// NewMultiCollectionService creates a new MultiCollectionServiceImpl.
func NewMultiCollectionService(
	access ports.AccessService,
	itemRepo ports.MultiUnitRepository,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	clock ports.Clock,
	log zerolog.Logger,
) *MultiCollectionServiceImpl {
	return &MultiCollectionServiceImpl{
		access:     access,
		itemRepo:   itemRepo,
		eventRepo:  eventRepo,
		transactor: transactor,
		clock:      clock,
		log:        log,
	}
}

// Mint credits `amount` units of an id to `to`. MINTER-gated. id == 0
// allocates the next id; a positive id must already have been minted.
func (s *MultiCollectionServiceImpl) Mint(ctx context.Context, caller, to string, id, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, apperror.ErrInvalidAmount()
	}
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return 0, err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentMultiUnit, domain.RoleMinter, caller); err != nil {
		return 0, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if id == 0 {
		id, err = s.itemRepo.NextID(ctx, tx)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("allocate id: %w", err))
		}
		item := &domain.MultiUnitItem{ID: id, MintedAt: s.clock.Now()}
		if err := s.itemRepo.InsertItem(ctx, tx, item); err != nil {
			return 0, apperror.InternalError(fmt.Errorf("insert item: %w", err))
		}
	} else {
		item, err := s.itemRepo.GetItem(ctx, id)
		if err != nil {
			return 0, apperror.InternalError(fmt.Errorf("get item: %w", err))
		}
		if item == nil {
			return 0, apperror.ErrNotFound(id)
		}
	}

	if err := s.itemRepo.AddBalance(ctx, tx, to, id, amount); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("add balance: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventMinted, domain.MintedPayload{
		Kind: domain.KindMultiUnit, To: to, ItemID: id, Amount: amount,
	}); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Uint64("item_id", id).Str("to", to).Uint64("amount", amount).Msg("multi-unit items minted")
	return id, nil
}

// Burn debits `amount` units from `owner`. BURNER-gated.
func (s *MultiCollectionServiceImpl) Burn(ctx context.Context, caller, owner string, id, amount uint64) error {
	if amount == 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentMultiUnit, domain.RoleBurner, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	balance, err := s.itemRepo.BalanceForUpdate(ctx, tx, owner, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance < amount {
		return apperror.ErrInsufficientBalance(amount, balance)
	}

	if err := s.itemRepo.SubBalance(ctx, tx, owner, id, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("sub balance: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventBurned, domain.BurnedPayload{
		Kind: domain.KindMultiUnit, Owner: owner, ItemID: id, Amount: amount,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().Uint64("item_id", id).Str("owner", owner).Uint64("amount", amount).Msg("multi-unit items burned")
	return nil
}

// SetMetadataURI updates the id's metadata. METADATA_MANAGER-gated; the id
// must have been minted at least once.
func (s *MultiCollectionServiceImpl) SetMetadataURI(ctx context.Context, caller string, id uint64, uri string) error {
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentMultiUnit, domain.RoleMetadataManager, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.requireItem(ctx, id); err != nil {
		return err
	}

	if err := s.itemRepo.SetMetadataURI(ctx, tx, id, uri); err != nil {
		return apperror.InternalError(fmt.Errorf("set metadata uri: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventMetadataUpdated, domain.MetadataUpdatedPayload{
		Kind: domain.KindMultiUnit, ItemID: id, URI: uri,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// SetPrice records display-price metadata for the id. METADATA_MANAGER-gated.
func (s *MultiCollectionServiceImpl) SetPrice(ctx context.Context, caller string, id uint64, price uint64) error {
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return err
	}
	if err := s.access.RequireRole(ctx, domain.ComponentMultiUnit, domain.RoleMetadataManager, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.requireItem(ctx, id); err != nil {
		return err
	}

	if err := s.itemRepo.SetPrice(ctx, tx, id, price); err != nil {
		return apperror.InternalError(fmt.Errorf("set price: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// SetApprovalForAll lets `operator` move any of the caller's balances.
func (s *MultiCollectionServiceImpl) SetApprovalForAll(ctx context.Context, caller, operator string, approved bool) error {
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.itemRepo.SetOperator(ctx, tx, caller, operator, approved); err != nil {
		return apperror.InternalError(fmt.Errorf("set operator: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

// Transfer moves units in its own transaction.
func (s *MultiCollectionServiceImpl) Transfer(ctx context.Context, caller, from string, id, amount uint64, to string) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.TransferTx(ctx, tx, caller, from, id, amount, to); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

// TransferTx moves units inside a caller-owned transaction. The caller must
// be the balance holder or an approved operator.
func (s *MultiCollectionServiceImpl) TransferTx(ctx context.Context, tx pgx.Tx, caller, from string, id, amount uint64, to string) error {
	if amount == 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.access.RequireActive(ctx, domain.ComponentMultiUnit); err != nil {
		return err
	}

	if caller != from {
		ok, err := s.itemRepo.IsOperator(ctx, from, caller)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("operator lookup: %w", err))
		}
		if !ok {
			return apperror.ErrNotOwner()
		}
	}

	balance, err := s.itemRepo.BalanceForUpdate(ctx, tx, from, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balance: %w", err))
	}
	if balance < amount {
		return apperror.ErrInsufficientBalance(amount, balance)
	}

	if err := s.itemRepo.SubBalance(ctx, tx, from, id, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("sub balance: %w", err))
	}
	if err := s.itemRepo.AddBalance(ctx, tx, to, id, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("add balance: %w", err))
	}
	return nil
}

// BalanceOf is a read-only quantity lookup.
func (s *MultiCollectionServiceImpl) BalanceOf(ctx context.Context, owner string, id uint64) (uint64, error) {
	balance, err := s.itemRepo.Balance(ctx, owner, id)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("balance: %w", err))
	}
	return balance, nil
}

// GetItem fetches the id's metadata row, or NotFound.
func (s *MultiCollectionServiceImpl) GetItem(ctx context.Context, id uint64) (*domain.MultiUnitItem, error) {
	item, err := s.itemRepo.GetItem(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get item: %w", err))
	}
	if item == nil {
		return nil, apperror.ErrNotFound(id)
	}
	return item, nil
}

func (s *MultiCollectionServiceImpl) requireItem(ctx context.Context, id uint64) error {
	item, err := s.itemRepo.GetItem(ctx, id)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get item: %w", err))
	}
	if item == nil {
		return apperror.ErrNotFound(id)
	}
	return nil
}

func (s *MultiCollectionServiceImpl) appendEvent(ctx context.Context, tx pgx.Tx, eventType domain.EventType, payload any) error {
	ev, err := domain.NewEvent(eventType, payload)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	return nil
}
