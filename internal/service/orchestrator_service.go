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

// OrchestratorServiceImpl implements ports.OrchestratorService. It executes
// atomic swaps between accounts and fronts the staking and marketplace
// entry points behind its own pause flag. Swap legs move assets with the
// orchestrator's own address as the acting caller, so both parties must have
// approved it as delegate (single-unit) or operator (multi-unit) beforehand.
type OrchestratorServiceImpl struct {
	access     ports.AccessService
	single     ports.SingleCollectionService
	multi      ports.MultiCollectionService
	market     ports.MarketplaceService
	staking    ports.StakingService
	eventRepo  ports.EventRepository
	transactor ports.DBTransactor
	address    string
	log        zerolog.Logger
}

// NewOrchestratorService creates a new OrchestratorServiceImpl. address is
// the orchestrator's ledger address, the delegate both swap parties approve.
func NewOrchestratorService(
	access ports.AccessService,
	single ports.SingleCollectionService,
	multi ports.MultiCollectionService,
	market ports.MarketplaceService,
	staking ports.StakingService,
	eventRepo ports.EventRepository,
	transactor ports.DBTransactor,
	address string,
	log zerolog.Logger,
) *OrchestratorServiceImpl {
	return &OrchestratorServiceImpl{
		access:     access,
		single:     single,
		multi:      multi,
		market:     market,
		staking:    staking,
		eventRepo:  eventRepo,
		transactor: transactor,
		address:    address,
		log:        log,
	}
}

// SwapSingleUnit exchanges one single-unit item for another between two
// accounts. Both legs land or neither does.
func (s *OrchestratorServiceImpl) SwapSingleUnit(ctx context.Context, caller, ownerA string, idA uint64, ownerB string, idB uint64) error {
	if err := s.requireSwap(ctx, caller); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.single.TransferTx(ctx, tx, s.address, ownerA, idA, ownerB); err != nil {
		return err
	}
	if err := s.single.TransferTx(ctx, tx, s.address, ownerB, idB, ownerA); err != nil {
		return err
	}

	if err := s.appendSwapEvent(ctx, tx, ownerA, idA, ownerB, idB, 1); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner_a", ownerA).Uint64("item_a", idA).
		Str("owner_b", ownerB).Uint64("item_b", idB).
		Msg("single-unit swap executed")
	return nil
}

// SwapMultiUnit exchanges qtyA units of idA for qtyB units of idB.
func (s *OrchestratorServiceImpl) SwapMultiUnit(ctx context.Context, caller, ownerA string, idA, qtyA uint64, ownerB string, idB, qtyB uint64) error {
	if err := s.requireSwap(ctx, caller); err != nil {
		return err
	}
	if qtyA == 0 || qtyB == 0 {
		return apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.multi.TransferTx(ctx, tx, s.address, ownerA, idA, qtyA, ownerB); err != nil {
		return err
	}
	if err := s.multi.TransferTx(ctx, tx, s.address, ownerB, idB, qtyB, ownerA); err != nil {
		return err
	}

	if err := s.appendSwapEvent(ctx, tx, ownerA, idA, ownerB, idB, qtyB); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner_a", ownerA).Uint64("item_a", idA).Uint64("qty_a", qtyA).
		Str("owner_b", ownerB).Uint64("item_b", idB).Uint64("qty_b", qtyB).
		Msg("multi-unit swap executed")
	return nil
}

// SwapCross exchanges a single-unit item from ownerA for qtyB multi-unit
// units of idB from ownerB.
func (s *OrchestratorServiceImpl) SwapCross(ctx context.Context, caller, ownerA string, idA uint64, ownerB string, idB, qtyB uint64) error {
	if err := s.requireSwap(ctx, caller); err != nil {
		return err
	}
	if qtyB == 0 {
		return apperror.ErrInvalidAmount()
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := s.single.TransferTx(ctx, tx, s.address, ownerA, idA, ownerB); err != nil {
		return err
	}
	if err := s.multi.TransferTx(ctx, tx, s.address, ownerB, idB, qtyB, ownerA); err != nil {
		return err
	}

	if err := s.appendSwapEvent(ctx, tx, ownerA, idA, ownerB, idB, qtyB); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("owner_a", ownerA).Uint64("item_a", idA).
		Str("owner_b", ownerB).Uint64("item_b", idB).Uint64("qty_b", qtyB).
		Msg("cross-collection swap executed")
	return nil
}

// StakeNFT forwards to the staking ledger once the orchestrator itself is
// active. The staking component's own pause flag is still enforced inside.
func (s *OrchestratorServiceImpl) StakeNFT(ctx context.Context, caller string, id uint64) error {
	if err := s.access.RequireActive(ctx, domain.ComponentOrchestrator); err != nil {
		return err
	}
	return s.staking.Stake(ctx, caller, id)
}

// ClaimRewards forwards to the staking ledger.
func (s *OrchestratorServiceImpl) ClaimRewards(ctx context.Context, caller string) (uint64, error) {
	if err := s.access.RequireActive(ctx, domain.ComponentOrchestrator); err != nil {
		return 0, err
	}
	return s.staking.ClaimRewards(ctx, caller)
}

// ListForSale forwards to the marketplace.
func (s *OrchestratorServiceImpl) ListForSale(ctx context.Context, caller string, kind domain.CollectionKind, id, unitPrice, amount uint64) error {
	if err := s.access.RequireActive(ctx, domain.ComponentOrchestrator); err != nil {
		return err
	}
	return s.market.ListForSale(ctx, caller, kind, id, unitPrice, amount)
}

// Pause halts the orchestrator's operations. PAUSER-gated.
func (s *OrchestratorServiceImpl) Pause(ctx context.Context, caller string) error {
	return s.access.Pause(ctx, caller, domain.ComponentOrchestrator)
}

// Unpause resumes the orchestrator's operations. PAUSER-gated.
func (s *OrchestratorServiceImpl) Unpause(ctx context.Context, caller string) error {
	return s.access.Unpause(ctx, caller, domain.ComponentOrchestrator)
}

func (s *OrchestratorServiceImpl) requireSwap(ctx context.Context, caller string) error {
	if err := s.access.RequireActive(ctx, domain.ComponentOrchestrator); err != nil {
		return err
	}
	return s.access.RequireRole(ctx, domain.ComponentOrchestrator, domain.RoleSwap, caller)
}

func (s *OrchestratorServiceImpl) appendSwapEvent(ctx context.Context, tx pgx.Tx, ownerA string, itemA uint64, ownerB string, itemB, amount uint64) error {
	ev, err := domain.NewEvent(domain.EventTokensSwapped, domain.TokensSwappedPayload{
		OwnerA: ownerA, ItemA: itemA, OwnerB: ownerB, ItemB: itemB, Amount: amount,
	})
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	return nil
}
