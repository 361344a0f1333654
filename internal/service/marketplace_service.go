package service

import (
	"context"
	"fmt"
	"time"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const listingCacheTTL = 30 * time.Second

// MarketplaceServiceImpl implements ports.MarketplaceService: the
// escrow-based listing and purchase engine over both collections. Listed
// amounts are held by the marketplace custody account; settlement happens
// in the payment token, all inside one database transaction.
type MarketplaceServiceImpl struct {
	access      ports.AccessService
	single      ports.SingleCollectionService
	multi       ports.MultiCollectionService
	listingRepo ports.ListingRepository
	eventRepo   ports.EventRepository
	token       ports.PaymentToken
	cache       ports.ListingCache
	transactor  ports.DBTransactor
	custody     string
	clock       ports.Clock
	log         zerolog.Logger
}

// NewMarketplaceService creates a new MarketplaceServiceImpl. custody is
// the ledger address holding escrowed items; buyers approve it as the
// payment-token spender.
func NewMarketplaceService(
	access ports.AccessService,
	single ports.SingleCollectionService,
	multi ports.MultiCollectionService,
	listingRepo ports.ListingRepository,
	eventRepo ports.EventRepository,
	token ports.PaymentToken,
	cache ports.ListingCache,
	transactor ports.DBTransactor,
	custody string,
	clock ports.Clock,
	log zerolog.Logger,
) *MarketplaceServiceImpl {
	return &MarketplaceServiceImpl{
		access:      access,
		single:      single,
		multi:       multi,
		listingRepo: listingRepo,
		eventRepo:   eventRepo,
		token:       token,
		cache:       cache,
		transactor:  transactor,
		custody:     custody,
		clock:       clock,
		log:         log,
	}
}

// ListForSale escrows the amount with the custody account and records the
// listing. Re-listing the same (kind, id, seller) replaces the listing:
// the old multi-unit escrow is released before the new amount is taken.
func (s *MarketplaceServiceImpl) ListForSale(ctx context.Context, seller string, kind domain.CollectionKind, id, unitPrice, amount uint64) error {
	if !domain.ValidKind(kind) {
		return apperror.Validation(fmt.Sprintf("unknown collection kind %q", kind))
	}
	if unitPrice == 0 {
		return apperror.ErrInvalidPrice()
	}
	if kind == domain.KindSingleUnit && amount != 1 {
		return apperror.Validation("single-unit listings must have amount 1")
	}
	if amount == 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.access.RequireActive(ctx, domain.ComponentMarketplace); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	existing, err := s.listingRepo.GetForUpdate(ctx, tx, kind, id, seller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}

	switch kind {
	case domain.KindSingleUnit:
		// The item is already in escrow when replacing a listing.
		if existing == nil {
			if err := s.single.TransferTx(ctx, tx, seller, seller, id, s.custody); err != nil {
				return err
			}
		}
	case domain.KindMultiUnit:
		if existing != nil {
			if err := s.multi.TransferTx(ctx, tx, s.custody, s.custody, id, existing.Amount, seller); err != nil {
				return err
			}
		}
		if err := s.multi.TransferTx(ctx, tx, seller, seller, id, amount, s.custody); err != nil {
			return err
		}
	}

	listing := &domain.Listing{
		Kind:      kind,
		ItemID:    id,
		Seller:    seller,
		Amount:    amount,
		UnitPrice: unitPrice,
		CreatedAt: s.clock.Now(),
	}
	if err := s.listingRepo.Upsert(ctx, tx, listing); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert listing: %w", err))
	}

	if err := s.appendEvent(ctx, tx, domain.EventItemListed, domain.ItemListedPayload{
		Kind: kind, ItemID: id, Amount: amount, UnitPrice: unitPrice,
	}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.invalidateCache(ctx)

	s.log.Info().
		Str("kind", string(kind)).
		Uint64("item_id", id).
		Str("seller", seller).
		Uint64("amount", amount).
		Uint64("unit_price", unitPrice).
		Msg("item listed for sale")

	return nil
}

// Buy settles a purchase: payment moves buyer -> seller via the token's
// allowance for the custody account, the escrowed asset moves to the buyer,
// and the listing shrinks or disappears. Bookkeeping is written before the
// token transfer; any failure rolls the whole transaction back.
func (s *MarketplaceServiceImpl) Buy(ctx context.Context, buyer string, kind domain.CollectionKind, id uint64, seller string, amount uint64) (*ports.PurchaseResult, error) {
	if !domain.ValidKind(kind) {
		return nil, apperror.Validation(fmt.Sprintf("unknown collection kind %q", kind))
	}
	if err := s.access.RequireActive(ctx, domain.ComponentMarketplace); err != nil {
		return nil, err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var listing *domain.Listing
	if kind == domain.KindSingleUnit && seller == "" {
		listing, err = s.listingRepo.FindSingleForUpdate(ctx, tx, id)
	} else {
		if seller == "" {
			return nil, apperror.Validation("seller is required for multi-unit purchases")
		}
		listing, err = s.listingRepo.GetForUpdate(ctx, tx, kind, id, seller)
	}
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock listing: %w", err))
	}
	if listing == nil {
		return nil, apperror.ErrListingNotFound()
	}

	// Single-unit purchases always take the full (only) unit.
	if kind == domain.KindSingleUnit {
		if amount > 1 {
			return nil, apperror.Validation("single-unit purchases buy exactly one unit")
		}
		amount = 1
	}
	if amount == 0 {
		amount = listing.Amount
	}
	if amount > listing.Amount {
		return nil, apperror.ErrInsufficientBalance(amount, listing.Amount)
	}

	total, ok := listing.TotalPrice(amount)
	if !ok {
		return nil, apperror.Validation("total price exceeds the representable range")
	}
	remaining := listing.Amount - amount

	// Effects before interactions: the listing record is settled before the
	// token transfer runs.
	if remaining == 0 {
		if err := s.listingRepo.Delete(ctx, tx, listing.Kind, listing.ItemID, listing.Seller); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("delete listing: %w", err))
		}
	} else {
		if err := s.listingRepo.Reduce(ctx, tx, listing.Kind, listing.ItemID, listing.Seller, remaining); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("reduce listing: %w", err))
		}
	}

	switch listing.Kind {
	case domain.KindSingleUnit:
		if err := s.single.TransferTx(ctx, tx, s.custody, s.custody, id, buyer); err != nil {
			return nil, err
		}
	case domain.KindMultiUnit:
		if err := s.multi.TransferTx(ctx, tx, s.custody, s.custody, id, amount, buyer); err != nil {
			return nil, err
		}
	}

	if err := s.token.TransferFrom(ctx, tx, s.custody, buyer, listing.Seller, total); err != nil {
		return nil, apperror.ErrPaymentFailed(err)
	}

	if err := s.appendEvent(ctx, tx, domain.EventSold, domain.SoldPayload{
		ItemID: id, Buyer: buyer, Amount: amount, TotalPrice: total,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.invalidateCache(ctx)

	s.log.Info().
		Uint64("item_id", id).
		Str("buyer", buyer).
		Str("seller", listing.Seller).
		Uint64("amount", amount).
		Uint64("total_price", total).
		Msg("item sold")

	return &ports.PurchaseResult{
		ItemID:     id,
		Buyer:      buyer,
		Seller:     listing.Seller,
		Amount:     amount,
		TotalPrice: total,
		Remaining:  remaining,
	}, nil
}

// GetDetailedListedNFTs returns all active listings joined with each item's
// current metadata URI. The snapshot is cached in Redis best-effort.
func (s *MarketplaceServiceImpl) GetDetailedListedNFTs(ctx context.Context) (*domain.DetailedListings, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache read failed, falling through to DB")
	} else if cached != nil {
		return cached, nil
	}

	listings, err := s.listingRepo.ListDetailed(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list detailed: %w", err))
	}

	if err := s.cache.Set(ctx, listings, listingCacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("listing cache write failed")
	}

	return listings, nil
}

func (s *MarketplaceServiceImpl) invalidateCache(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache invalidation failed")
	}
}

func (s *MarketplaceServiceImpl) appendEvent(ctx context.Context, tx pgx.Tx, eventType domain.EventType, payload any) error {
	ev, err := domain.NewEvent(eventType, payload)
	if err != nil {
		return apperror.InternalError(err)
	}
	if err := s.eventRepo.Append(ctx, tx, ev); err != nil {
		return apperror.InternalError(fmt.Errorf("append event: %w", err))
	}
	return nil
}
