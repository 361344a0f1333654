package service

import (
	"context"
	"sort"
	"time"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// memLedger is an in-memory backing store implementing every repository
// port plus the payment token and the transactor. Begin snapshots the whole
// state and Rollback restores it, so the all-or-nothing behavior of the
// services is exercised for real.
type memLedger struct {
	roles     map[roleKey]bool
	paused    map[domain.Component]bool
	singles   map[uint64]domain.SingleUnitItem
	singleSeq uint64
	multis    map[uint64]domain.MultiUnitItem
	multiSeq  uint64
	balances  map[balanceKey]uint64
	operators map[pairKey]bool
	listings  map[listingKey]domain.Listing
	listOrder []listingKey
	stakes    map[uint64]domain.Stake
	events    []domain.LedgerEvent
	eventSeq  int64
	tokens    map[string]uint64
	allows    map[pairKey]uint64
}

type roleKey struct {
	component domain.Component
	role      domain.Role
	account   string
}

type balanceKey struct {
	owner string
	id    uint64
}

type pairKey struct {
	a string
	b string
}

type listingKey struct {
	kind   domain.CollectionKind
	id     uint64
	seller string
}

func newMemLedger() *memLedger {
	return &memLedger{
		roles:     map[roleKey]bool{},
		paused:    map[domain.Component]bool{},
		singles:   map[uint64]domain.SingleUnitItem{},
		multis:    map[uint64]domain.MultiUnitItem{},
		balances:  map[balanceKey]uint64{},
		operators: map[pairKey]bool{},
		listings:  map[listingKey]domain.Listing{},
		stakes:    map[uint64]domain.Stake{},
		tokens:    map[string]uint64{},
		allows:    map[pairKey]uint64{},
	}
}

func (m *memLedger) snapshot() *memLedger {
	s := newMemLedger()
	for k, v := range m.roles {
		s.roles[k] = v
	}
	for k, v := range m.paused {
		s.paused[k] = v
	}
	for k, v := range m.singles {
		s.singles[k] = v
	}
	for k, v := range m.multis {
		s.multis[k] = v
	}
	for k, v := range m.balances {
		s.balances[k] = v
	}
	for k, v := range m.operators {
		s.operators[k] = v
	}
	for k, v := range m.listings {
		s.listings[k] = v
	}
	for k, v := range m.stakes {
		s.stakes[k] = v
	}
	for k, v := range m.tokens {
		s.tokens[k] = v
	}
	for k, v := range m.allows {
		s.allows[k] = v
	}
	s.listOrder = append(s.listOrder, m.listOrder...)
	s.events = append(s.events, m.events...)
	s.singleSeq = m.singleSeq
	s.multiSeq = m.multiSeq
	s.eventSeq = m.eventSeq
	return s
}

func (m *memLedger) restore(s *memLedger) {
	*m = *s
}

// memTx satisfies pgx.Tx for the snapshot/restore dance. Methods beyond
// Commit and Rollback are never called by the services under test.
type memTx struct {
	pgx.Tx
	ledger *memLedger
	saved  *memLedger
	done   bool
}

func (m *memLedger) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{ledger: m, saved: m.snapshot()}, nil
}

func (t *memTx) Commit(ctx context.Context) error {
	t.done = true
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.done = true
	t.ledger.restore(t.saved)
	return nil
}

// --- RoleRepository ---

type memRoleRepo struct{ l *memLedger }

func (r *memRoleRepo) Has(ctx context.Context, component domain.Component, role domain.Role, account string) (bool, error) {
	return r.l.roles[roleKey{component, role, account}], nil
}

func (r *memRoleRepo) Grant(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error {
	r.l.roles[roleKey{grant.Component, grant.Role, grant.Account}] = true
	return nil
}

func (r *memRoleRepo) Revoke(ctx context.Context, tx pgx.Tx, grant domain.RoleGrant) error {
	delete(r.l.roles, roleKey{grant.Component, grant.Role, grant.Account})
	return nil
}

func (r *memRoleRepo) IsPaused(ctx context.Context, component domain.Component) (bool, error) {
	return r.l.paused[component], nil
}

func (r *memRoleRepo) SetPaused(ctx context.Context, tx pgx.Tx, component domain.Component, paused bool) error {
	r.l.paused[component] = paused
	return nil
}

func (r *memRoleRepo) EnsureComponent(ctx context.Context, tx pgx.Tx, component domain.Component) error {
	if _, ok := r.l.paused[component]; !ok {
		r.l.paused[component] = false
	}
	return nil
}

// --- SingleUnitRepository ---

type memSingleRepo struct{ l *memLedger }

func (r *memSingleRepo) NextID(ctx context.Context, tx pgx.Tx) (uint64, error) {
	r.l.singleSeq++
	return r.l.singleSeq, nil
}

func (r *memSingleRepo) Insert(ctx context.Context, tx pgx.Tx, item *domain.SingleUnitItem) error {
	r.l.singles[item.ID] = *item
	return nil
}

func (r *memSingleRepo) Delete(ctx context.Context, tx pgx.Tx, id uint64) error {
	delete(r.l.singles, id)
	return nil
}

func (r *memSingleRepo) Get(ctx context.Context, id uint64) (*domain.SingleUnitItem, error) {
	if item, ok := r.l.singles[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (r *memSingleRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, id uint64) (*domain.SingleUnitItem, error) {
	return r.Get(ctx, id)
}

func (r *memSingleRepo) UpdateOwner(ctx context.Context, tx pgx.Tx, id uint64, owner string) error {
	item := r.l.singles[id]
	item.Owner = owner
	item.Delegate = ""
	r.l.singles[id] = item
	return nil
}

func (r *memSingleRepo) SetDelegate(ctx context.Context, tx pgx.Tx, id uint64, delegate string) error {
	item := r.l.singles[id]
	item.Delegate = delegate
	r.l.singles[id] = item
	return nil
}

func (r *memSingleRepo) SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error {
	item := r.l.singles[id]
	item.MetadataURI = uri
	r.l.singles[id] = item
	return nil
}

func (r *memSingleRepo) OwnedBy(ctx context.Context, owner string) ([]uint64, error) {
	var ids []uint64
	for id, item := range r.l.singles {
		if item.Owner == owner {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// --- MultiUnitRepository ---

type memMultiRepo struct{ l *memLedger }

func (r *memMultiRepo) NextID(ctx context.Context, tx pgx.Tx) (uint64, error) {
	r.l.multiSeq++
	return r.l.multiSeq, nil
}

func (r *memMultiRepo) GetItem(ctx context.Context, id uint64) (*domain.MultiUnitItem, error) {
	if item, ok := r.l.multis[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (r *memMultiRepo) InsertItem(ctx context.Context, tx pgx.Tx, item *domain.MultiUnitItem) error {
	r.l.multis[item.ID] = *item
	return nil
}

func (r *memMultiRepo) SetMetadataURI(ctx context.Context, tx pgx.Tx, id uint64, uri string) error {
	item := r.l.multis[id]
	item.MetadataURI = uri
	r.l.multis[id] = item
	return nil
}

func (r *memMultiRepo) SetPrice(ctx context.Context, tx pgx.Tx, id uint64, price uint64) error {
	item := r.l.multis[id]
	item.Price = &price
	r.l.multis[id] = item
	return nil
}

func (r *memMultiRepo) Balance(ctx context.Context, owner string, id uint64) (uint64, error) {
	return r.l.balances[balanceKey{owner, id}], nil
}

func (r *memMultiRepo) BalanceForUpdate(ctx context.Context, tx pgx.Tx, owner string, id uint64) (uint64, error) {
	return r.Balance(ctx, owner, id)
}

func (r *memMultiRepo) AddBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error {
	r.l.balances[balanceKey{owner, id}] += delta
	return nil
}

func (r *memMultiRepo) SubBalance(ctx context.Context, tx pgx.Tx, owner string, id uint64, delta uint64) error {
	key := balanceKey{owner, id}
	r.l.balances[key] -= delta
	if r.l.balances[key] == 0 {
		delete(r.l.balances, key)
	}
	return nil
}

func (r *memMultiRepo) SetOperator(ctx context.Context, tx pgx.Tx, owner, operator string, approved bool) error {
	if approved {
		r.l.operators[pairKey{owner, operator}] = true
	} else {
		delete(r.l.operators, pairKey{owner, operator})
	}
	return nil
}

func (r *memMultiRepo) IsOperator(ctx context.Context, owner, operator string) (bool, error) {
	return r.l.operators[pairKey{owner, operator}], nil
}

// --- ListingRepository ---

type memListingRepo struct{ l *memLedger }

func (r *memListingRepo) Upsert(ctx context.Context, tx pgx.Tx, listing *domain.Listing) error {
	key := listingKey{listing.Kind, listing.ItemID, listing.Seller}
	stored := *listing
	if existing, ok := r.l.listings[key]; ok {
		// Replaced listings keep their original created_at, like the SQL
		// upsert, so they hold their slot in the insertion-ordered view.
		stored.CreatedAt = existing.CreatedAt
	} else {
		r.l.listOrder = append(r.l.listOrder, key)
	}
	r.l.listings[key] = stored
	return nil
}

func (r *memListingRepo) Get(ctx context.Context, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error) {
	if listing, ok := r.l.listings[listingKey{kind, itemID, seller}]; ok {
		return &listing, nil
	}
	return nil, nil
}

func (r *memListingRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) (*domain.Listing, error) {
	return r.Get(ctx, kind, itemID, seller)
}

func (r *memListingRepo) FindSingleForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Listing, error) {
	for key, listing := range r.l.listings {
		if key.kind == domain.KindSingleUnit && key.id == itemID {
			return &listing, nil
		}
	}
	return nil, nil
}

func (r *memListingRepo) Reduce(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string, newAmount uint64) error {
	key := listingKey{kind, itemID, seller}
	listing := r.l.listings[key]
	listing.Amount = newAmount
	r.l.listings[key] = listing
	return nil
}

func (r *memListingRepo) Delete(ctx context.Context, tx pgx.Tx, kind domain.CollectionKind, itemID uint64, seller string) error {
	key := listingKey{kind, itemID, seller}
	delete(r.l.listings, key)
	for i, k := range r.l.listOrder {
		if k == key {
			r.l.listOrder = append(r.l.listOrder[:i], r.l.listOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memListingRepo) ListDetailed(ctx context.Context) (*domain.DetailedListings, error) {
	out := &domain.DetailedListings{}
	for _, key := range r.l.listOrder {
		listing, ok := r.l.listings[key]
		if !ok {
			continue
		}
		detailed := domain.DetailedListing{
			ItemID:    listing.ItemID,
			Seller:    listing.Seller,
			UnitPrice: listing.UnitPrice,
			Amount:    listing.Amount,
		}
		switch key.kind {
		case domain.KindSingleUnit:
			detailed.URI = r.l.singles[key.id].MetadataURI
			out.SingleUnit = append(out.SingleUnit, detailed)
		case domain.KindMultiUnit:
			detailed.URI = r.l.multis[key.id].MetadataURI
			out.MultiUnit = append(out.MultiUnit, detailed)
		}
	}
	return out, nil
}

// --- StakeRepository ---

type memStakeRepo struct{ l *memLedger }

func (r *memStakeRepo) Get(ctx context.Context, itemID uint64) (*domain.Stake, error) {
	if stake, ok := r.l.stakes[itemID]; ok {
		return &stake, nil
	}
	return nil, nil
}

func (r *memStakeRepo) Insert(ctx context.Context, tx pgx.Tx, stake *domain.Stake) error {
	r.l.stakes[stake.ItemID] = *stake
	return nil
}

func (r *memStakeRepo) Delete(ctx context.Context, tx pgx.Tx, itemID uint64) error {
	delete(r.l.stakes, itemID)
	return nil
}

func (r *memStakeRepo) ByStaker(ctx context.Context, staker string) ([]domain.Stake, error) {
	var out []domain.Stake
	for _, stake := range r.l.stakes {
		if stake.Staker == staker {
			out = append(out, stake)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *memStakeRepo) ByStakerForUpdate(ctx context.Context, tx pgx.Tx, staker string) ([]domain.Stake, error) {
	return r.ByStaker(ctx, staker)
}

func (r *memStakeRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, itemID uint64) (*domain.Stake, error) {
	return r.Get(ctx, itemID)
}

func (r *memStakeRepo) ResetStakedAt(ctx context.Context, tx pgx.Tx, itemID uint64, at time.Time) error {
	stake := r.l.stakes[itemID]
	stake.StakedAt = at
	r.l.stakes[itemID] = stake
	return nil
}

// --- EventRepository ---

type memEventRepo struct{ l *memLedger }

func (r *memEventRepo) Append(ctx context.Context, tx pgx.Tx, event *domain.LedgerEvent) error {
	r.l.eventSeq++
	event.ID = r.l.eventSeq
	r.l.events = append(r.l.events, *event)
	return nil
}

func (r *memEventRepo) List(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	var out []domain.LedgerEvent
	for _, ev := range r.l.events {
		if ev.ID > afterID {
			out = append(out, ev)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// --- PaymentToken ---

type memToken struct{ l *memLedger }

func (t *memToken) Mint(ctx context.Context, tx pgx.Tx, to string, amount uint64) error {
	t.l.tokens[to] += amount
	return nil
}

func (t *memToken) Transfer(ctx context.Context, tx pgx.Tx, from, to string, amount uint64) error {
	if t.l.tokens[from] < amount {
		return ports.ErrTokenInsufficientBalance
	}
	t.l.tokens[from] -= amount
	t.l.tokens[to] += amount
	return nil
}

func (t *memToken) TransferFrom(ctx context.Context, tx pgx.Tx, spender, from, to string, amount uint64) error {
	key := pairKey{from, spender}
	if t.l.allows[key] < amount {
		return ports.ErrTokenInsufficientAllowance
	}
	if err := t.Transfer(ctx, tx, from, to, amount); err != nil {
		return err
	}
	t.l.allows[key] -= amount
	return nil
}

func (t *memToken) Approve(ctx context.Context, tx pgx.Tx, owner, spender string, amount uint64) error {
	t.l.allows[pairKey{owner, spender}] = amount
	return nil
}

func (t *memToken) Allowance(ctx context.Context, owner, spender string) (uint64, error) {
	return t.l.allows[pairKey{owner, spender}], nil
}

func (t *memToken) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	return t.l.tokens[owner], nil
}

func (t *memToken) BalanceOfForUpdate(ctx context.Context, tx pgx.Tx, owner string) (uint64, error) {
	return t.l.tokens[owner], nil
}

// --- ListingCache ---

type memListingCache struct {
	cached *domain.DetailedListings
	sets   int
	hits   int
}

func (c *memListingCache) Get(ctx context.Context) (*domain.DetailedListings, error) {
	if c.cached != nil {
		c.hits++
	}
	return c.cached, nil
}

func (c *memListingCache) Set(ctx context.Context, listings *domain.DetailedListings, ttl time.Duration) error {
	c.cached = listings
	c.sets++
	return nil
}

func (c *memListingCache) Invalidate(ctx context.Context) error {
	c.cached = nil
	return nil
}

// --- Clock ---

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// ledgerFixture wires every service over one memLedger.
type ledgerFixture struct {
	ledger  *memLedger
	clock   *fakeClock
	cache   *memListingCache
	token   *memToken
	access  *AccessServiceImpl
	single  *SingleCollectionServiceImpl
	multi   *MultiCollectionServiceImpl
	market  *MarketplaceServiceImpl
	staking *StakingServiceImpl
	orch    *OrchestratorServiceImpl
}

const (
	fixtureAdmin   = "0x00000000000000000000000000000000000admin"
	fixtureMarket  = "0x0000000000000000000000000000000004d41524"
	fixtureStaking = "0x00000000000000000000000000000005354414b4"
	fixtureOrch    = "0x0000000000000000000000000000004f52434845"
	fixtureReward  = uint64(10)
)

func newLedgerFixture() *ledgerFixture {
	ledger := newMemLedger()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cache := &memListingCache{}
	token := &memToken{l: ledger}
	log := zerolog.Nop()

	roleRepo := &memRoleRepo{l: ledger}
	singleRepo := &memSingleRepo{l: ledger}
	multiRepo := &memMultiRepo{l: ledger}
	listingRepo := &memListingRepo{l: ledger}
	stakeRepo := &memStakeRepo{l: ledger}
	eventRepo := &memEventRepo{l: ledger}

	access := NewAccessService(roleRepo, ledger, log)
	single := NewSingleCollectionService(access, singleRepo, eventRepo, ledger, clock, log)
	multi := NewMultiCollectionService(access, multiRepo, eventRepo, ledger, clock, log)
	market := NewMarketplaceService(access, single, multi, listingRepo, eventRepo, token, cache, ledger, fixtureMarket, clock, log)
	staking := NewStakingService(access, single, stakeRepo, eventRepo, token, ledger, fixtureStaking, fixtureReward, clock, log)
	orch := NewOrchestratorService(access, single, multi, market, staking, eventRepo, ledger, fixtureOrch, log)

	f := &ledgerFixture{
		ledger:  ledger,
		clock:   clock,
		cache:   cache,
		token:   token,
		access:  access,
		single:  single,
		multi:   multi,
		market:  market,
		staking: staking,
		orch:    orch,
	}
	if err := access.Bootstrap(context.Background(), fixtureAdmin); err != nil {
		panic(err)
	}
	return f
}

// grant is a test helper that bypasses the ADMIN gate.
func (f *ledgerFixture) grant(component domain.Component, role domain.Role, account string) {
	f.ledger.roles[roleKey{component, role, account}] = true
}

// creditTokens seeds a payment-token balance directly.
func (f *ledgerFixture) creditTokens(account string, amount uint64) {
	f.ledger.tokens[account] += amount
}

// eventsOfType filters the committed log.
func (f *ledgerFixture) eventsOfType(t domain.EventType) []domain.LedgerEvent {
	var out []domain.LedgerEvent
	for _, ev := range f.ledger.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
