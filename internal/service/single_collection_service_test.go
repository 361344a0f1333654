package service

import (
	"context"
	"encoding/json"
	"testing"

	"asset-exchange-ledger/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addrMinter = "0x000000000000000000000000000000000minter1"
	addrAlice  = "0x0000000000000000000000000000000000alice1"
	addrBob    = "0x00000000000000000000000000000000000bob01"
)

func newSingleFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	f := newLedgerFixture()
	f.grant(domain.ComponentSingleUnit, domain.RoleMinter, addrMinter)
	f.grant(domain.ComponentSingleUnit, domain.RoleBurner, addrMinter)
	f.grant(domain.ComponentSingleUnit, domain.RoleMetadataManager, addrMinter)
	return f
}

func TestSingleCollection_MintAssignsMonotonicIDs(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id1, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)
	id2, err := f.single.Mint(ctx, addrMinter, addrBob)
	require.NoError(t, err)
	assert.Equal(t, id1+1, id2)

	owner, err := f.single.OwnerOf(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, addrAlice, owner)

	events := f.eventsOfType(domain.EventMinted)
	require.Len(t, events, 2)
	var payload domain.MintedPayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, domain.KindSingleUnit, payload.Kind)
	assert.Equal(t, addrAlice, payload.To)
	assert.Equal(t, id1, payload.ItemID)
}

func TestSingleCollection_MintRequiresMinterRole(t *testing.T) {
	f := newSingleFixture(t)

	_, err := f.single.Mint(context.Background(), addrAlice, addrAlice)
	assertCode(t, err, "ACL_001")
	assert.Empty(t, f.ledger.singles)
}

func TestSingleCollection_BurnedIDIsNeverReassigned(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)
	require.NoError(t, f.single.Burn(ctx, addrMinter, id))

	_, err = f.single.OwnerOf(ctx, id)
	assertCode(t, err, "AST_001")

	next, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)
	assert.Greater(t, next, id)
}

func TestSingleCollection_BurnUnknownID(t *testing.T) {
	f := newSingleFixture(t)

	err := f.single.Burn(context.Background(), addrMinter, 404)
	assertCode(t, err, "AST_001")
}

func TestSingleCollection_SetMetadataURI(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)

	require.NoError(t, f.single.SetMetadataURI(ctx, addrMinter, id, "ipfs://meta/1"))

	item, err := f.single.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://meta/1", item.MetadataURI)

	events := f.eventsOfType(domain.EventMetadataUpdated)
	require.Len(t, events, 1)

	// The owner cannot update metadata without the role.
	err = f.single.SetMetadataURI(ctx, addrAlice, id, "ipfs://meta/2")
	assertCode(t, err, "ACL_001")
}

func TestSingleCollection_TransferByOwner(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)

	require.NoError(t, f.single.Transfer(ctx, addrAlice, addrAlice, id, addrBob))

	owner, err := f.single.OwnerOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, addrBob, owner)
}

func TestSingleCollection_TransferByDelegateClearsDelegate(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)

	// Bob cannot move Alice's item before approval.
	err = f.single.Transfer(ctx, addrBob, addrAlice, id, addrBob)
	assertCode(t, err, "AST_002")

	require.NoError(t, f.single.Approve(ctx, addrAlice, id, addrBob))
	require.NoError(t, f.single.Transfer(ctx, addrBob, addrAlice, id, addrBob))

	item, err := f.single.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, addrBob, item.Owner)
	assert.Empty(t, item.Delegate, "delegate must be cleared on transfer")
}

func TestSingleCollection_TransferWrongFrom(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)

	err = f.single.Transfer(ctx, addrBob, addrBob, id, addrMinter)
	assertCode(t, err, "AST_002")
}

func TestSingleCollection_ApproveIsOwnerOnly(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)

	err = f.single.Approve(ctx, addrBob, id, addrBob)
	assertCode(t, err, "AST_002")
}

func TestSingleCollection_PausedBlocksMutations(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	id, err := f.single.Mint(ctx, addrMinter, addrAlice)
	require.NoError(t, err)
	f.grant(domain.ComponentSingleUnit, domain.RoleMetadataManager, addrMinter)

	require.NoError(t, f.access.Pause(ctx, fixtureAdmin, domain.ComponentSingleUnit))

	_, err = f.single.Mint(ctx, addrMinter, addrAlice)
	assertCode(t, err, "ACL_002")
	err = f.single.Transfer(ctx, addrAlice, addrAlice, id, addrBob)
	assertCode(t, err, "ACL_002")
	err = f.single.Burn(ctx, addrMinter, id)
	assertCode(t, err, "ACL_002")
	// The pause gate applies even to a caller holding the role.
	err = f.single.SetMetadataURI(ctx, addrMinter, id, "ipfs://paused-write")
	assertCode(t, err, "ACL_002")

	// Reads still work while paused.
	owner, err := f.single.OwnerOf(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, addrAlice, owner)

	require.NoError(t, f.access.Unpause(ctx, fixtureAdmin, domain.ComponentSingleUnit))
	require.NoError(t, f.single.SetMetadataURI(ctx, addrMinter, id, "ipfs://resumed"))
	require.NoError(t, f.single.Transfer(ctx, addrAlice, addrAlice, id, addrBob))
}

func TestSingleCollection_ItemsOwnedByAscending(t *testing.T) {
	f := newSingleFixture(t)
	ctx := context.Background()

	var want []uint64
	for i := 0; i < 3; i++ {
		id, err := f.single.Mint(ctx, addrMinter, addrAlice)
		require.NoError(t, err)
		want = append(want, id)
	}
	_, err := f.single.Mint(ctx, addrMinter, addrBob)
	require.NoError(t, err)

	ids, err := f.single.ItemsOwnedBy(ctx, addrAlice)
	require.NoError(t, err)
	assert.Equal(t, want, ids)
}
