package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType enumerates the ledger's append-only event log entries.
type EventType string

const (
	EventMinted          EventType = "Minted"
	EventBurned          EventType = "Burned"
	EventMetadataUpdated EventType = "TokenMetadataUpdated"
	EventItemListed      EventType = "ItemListed"
	EventSold            EventType = "Sold"
	EventStaked          EventType = "Staked"
	EventRewardsClaimed  EventType = "RewardsClaimed"
	EventTokensSwapped   EventType = "TokensSwapped"
)

// LedgerEvent is one committed entry of the event log. ID is the global
// commit order; the payload shape depends on Type.
type LedgerEvent struct {
	ID        int64           `json:"id"`
	Type      EventType       `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Event payloads. Optional fields are omitted for the collection kinds that
// do not carry them (single-unit mints have no amount).

type MintedPayload struct {
	Kind   CollectionKind `json:"kind"`
	To     string         `json:"to"`
	ItemID uint64         `json:"item_id"`
	Amount uint64         `json:"amount,omitempty"`
}

type BurnedPayload struct {
	Kind   CollectionKind `json:"kind"`
	Owner  string         `json:"owner"`
	ItemID uint64         `json:"item_id"`
	Amount uint64         `json:"amount,omitempty"`
}

type MetadataUpdatedPayload struct {
	Kind   CollectionKind `json:"kind"`
	ItemID uint64         `json:"item_id"`
	URI    string         `json:"uri"`
}

type ItemListedPayload struct {
	Kind      CollectionKind `json:"kind"`
	ItemID    uint64         `json:"item_id"`
	Amount    uint64         `json:"amount"`
	UnitPrice uint64         `json:"unit_price"`
}

type SoldPayload struct {
	ItemID     uint64 `json:"item_id"`
	Buyer      string `json:"buyer"`
	Amount     uint64 `json:"amount"`
	TotalPrice uint64 `json:"total_price"`
}

type StakedPayload struct {
	Staker string `json:"staker"`
	ItemID uint64 `json:"item_id"`
}

type RewardsClaimedPayload struct {
	Staker string `json:"staker"`
	Amount uint64 `json:"amount"`
}

type TokensSwappedPayload struct {
	OwnerA string `json:"owner_a"`
	ItemA  uint64 `json:"item_a"`
	OwnerB string `json:"owner_b"`
	ItemB  uint64 `json:"item_b"`
	Amount uint64 `json:"amount"`
}

// NewEvent builds an unsaved LedgerEvent from a typed payload.
func NewEvent(eventType EventType, payload any) (*LedgerEvent, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &LedgerEvent{Type: eventType, Payload: raw}, nil
}
