package domain

import "time"

// SingleUnitItem is a uniquely owned, non-divisible asset. Exactly one owner
// per existing id; burning removes the row entirely and the id is never reused.
type SingleUnitItem struct {
	ID          uint64    `json:"id"`
	Owner       string    `json:"owner"`
	MetadataURI string    `json:"metadata_uri"`
	Delegate    string    `json:"delegate,omitempty"` // approved for a single transfer, cleared on transfer
	MintedAt    time.Time `json:"minted_at"`
}

// MultiUnitItem is the per-id metadata of a fungible-within-id asset.
// A row exists once the id has had at least one positive mint.
type MultiUnitItem struct {
	ID          uint64    `json:"id"`
	MetadataURI string    `json:"metadata_uri"`
	Price       *uint64   `json:"price,omitempty"` // display price metadata, smallest unit
	MintedAt    time.Time `json:"minted_at"`
}

// MultiUnitBalance is one owner's quantity of a multi-unit id.
// Zero-quantity rows are pruned.
type MultiUnitBalance struct {
	ItemID   uint64 `json:"item_id"`
	Owner    string `json:"owner"`
	Quantity uint64 `json:"quantity"`
}
