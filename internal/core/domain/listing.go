package domain

import "time"

// CollectionKind discriminates which collection a listing or swap leg targets.
type CollectionKind string

const (
	KindSingleUnit CollectionKind = "single_unit"
	KindMultiUnit  CollectionKind = "multi_unit"
)

// ValidKind reports whether k is a known collection kind.
func ValidKind(k CollectionKind) bool {
	return k == KindSingleUnit || k == KindMultiUnit
}

// Listing is an active marketplace offer. The listed amount sits in escrow
// under the marketplace custody account until sold or the listing is replaced.
// At most one active listing per (kind, item, seller).
type Listing struct {
	Kind      CollectionKind `json:"kind"`
	ItemID    uint64         `json:"item_id"`
	Seller    string         `json:"seller"`
	Amount    uint64         `json:"amount"` // always 1 for single-unit
	UnitPrice uint64         `json:"unit_price"`
	CreatedAt time.Time      `json:"created_at"`
}

// TotalPrice is the cost of buying `amount` units off this listing. The
// second return is false when unit price times amount does not fit in a
// uint64; such a purchase must be rejected, never settled at a wrapped total.
func (l Listing) TotalPrice(amount uint64) (uint64, bool) {
	if amount == 0 || l.UnitPrice == 0 {
		return 0, true
	}
	total := l.UnitPrice * amount
	if total/amount != l.UnitPrice {
		return 0, false
	}
	return total, true
}

// DetailedListing is a listing joined with the item's current metadata URI,
// the shape the frontend consumes.
type DetailedListing struct {
	ItemID    uint64 `json:"token_id"`
	Seller    string `json:"seller"`
	UnitPrice uint64 `json:"price"`
	Amount    uint64 `json:"amount"`
	URI       string `json:"uri"`
}

// DetailedListings groups the two collection kinds for the listing view.
type DetailedListings struct {
	SingleUnit []DetailedListing `json:"single_unit"`
	MultiUnit  []DetailedListing `json:"multi_unit"`
}
