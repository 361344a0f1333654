package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Address   string `json:"address"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token   string `json:"token"`
	Expiry  int64  `json:"expiry"` // Unix timestamp
	Address string `json:"address"`
}

// MintSingleRequest mints a new single-unit item to an address.
type MintSingleRequest struct {
	To string `json:"to" binding:"required,ledger_addr"`
}

// MintSingleResponse carries the freshly allocated item id.
type MintSingleResponse struct {
	ItemID uint64 `json:"item_id"`
}

// MetadataRequest updates an item's metadata URI.
type MetadataRequest struct {
	URI string `json:"uri" binding:"required,max=512"`
}

// ApproveDelegateRequest grants (or, with an empty delegate, clears) the
// one-shot transfer delegate of a single-unit item.
type ApproveDelegateRequest struct {
	Delegate string `json:"delegate" binding:"omitempty,ledger_addr"`
}

// TransferSingleRequest moves a single-unit item between addresses.
type TransferSingleRequest struct {
	From string `json:"from" binding:"required,ledger_addr"`
	To   string `json:"to" binding:"required,ledger_addr"`
}

// OwnerResponse reports the current owner of a single-unit item.
type OwnerResponse struct {
	ItemID uint64 `json:"item_id"`
	Owner  string `json:"owner"`
}

// OwnedItemsResponse lists the single-unit item ids held by an address.
type OwnedItemsResponse struct {
	Owner   string   `json:"owner"`
	ItemIDs []uint64 `json:"item_ids"`
}

// MintMultiRequest mints multi-unit quantity. ItemID 0 allocates a new id.
type MintMultiRequest struct {
	To     string `json:"to" binding:"required,ledger_addr"`
	ItemID uint64 `json:"item_id"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

// MintMultiResponse carries the id the quantity was minted under.
type MintMultiResponse struct {
	ItemID uint64 `json:"item_id"`
	Amount uint64 `json:"amount"`
}

// BurnMultiRequest burns quantity from an owner's multi-unit balance.
// Owner defaults to the caller.
type BurnMultiRequest struct {
	Owner  string `json:"owner" binding:"omitempty,ledger_addr"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

// PriceRequest sets the display price of a multi-unit item.
type PriceRequest struct {
	Price uint64 `json:"price"`
}

// ApprovalForAllRequest toggles an operator over all of the caller's
// multi-unit balances.
type ApprovalForAllRequest struct {
	Operator string `json:"operator" binding:"required,ledger_addr"`
	Approved bool   `json:"approved"`
}

// TransferMultiRequest moves multi-unit quantity between addresses.
type TransferMultiRequest struct {
	From   string `json:"from" binding:"required,ledger_addr"`
	To     string `json:"to" binding:"required,ledger_addr"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

// MultiBalanceResponse reports one owner's quantity of a multi-unit id.
type MultiBalanceResponse struct {
	ItemID  uint64 `json:"item_id"`
	Owner   string `json:"owner"`
	Balance uint64 `json:"balance"`
}

// ListForSaleRequest creates or replaces a marketplace listing.
type ListForSaleRequest struct {
	Kind      string `json:"kind" binding:"required,oneof=single_unit multi_unit"`
	ItemID    uint64 `json:"item_id" binding:"required"`
	UnitPrice uint64 `json:"unit_price" binding:"required,gt=0"`
	Amount    uint64 `json:"amount"`
}

// BuyRequest settles a purchase off an active listing. Seller may be empty
// for single-unit listings; Amount 0 buys the full listed amount.
type BuyRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=single_unit multi_unit"`
	ItemID uint64 `json:"item_id" binding:"required"`
	Seller string `json:"seller" binding:"omitempty,ledger_addr"`
	Amount uint64 `json:"amount"`
}

// PurchaseResponse reports a settled buy.
type PurchaseResponse struct {
	ItemID     uint64 `json:"item_id"`
	Buyer      string `json:"buyer"`
	Seller     string `json:"seller"`
	Amount     uint64 `json:"amount"`
	TotalPrice uint64 `json:"total_price"`
	Remaining  uint64 `json:"remaining"`
}

// StakeRequest stakes or unstakes a single-unit item.
type StakeRequest struct {
	ItemID uint64 `json:"item_id" binding:"required"`
}

// RewardResponse reports a paid-out staking reward.
type RewardResponse struct {
	Staker string `json:"staker"`
	Reward uint64 `json:"reward"`
}

// SwapSingleRequest trades one single-unit item for another.
type SwapSingleRequest struct {
	OwnerA string `json:"owner_a" binding:"required,ledger_addr"`
	ItemA  uint64 `json:"item_a" binding:"required"`
	OwnerB string `json:"owner_b" binding:"required,ledger_addr"`
	ItemB  uint64 `json:"item_b" binding:"required"`
}

// SwapMultiRequest trades multi-unit quantity for multi-unit quantity.
type SwapMultiRequest struct {
	OwnerA string `json:"owner_a" binding:"required,ledger_addr"`
	ItemA  uint64 `json:"item_a" binding:"required"`
	QtyA   uint64 `json:"qty_a" binding:"required,gt=0"`
	OwnerB string `json:"owner_b" binding:"required,ledger_addr"`
	ItemB  uint64 `json:"item_b" binding:"required"`
	QtyB   uint64 `json:"qty_b" binding:"required,gt=0"`
}

// SwapCrossRequest trades a single-unit item for multi-unit quantity.
type SwapCrossRequest struct {
	OwnerA string `json:"owner_a" binding:"required,ledger_addr"`
	ItemA  uint64 `json:"item_a" binding:"required"`
	OwnerB string `json:"owner_b" binding:"required,ledger_addr"`
	ItemB  uint64 `json:"item_b" binding:"required"`
	QtyB   uint64 `json:"qty_b" binding:"required,gt=0"`
}

// RoleRequest grants or revokes a role on a component.
type RoleRequest struct {
	Component string `json:"component" binding:"required,oneof=single_unit multi_unit marketplace staking orchestrator"`
	Role      string `json:"role" binding:"required,oneof=ADMIN PAUSER MINTER BURNER METADATA_MANAGER SWAP"`
	Account   string `json:"account" binding:"required,ledger_addr"`
}

// PauseRequest pauses or unpauses a component.
type PauseRequest struct {
	Component string `json:"component" binding:"required,oneof=single_unit multi_unit marketplace staking orchestrator"`
}

// PauseStatusResponse reports a component's pause flag.
type PauseStatusResponse struct {
	Component string `json:"component"`
	Paused    bool   `json:"paused"`
}

// RoleCheckResponse reports whether an account holds a role.
type RoleCheckResponse struct {
	Component string `json:"component"`
	Role      string `json:"role"`
	Account   string `json:"account"`
	HasRole   bool   `json:"has_role"`
}

// TokenApproveRequest sets a spending allowance on the payment token.
type TokenApproveRequest struct {
	Spender string `json:"spender" binding:"required,ledger_addr"`
	Amount  uint64 `json:"amount"`
}

// TokenTransferRequest moves payment token between addresses.
type TokenTransferRequest struct {
	To     string `json:"to" binding:"required,ledger_addr"`
	Amount uint64 `json:"amount" binding:"required,gt=0"`
}

// TokenBalanceResponse reports a payment token balance.
type TokenBalanceResponse struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
}

// AllowanceResponse reports a payment token allowance.
type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance uint64 `json:"allowance"`
}
