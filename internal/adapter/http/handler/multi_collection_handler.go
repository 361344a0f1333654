package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MultiCollectionHandler handles the quantity-ledger collection endpoints.
type MultiCollectionHandler struct {
	svc ports.MultiCollectionService
}

// NewMultiCollectionHandler creates a new MultiCollectionHandler.
func NewMultiCollectionHandler(svc ports.MultiCollectionService) *MultiCollectionHandler {
	return &MultiCollectionHandler{svc: svc}
}

// Mint handles POST /api/v1/multi/mint. An omitted item_id allocates a new id.
func (h *MultiCollectionHandler) Mint(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.MintMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id, err := h.svc.Mint(c.Request.Context(), caller, req.To, req.ItemID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MintMultiResponse{ItemID: id, Amount: req.Amount})
}

// Burn handles POST /api/v1/multi/:id/burn.
func (h *MultiCollectionHandler) Burn(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.BurnMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	owner := req.Owner
	if owner == "" {
		owner = caller
	}

	if err := h.svc.Burn(c.Request.Context(), caller, owner, id, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "owner": owner, "amount": req.Amount})
}

// SetMetadata handles PUT /api/v1/multi/:id/metadata.
func (h *MultiCollectionHandler) SetMetadata(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.svc.SetMetadataURI(c.Request.Context(), caller, id, req.URI); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "uri": req.URI})
}

// SetPrice handles PUT /api/v1/multi/:id/price.
func (h *MultiCollectionHandler) SetPrice(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.SetPrice(c.Request.Context(), caller, id, req.Price); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "price": req.Price})
}

// SetApproval handles POST /api/v1/multi/approval.
func (h *MultiCollectionHandler) SetApproval(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.ApprovalForAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.SetApprovalForAll(c.Request.Context(), caller, req.Operator, req.Approved); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"operator": req.Operator, "approved": req.Approved})
}

// Transfer handles POST /api/v1/multi/:id/transfer.
func (h *MultiCollectionHandler) Transfer(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.TransferMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Transfer(c.Request.Context(), caller, req.From, id, req.Amount, req.To); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "from": req.From, "to": req.To, "amount": req.Amount})
}

// Get handles GET /api/v1/multi/:id.
func (h *MultiCollectionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, item)
}

// Balance handles GET /api/v1/multi/:id/balance. It reports the caller's
// quantity of the item.
func (h *MultiCollectionHandler) Balance(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	balance, err := h.svc.BalanceOf(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.MultiBalanceResponse{ItemID: id, Owner: caller, Balance: balance})
}
