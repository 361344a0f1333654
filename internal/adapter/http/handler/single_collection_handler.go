package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SingleCollectionHandler handles the one-owner-per-item collection endpoints.
type SingleCollectionHandler struct {
	svc ports.SingleCollectionService
}

// NewSingleCollectionHandler creates a new SingleCollectionHandler.
func NewSingleCollectionHandler(svc ports.SingleCollectionService) *SingleCollectionHandler {
	return &SingleCollectionHandler{svc: svc}
}

// Mint handles POST /api/v1/single/mint.
func (h *SingleCollectionHandler) Mint(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.MintSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	id, err := h.svc.Mint(c.Request.Context(), caller, req.To)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.MintSingleResponse{ItemID: id})
}

// Burn handles POST /api/v1/single/:id/burn.
func (h *SingleCollectionHandler) Burn(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Burn(c.Request.Context(), caller, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "burned": true})
}

// SetMetadata handles PUT /api/v1/single/:id/metadata.
func (h *SingleCollectionHandler) SetMetadata(c *gin.Context) {
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

// Approve handles POST /api/v1/single/:id/approve.
func (h *SingleCollectionHandler) Approve(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ApproveDelegateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Approve(c.Request.Context(), caller, id, req.Delegate); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "delegate": req.Delegate})
}

// Transfer handles POST /api/v1/single/:id/transfer.
func (h *SingleCollectionHandler) Transfer(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.TransferSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Transfer(c.Request.Context(), caller, req.From, id, req.To); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"item_id": id, "from": req.From, "to": req.To})
}

// Get handles GET /api/v1/single/:id.
func (h *SingleCollectionHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, item)
}

// Owner handles GET /api/v1/single/:id/owner.
func (h *SingleCollectionHandler) Owner(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	owner, err := h.svc.OwnerOf(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OwnerResponse{ItemID: id, Owner: owner})
}

// Owned handles GET /api/v1/single/owned. It lists the caller's items.
func (h *SingleCollectionHandler) Owned(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	ids, err := h.svc.ItemsOwnedBy(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.OwnedItemsResponse{Owner: caller, ItemIDs: ids})
}
