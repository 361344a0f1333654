package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// MarketplaceHandler handles listing and purchase endpoints.
type MarketplaceHandler struct {
	svc ports.MarketplaceService
}

// NewMarketplaceHandler creates a new MarketplaceHandler.
func NewMarketplaceHandler(svc ports.MarketplaceService) *MarketplaceHandler {
	return &MarketplaceHandler{svc: svc}
}

// ListForSale handles POST /api/v1/market/listings.
func (h *MarketplaceHandler) ListForSale(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.ListForSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.ListForSale(c.Request.Context(), caller, domain.CollectionKind(req.Kind), req.ItemID, req.UnitPrice, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"kind":       req.Kind,
		"item_id":    req.ItemID,
		"unit_price": req.UnitPrice,
		"amount":     req.Amount,
	})
}

// Buy handles POST /api/v1/market/buy.
func (h *MarketplaceHandler) Buy(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.Buy(c.Request.Context(), caller, domain.CollectionKind(req.Kind), req.ItemID, req.Seller, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PurchaseResponse{
		ItemID:     result.ItemID,
		Buyer:      result.Buyer,
		Seller:     result.Seller,
		Amount:     result.Amount,
		TotalPrice: result.TotalPrice,
		Remaining:  result.Remaining,
	})
}

// Listings handles GET /api/v1/market/listings.
func (h *MarketplaceHandler) Listings(c *gin.Context) {
	listings, err := h.svc.GetDetailedListedNFTs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, listings)
}
