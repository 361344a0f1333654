package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// SwapHandler handles the orchestrated atomic swap endpoints. Callers need
// the SWAP role on the orchestrator, and both parties must have approved
// the orchestrator address over the swapped assets beforehand.
type SwapHandler struct {
	svc ports.OrchestratorService
}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler(svc ports.OrchestratorService) *SwapHandler {
	return &SwapHandler{svc: svc}
}

// SwapSingle handles POST /api/v1/swap/single.
func (h *SwapHandler) SwapSingle(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.SwapSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.SwapSingleUnit(c.Request.Context(), caller, req.OwnerA, req.ItemA, req.OwnerB, req.ItemB)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"owner_a": req.OwnerA,
		"item_a":  req.ItemA,
		"owner_b": req.OwnerB,
		"item_b":  req.ItemB,
	})
}

// SwapMulti handles POST /api/v1/swap/multi.
func (h *SwapHandler) SwapMulti(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.SwapMultiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.SwapMultiUnit(c.Request.Context(), caller, req.OwnerA, req.ItemA, req.QtyA, req.OwnerB, req.ItemB, req.QtyB)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"owner_a": req.OwnerA,
		"item_a":  req.ItemA,
		"qty_a":   req.QtyA,
		"owner_b": req.OwnerB,
		"item_b":  req.ItemB,
		"qty_b":   req.QtyB,
	})
}

// SwapCross handles POST /api/v1/swap/cross.
func (h *SwapHandler) SwapCross(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.SwapCrossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.SwapCross(c.Request.Context(), caller, req.OwnerA, req.ItemA, req.OwnerB, req.ItemB, req.QtyB)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"owner_a": req.OwnerA,
		"item_a":  req.ItemA,
		"owner_b": req.OwnerB,
		"item_b":  req.ItemB,
		"qty_b":   req.QtyB,
	})
}

// Stake handles POST /api/v1/swap/stake, delegating to the staking ledger
// through the orchestrator's pause gate.
func (h *SwapHandler) Stake(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.StakeNFT(c.Request.Context(), caller, req.ItemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"item_id": req.ItemID, "staker": caller})
}

// Claim handles POST /api/v1/swap/claim.
func (h *SwapHandler) Claim(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	reward, err := h.svc.ClaimRewards(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RewardResponse{Staker: caller, Reward: reward})
}

// ListForSale handles POST /api/v1/swap/list.
func (h *SwapHandler) ListForSale(c *gin.Context) {
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
