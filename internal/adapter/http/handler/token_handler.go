package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler handles payment token endpoints.
type TokenHandler struct {
	svc ports.TokenLedgerService
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(svc ports.TokenLedgerService) *TokenHandler {
	return &TokenHandler{svc: svc}
}

// Approve handles POST /api/v1/token/approve. An amount of zero clears the
// allowance.
func (h *TokenHandler) Approve(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.TokenApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Approve(c.Request.Context(), caller, req.Spender, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{Owner: caller, Spender: req.Spender, Allowance: req.Amount})
}

// Transfer handles POST /api/v1/token/transfer.
func (h *TokenHandler) Transfer(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.TokenTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Transfer(c.Request.Context(), caller, req.To, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"from": caller, "to": req.To, "amount": req.Amount})
}

// Balance handles GET /api/v1/token/balance. It reports the caller's balance.
func (h *TokenHandler) Balance(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	balance, err := h.svc.BalanceOf(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TokenBalanceResponse{Address: caller, Balance: balance})
}

// Allowance handles GET /api/v1/token/allowance/:spender. It reports what the
// spender may draw from the caller.
func (h *TokenHandler) Allowance(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	spender := c.Param("spender")
	allowance, err := h.svc.Allowance(c.Request.Context(), caller, spender)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AllowanceResponse{Owner: caller, Spender: spender, Allowance: allowance})
}
