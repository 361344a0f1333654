package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// StakingHandler handles staking endpoints.
type StakingHandler struct {
	svc ports.StakingService
}

// NewStakingHandler creates a new StakingHandler.
func NewStakingHandler(svc ports.StakingService) *StakingHandler {
	return &StakingHandler{svc: svc}
}

// Stake handles POST /api/v1/staking/stake.
func (h *StakingHandler) Stake(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Stake(c.Request.Context(), caller, req.ItemID); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"item_id": req.ItemID, "staker": caller})
}

// Unstake handles POST /api/v1/staking/unstake. The pending reward for the
// item is paid out as part of the release.
func (h *StakingHandler) Unstake(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.StakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	reward, err := h.svc.Unstake(c.Request.Context(), caller, req.ItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RewardResponse{Staker: caller, Reward: reward})
}

// Claim handles POST /api/v1/staking/claim.
func (h *StakingHandler) Claim(c *gin.Context) {
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

// Stakes handles GET /api/v1/staking/stakes.
func (h *StakingHandler) Stakes(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	stakes, err := h.svc.StakesOf(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, stakes)
}
