package handler

import (
	"asset-exchange-ledger/internal/adapter/http/dto"
	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles role and pause administration endpoints. Every
// mutation is role-checked inside the access service against the caller.
type AdminHandler struct {
	svc ports.AccessService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc ports.AccessService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GrantRole handles POST /api/v1/admin/roles/grant.
func (h *AdminHandler) GrantRole(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.Grant(c.Request.Context(), caller, domain.Component(req.Component), domain.Role(req.Role), req.Account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"component": req.Component, "role": req.Role, "account": req.Account, "granted": true})
}

// RevokeRole handles POST /api/v1/admin/roles/revoke.
func (h *AdminHandler) RevokeRole(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	err := h.svc.Revoke(c.Request.Context(), caller, domain.Component(req.Component), domain.Role(req.Role), req.Account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"component": req.Component, "role": req.Role, "account": req.Account, "granted": false})
}

// CheckRole handles GET /api/v1/admin/roles/check.
func (h *AdminHandler) CheckRole(c *gin.Context) {
	component := c.Query("component")
	role := c.Query("role")
	account := c.Query("account")
	if component == "" || role == "" || account == "" {
		response.Error(c, apperror.Validation("component, role, and account query parameters are required"))
		return
	}

	has, err := h.svc.HasRole(c.Request.Context(), domain.Component(component), domain.Role(role), account)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RoleCheckResponse{
		Component: component,
		Role:      role,
		Account:   account,
		HasRole:   has,
	})
}

// Pause handles POST /api/v1/admin/pause.
func (h *AdminHandler) Pause(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Pause(c.Request.Context(), caller, domain.Component(req.Component)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PauseStatusResponse{Component: req.Component, Paused: true})
}

// Unpause handles POST /api/v1/admin/unpause.
func (h *AdminHandler) Unpause(c *gin.Context) {
	caller, ok := callerAddress(c)
	if !ok {
		return
	}

	var req dto.PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.svc.Unpause(c.Request.Context(), caller, domain.Component(req.Component)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PauseStatusResponse{Component: req.Component, Paused: false})
}

// PauseStatus handles GET /api/v1/admin/paused/:component.
func (h *AdminHandler) PauseStatus(c *gin.Context) {
	component := domain.Component(c.Param("component"))

	paused, err := h.svc.Paused(c.Request.Context(), component)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PauseStatusResponse{Component: string(component), Paused: paused})
}
