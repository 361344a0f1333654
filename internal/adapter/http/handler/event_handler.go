package handler

import (
	"strconv"

	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the committed ledger event log.
type EventHandler struct {
	svc ports.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(svc ports.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// List handles GET /api/v1/events?after_id=&limit=.
func (h *EventHandler) List(c *gin.Context) {
	afterID := int64(0)
	if raw := c.Query("after_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("invalid after_id"))
			return
		}
		afterID = parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.Error(c, apperror.Validation("invalid limit"))
			return
		}
		limit = parsed
	}

	events, err := h.svc.Events(c.Request.Context(), afterID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, events)
}
