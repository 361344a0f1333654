// Package handler contains the Gin HTTP handlers for the exchange API.
package handler

import (
	"strconv"

	"asset-exchange-ledger/internal/adapter/http/middleware"
	"asset-exchange-ledger/pkg/apperror"
	"asset-exchange-ledger/pkg/response"

	"github.com/gin-gonic/gin"
)

// callerAddress pulls the authenticated ledger address out of the request
// context. A missing address means the JWT middleware did not run; the
// request is rejected and false returned.
func callerAddress(c *gin.Context) (string, bool) {
	addr, ok := c.Get(middleware.CtxAddress)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	s, ok := addr.(string)
	if !ok || s == "" {
		response.Error(c, apperror.ErrInvalidToken())
		return "", false
	}
	return s, true
}

// pathID parses the :id path segment as an item id.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid item id"))
		return 0, false
	}
	return id, true
}
