package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("ACL_001", "missing role", http.StatusForbidden)
	assert.Equal(t, "[ACL_001] missing role", e.Error())

	wrapped := Wrap("SYS_001", "db failure", http.StatusInternalServerError, errors.New("conn refused"))
	assert.Equal(t, "[SYS_001] db failure: conn refused", wrapped.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	e := Wrap("SYS_001", "internal", http.StatusInternalServerError, inner)

	assert.ErrorIs(t, e, inner)
	assert.Nil(t, New("AST_001", "not found", http.StatusNotFound).Unwrap())
}

func TestErrUnauthorized_IncludesRoleAndCaller(t *testing.T) {
	e := ErrUnauthorized("SWAP", "0xabc")
	assert.Equal(t, "ACL_001", e.Code)
	assert.Equal(t, http.StatusForbidden, e.HTTPStatus)
	assert.Contains(t, e.Message, "SWAP")
	assert.Contains(t, e.Message, "0xabc")
}

func TestErrInsufficientBalance_IncludesAmounts(t *testing.T) {
	e := ErrInsufficientBalance(150, 100)
	assert.Equal(t, "AST_003", e.Code)
	assert.Contains(t, e.Message, "150")
	assert.Contains(t, e.Message, "100")
}

func TestErrorConstructors_Codes(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{ErrPaused("orchestrator"), "ACL_002", http.StatusServiceUnavailable},
		{ErrNotFound(42), "AST_001", http.StatusNotFound},
		{ErrNotOwner(), "AST_002", http.StatusForbidden},
		{ErrInvalidAmount(), "AST_004", http.StatusBadRequest},
		{ErrListingNotFound(), "MKT_001", http.StatusNotFound},
		{ErrPaymentFailed(errors.New("allowance")), "MKT_002", http.StatusPaymentRequired},
		{ErrInvalidPrice(), "MKT_003", http.StatusBadRequest},
		{ErrNoStake(), "STK_001", http.StatusNotFound},
		{ErrInsufficientTreasury(), "STK_002", http.StatusConflict},
		{ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{ErrUsernameExists(), "AUTH_002", http.StatusConflict},
		{ErrInvalidToken(), "AUTH_003", http.StatusUnauthorized},
		{ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{Validation("bad request"), "VAL_001", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			require.NotNil(t, tc.err)
			assert.Equal(t, tc.code, tc.err.Code)
			assert.Equal(t, tc.status, tc.err.HTTPStatus)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", ErrListingNotFound())
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "MKT_001", appErr.Code)
}
