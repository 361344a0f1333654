package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Access Control (ACL) ----

func ErrUnauthorized(role string, caller string) *AppError {
	return New("ACL_001", fmt.Sprintf("account %s is missing required role %s", caller, role), http.StatusForbidden)
}

func ErrPaused(component string) *AppError {
	return New("ACL_002", fmt.Sprintf("component %s is paused", component), http.StatusServiceUnavailable)
}

// ---- Asset Ledger (AST) ----

func ErrNotFound(id uint64) *AppError {
	return New("AST_001", fmt.Sprintf("item %d not found", id), http.StatusNotFound)
}

func ErrNotOwner() *AppError {
	return New("AST_002", "caller is not the owner or an approved delegate", http.StatusForbidden)
}

func ErrInsufficientBalance(required, available uint64) *AppError {
	return New("AST_003",
		fmt.Sprintf("insufficient balance: required %d, available %d", required, available),
		http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("AST_004", "amount must be greater than zero", http.StatusBadRequest)
}

// ---- Marketplace (MKT) ----

func ErrListingNotFound() *AppError {
	return New("MKT_001", "no active listing for this item", http.StatusNotFound)
}

func ErrPaymentFailed(err error) *AppError {
	return Wrap("MKT_002", "payment token transfer rejected", http.StatusPaymentRequired, err)
}

func ErrInvalidPrice() *AppError {
	return New("MKT_003", "unit price must be greater than zero", http.StatusBadRequest)
}

// ---- Staking (STK) ----

func ErrNoStake() *AppError {
	return New("STK_001", "no active stakes for this account", http.StatusNotFound)
}

func ErrInsufficientTreasury() *AppError {
	return New("STK_002", "reward treasury cannot cover the accrued amount", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
