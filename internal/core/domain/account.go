package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered ledger participant. The Address is the identity
// every on-ledger operation is keyed by; the rest is authentication plumbing.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"` // 0x-prefixed, 40 hex chars
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
