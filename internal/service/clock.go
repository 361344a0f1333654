package service

import (
	"time"

	"asset-exchange-ledger/internal/core/ports"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now().UTC() }

// NewClock returns the wall clock used outside tests.
func NewClock() ports.Clock { return realClock{} }
