package service

import (
	"context"
	"fmt"

	"asset-exchange-ledger/internal/core/domain"
	"asset-exchange-ledger/internal/core/ports"
	"asset-exchange-ledger/pkg/apperror"
)

const defaultEventPageSize = 100

// EventServiceImpl implements ports.EventService over the committed log.
type EventServiceImpl struct {
	eventRepo ports.EventRepository
}

// NewEventService creates a new EventServiceImpl.
func NewEventService(eventRepo ports.EventRepository) *EventServiceImpl {
	return &EventServiceImpl{eventRepo: eventRepo}
}

// Events returns up to limit events with IDs greater than afterID, in commit
// order. limit <= 0 falls back to the default page size.
func (s *EventServiceImpl) Events(ctx context.Context, afterID int64, limit int) ([]domain.LedgerEvent, error) {
	if limit <= 0 || limit > defaultEventPageSize {
		limit = defaultEventPageSize
	}
	events, err := s.eventRepo.List(ctx, afterID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list events: %w", err))
	}
	return events, nil
}
