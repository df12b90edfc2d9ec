// Package repository defines the ports onto the external event store and the engine's own state.
package repository

import (
	"context"
	"errors"
	"time"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event does not exist in the store.
var ErrEventNotFound = errors.New("event not found")

// EventFilter narrows FindEvents. Zero values mean "no constraint".
type EventFilter struct {
	IDs          []uuid.UUID
	StartsAfter  *time.Time
	StartsBefore *time.Time
	Category     string
	WithLocation bool
	Limit        int
}

// EventRepository reads events from the external store.
type EventRepository interface {
	// FindEvents returns normalised events matching the filter, ordered by start time.
	FindEvents(ctx context.Context, filter EventFilter) ([]*entity.Event, error)

	// FindEventByID returns a single normalised event.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
}
