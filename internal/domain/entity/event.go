// Package entity contains the core business objects of the engagement engine.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultEventDuration is applied when the store has no end time for an event.
const DefaultEventDuration = 3 * time.Hour

// Coordinate is a WGS84 position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event is the normalised, read-only view of an event owned by the external store.
type Event struct {
	ID        uuid.UUID   `json:"id"`         // The Global Unique Identifier (GUID) for the event.
	Title     string      `json:"title"`      // Display title.
	Category  string      `json:"category"`   // Flat category name, resolved at ingestion.
	Price     float64     `json:"price"`      // Ticket price; zero means free.
	Capacity  int         `json:"capacity"`   // Maximum attendees, zero when unlimited.
	StartTime time.Time   `json:"start_time"` // Scheduled start.
	EndTime   time.Time   `json:"end_time"`   // Scheduled end, always after StartTime once normalised.
	CreatedAt time.Time   `json:"created_at"` // When the organiser published the event.
	Location  *Coordinate `json:"location,omitempty"`
}

// IsFree reports whether the event has no ticket price.
func (e *Event) IsFree() bool {
	return e.Price <= 0
}

// EffectiveEndTime returns the end time, deriving start + DefaultEventDuration when it is missing.
func (e *Event) EffectiveEndTime() time.Time {
	if e.EndTime.IsZero() {
		return e.StartTime.Add(DefaultEventDuration)
	}

	return e.EndTime
}

// EventIDSet is a set of event IDs.
type EventIDSet map[uuid.UUID]struct{}

// NewEventIDSet builds a set from the given IDs.
func NewEventIDSet(ids ...uuid.UUID) EventIDSet {
	set := make(EventIDSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

// Has reports whether id is in the set. A nil set is empty.
func (s EventIDSet) Has(id uuid.UUID) bool {
	_, ok := s[id]

	return ok
}

// Add inserts id into the set.
func (s EventIDSet) Add(id uuid.UUID) {
	s[id] = struct{}{}
}
