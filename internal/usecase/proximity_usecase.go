package usecase

import (
	"context"
	"time"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ProximityUsecase watches live positions of client sessions
type ProximityUsecase interface {
	// StartWatching moves the session to Watching with empty near and notified sets
	// and returns its state. Calling it again as the same user keeps the state; a
	// session watched by another user yields ErrSessionForbidden.
	StartWatching(sessionID string, userID uuid.UUID) (*entity.ProximityState, error)

	// StopWatching returns the session to Idle and drops all of its state
	StopWatching(sessionID string)

	// UpdatePosition checks the position against the events and returns the
	// proximity candidates raised by this update. Updates arriving faster than
	// the configured interval are ignored.
	UpdatePosition(ctx context.Context, sessionID string, position entity.Coordinate, events []*entity.Event, now time.Time) ([]*entity.NotificationCandidate, error)

	// State returns a snapshot of the session
	State(sessionID string) *entity.ProximityState

	// TrackPosition loads the located events from the store before calling UpdatePosition
	TrackPosition(ctx context.Context, sessionID string, position entity.Coordinate) ([]*entity.NotificationCandidate, error)
}
