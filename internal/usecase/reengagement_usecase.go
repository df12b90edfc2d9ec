package usecase

import (
	"context"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ReengagementUsecase reminds users about events they viewed but did not act on
type ReengagementUsecase interface {
	// TrackEventView records the view and replaces any pending reminder for the pair
	TrackEventView(ctx context.Context, userID uuid.UUID, event *entity.Event) error

	// TrackEventViewByID loads the event from the store and tracks the view
	TrackEventViewByID(ctx context.Context, userID, eventID uuid.UUID) error

	// MarkAsRegistered cancels the pending reminder and suppresses future ones for the pair
	MarkAsRegistered(userID, eventID uuid.UUID)

	// MarkAsFavorited behaves like MarkAsRegistered
	MarkAsFavorited(userID, eventID uuid.UUID)

	// HasPendingReminder reports whether a reminder is scheduled for the pair
	HasPendingReminder(userID, eventID uuid.UUID) bool
}

// CandidateInbox buffers candidates raised outside the arbiter until they are
// shown or expire
type CandidateInbox interface {
	// Push queues a candidate; a tracking ID already queued for the user is kept as is
	Push(userID uuid.UUID, candidate *entity.NotificationCandidate)

	// Pending returns the user's unexpired candidates and forgets expired ones
	Pending(userID uuid.UUID) []*entity.NotificationCandidate

	// Remove drops a candidate once it has been shown
	Remove(userID uuid.UUID, trackingID string)
}
