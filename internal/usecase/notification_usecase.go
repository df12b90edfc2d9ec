package usecase

import (
	"context"
	"time"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Names of the external data sources feeding the arbiter
const (
	SourceEvents            = "events"
	SourceInteractions      = "interactions"
	SourceFavorites         = "favorites"
	SourcePopularity        = "popularity"
	SourceInteractionCounts = "interaction_counts"
	SourceCatalog           = "catalog"
)

// SelectionInput is the snapshot a single arbitration runs over. Failures
// carries the fetch error of every data source that could not be read; the
// candidate sources depending on it yield nothing.
type SelectionInput struct {
	UserID            uuid.UUID
	Now               time.Time
	Events            []*entity.Event
	Interactions      []*entity.Interaction
	Favorites         entity.EventIDSet
	TrendingScores    []*entity.TrendingScore
	InteractionCounts map[uuid.UUID]int

	// Catalog holds favorited and interacted events outside Events, read so
	// scoring and category preferences see the user's whole history
	Catalog []*entity.Event

	// Extra holds candidates produced outside the arbiter (proximity, reminders)
	Extra []*entity.NotificationCandidate

	Failures map[string]error
}

// NotificationUsecase picks the single notification to surface to a user
type NotificationUsecase interface {
	// SelectNotification arbitrates over the snapshot and records the winner in
	// the shown history. It returns nil, nil when nothing is eligible.
	SelectNotification(ctx context.Context, input SelectionInput) (*entity.NotificationCandidate, error)

	// EvaluateForUser fetches a fresh snapshot, prunes the history, selects and
	// emits the winner
	EvaluateForUser(ctx context.Context, userID uuid.UUID) (*entity.NotificationCandidate, error)

	// PruneHistory drops shown records older than the history TTL
	PruneHistory(ctx context.Context) (int, error)
}
