package usecase

import (
	"context"
	"time"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ScoreInput is the immutable snapshot the scorer works on
type ScoreInput struct {
	UserID     uuid.UUID
	Candidates []*entity.Event

	// Catalog resolves the category and price of events referenced by
	// interactions and favorites that are not themselves candidates
	Catalog []*entity.Event

	Interactions []*entity.Interaction
	Favorites    entity.EventIDSet

	// InteractionCounts is the global interaction count per event. When nil
	// the scorer counts the supplied interaction window instead.
	InteractionCounts map[uuid.UUID]int

	Now time.Time
}

// RecommendationUsecase ranks events for a user
type RecommendationUsecase interface {
	// Score ranks the candidates without any I/O. Each event id appears at most once;
	// ordering is score descending, then event id ascending.
	Score(input ScoreInput) []*entity.ScoredEvent

	// Recommend fetches the user's snapshot and returns at most limit ranked events
	// that are upcoming or ongoing
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ScoredEvent, error)
}
