package repository

import (
	"context"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository reads a user's favorited events.
type FavoriteRepository interface {
	// FindFavoriteEventIDs returns the set of events the user has favorited.
	FindFavoriteEventIDs(ctx context.Context, userID uuid.UUID) (entity.EventIDSet, error)

	// IsFavorite reports whether the user has favorited the event.
	IsFavorite(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

// RegistrationRepository reads event registrations.
type RegistrationRepository interface {
	// IsRegistered reports whether the user has registered for the event.
	IsRegistered(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

// PopularityRepository reads the external popularity feed.
type PopularityRepository interface {
	// FindTrendingScores returns the current trending score of every scored event.
	FindTrendingScores(ctx context.Context) ([]*entity.TrendingScore, error)
}
