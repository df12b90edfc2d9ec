package repository

import (
	"context"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// InteractionRepository reads the append-only interaction stream.
type InteractionRepository interface {
	// FindRecentByUser returns at most limit interactions for the user, newest first.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Interaction, error)

	// CountByEvent returns the global interaction count per event for the given IDs.
	CountByEvent(ctx context.Context, eventIDs []uuid.UUID) (map[uuid.UUID]int, error)
}
