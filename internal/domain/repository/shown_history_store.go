package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShownHistoryStore keeps the rolling record of notifications shown to each user.
// The write path is authoritative: Claim must be atomic per (user, tracking ID).
type ShownHistoryStore interface {
	// Get returns when the tracking ID was last shown to the user.
	Get(ctx context.Context, userID uuid.UUID, trackingID string) (shownAt time.Time, found bool, err error)

	// Put records the tracking ID as shown at shownAt, overwriting any previous record.
	Put(ctx context.Context, userID uuid.UUID, trackingID string, shownAt time.Time) error

	// Claim records the tracking ID as shown unless a record newer than cutoff
	// already exists. It reports whether this call made the record.
	Claim(ctx context.Context, userID uuid.UUID, trackingID string, shownAt, cutoff time.Time) (bool, error)

	// PruneOlderThan deletes every record shown before cutoff and returns how many were removed.
	PruneOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
