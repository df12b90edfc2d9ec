package entity

import (
	"time"

	"github.com/google/uuid"
)

// InteractionType is the kind of user action recorded against an event.
type InteractionType string

const (
	InteractionView           InteractionType = "view"
	InteractionClick          InteractionType = "click"
	InteractionFavoriteAdd    InteractionType = "favorite_add"
	InteractionFavoriteRemove InteractionType = "favorite_remove"
	InteractionShare          InteractionType = "share"
	InteractionSearch         InteractionType = "search"
)

// AffinityWeight is the contribution of one interaction of this type to a category affinity.
func (t InteractionType) AffinityWeight() float64 {
	switch t {
	case InteractionFavoriteAdd:
		return 10
	case InteractionShare:
		return 15
	case InteractionClick:
		return 5
	case InteractionView:
		return 2
	case InteractionFavoriteRemove:
		return -5
	default:
		return 0
	}
}

// IsValid reports whether t is a known interaction type.
func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionView, InteractionClick, InteractionFavoriteAdd,
		InteractionFavoriteRemove, InteractionShare, InteractionSearch:
		return true
	default:
		return false
	}
}

// Interaction is one append-only record from the user's activity stream.
type Interaction struct {
	UserID          uuid.UUID       `json:"user_id"`
	EventID         uuid.UUID       `json:"event_id"`
	Type            InteractionType `json:"type"`
	EventCategory   string          `json:"event_category,omitempty"` // Category of the event at ingestion, empty if unknown.
	OccurredAt      time.Time       `json:"occurred_at"`
	DurationSeconds *int            `json:"duration_seconds,omitempty"`
}

// TrendingScore is one row of the external popularity feed.
type TrendingScore struct {
	EventID uuid.UUID `json:"event_id"`
	Score   float64   `json:"trending_score"`
}
