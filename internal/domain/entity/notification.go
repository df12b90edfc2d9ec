package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType names the signal that produced a candidate.
type NotificationType string

const (
	NotificationStartingNow      NotificationType = "starting_now"
	NotificationExpiringSoon     NotificationType = "expiring_soon"
	NotificationUpcomingFavorite NotificationType = "upcoming_favorite"
	NotificationProximity        NotificationType = "proximity"
	NotificationReminder         NotificationType = "reminder"
	NotificationNewInCategory    NotificationType = "new_in_category"
	NotificationTrending         NotificationType = "trending"
	NotificationPersonalized     NotificationType = "personalized"
	NotificationFallback         NotificationType = "fallback"
)

// Priority returns the fixed arbitration priority of the type; higher wins.
func (t NotificationType) Priority() int {
	switch t {
	case NotificationStartingNow:
		return 10
	case NotificationExpiringSoon:
		return 9
	case NotificationUpcomingFavorite:
		return 8
	case NotificationProximity, NotificationReminder:
		return 7
	case NotificationNewInCategory:
		return 6
	case NotificationTrending:
		return 5
	case NotificationPersonalized:
		return 4
	case NotificationFallback:
		return 3
	default:
		return 0
	}
}

// TrackingID is the deterministic deduplication key for a (type, event) pair.
func TrackingID(t NotificationType, eventID uuid.UUID) string {
	return string(t) + "_" + eventID.String()
}

// NotificationCandidate is a prospective notification competing for selection.
type NotificationCandidate struct {
	Type       NotificationType `json:"type"`
	Priority   int              `json:"priority"`
	Event      *Event           `json:"event"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	TrackingID string           `json:"tracking_id"`
}

// NewNotificationCandidate builds a candidate with the type's priority and tracking ID.
func NewNotificationCandidate(t NotificationType, event *Event, title, message string) *NotificationCandidate {
	return &NotificationCandidate{
		Type:       t,
		Priority:   t.Priority(),
		Event:      event,
		Title:      title,
		Message:    message,
		TrackingID: TrackingID(t, event.ID),
	}
}

// ShownNotificationRecord marks a tracking ID as shown to a user.
type ShownNotificationRecord struct {
	UserID     uuid.UUID `json:"user_id"`
	TrackingID string    `json:"tracking_id"`
	ShownAt    time.Time `json:"shown_at"`
}
