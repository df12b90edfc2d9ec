package service

import (
	"context"
)

// NotificationEvent is the message published when the engine selects a notification
type NotificationEvent struct {
	RequestID  string  `json:"request_id,omitempty"` // For distributed tracing
	UserID     string  `json:"user_id"`
	TrackingID string  `json:"tracking_id"`
	Type       string  `json:"type"`
	Priority   int     `json:"priority"`
	EventID    string  `json:"event_id"`
	Title      string  `json:"title"`
	Message    string  `json:"message"`
	SelectedAt string  `json:"selected_at"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a selected notification for downstream consumers
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
