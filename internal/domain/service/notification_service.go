package service

import (
	"context"

	"eventpulse/internal/domain/entity"

	"github.com/google/uuid"
)

// PushService delivers a push message to every device subscribed to a topic
type PushService interface {
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// NotificationEmitter hands a selected candidate to the presentation layer.
// Callers treat it as fire-and-forget.
type NotificationEmitter interface {
	Emit(ctx context.Context, userID uuid.UUID, candidate *entity.NotificationCandidate) error
}
