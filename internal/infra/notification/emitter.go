package notification

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "eventpulse/internal/delivery/context"
	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// EmitterParams holds dependencies for the notification emitter, injected by Fx
type EmitterParams struct {
	fx.In

	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// emitter hands selected candidates to the notification event stream; the
// push worker turns them into device pushes
type emitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewEmitter creates the NotificationEmitter used by the engine
func NewEmitter(params EmitterParams) service.NotificationEmitter {
	return &emitter{
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (e *emitter) Emit(ctx context.Context, userID uuid.UUID, candidate *entity.NotificationCandidate) error {
	if candidate == nil || candidate.Event == nil {
		return errors.New("notification candidate has no event")
	}

	if err := e.publisher.PublishNotificationEvent(ctx, e.notificationEvent(ctx, userID, candidate)); err != nil {
		return errors.Wrapf(err, "failed to publish %s", candidate.TrackingID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, e.logger).InfoContext(ctx, "Notification emitted",
		slog.String("user_id", userID.String()),
		slog.String("tracking_id", candidate.TrackingID),
	)

	return nil
}

func (e *emitter) notificationEvent(ctx context.Context, userID uuid.UUID, candidate *entity.NotificationCandidate) *service.NotificationEvent {
	event := &service.NotificationEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		UserID:     userID.String(),
		TrackingID: candidate.TrackingID,
		Type:       string(candidate.Type),
		Priority:   candidate.Priority,
		EventID:    candidate.Event.ID.String(),
		Title:      candidate.Title,
		Message:    candidate.Message,
		SelectedAt: e.now().UTC().Format(time.RFC3339),
	}
	if location := candidate.Event.Location; location != nil {
		event.Latitude = location.Lat
		event.Longitude = location.Lng
	}

	return event
}
