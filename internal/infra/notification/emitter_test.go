package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "eventpulse/internal/delivery/context"
	"eventpulse/internal/domain/entity"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"
	mockSvc "eventpulse/internal/mocks/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var emitNow = time.Date(2026, 6, 12, 18, 0, 0, 0, time.UTC)

func newTestEmitter(t *testing.T) (*emitter, *mockSvc.MockEventPublisher) {
	t.Helper()

	publisher := mockSvc.NewMockEventPublisher(t)
	e := NewEmitter(EmitterParams{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Publisher: publisher,
	}).(*emitter)
	e.now = func() time.Time { return emitNow }

	return e, publisher
}

func testCandidate() *entity.NotificationCandidate {
	event := &entity.Event{
		ID:        uuid.MustParse("7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21"),
		Title:     "Jazz night",
		StartTime: emitNow.Add(time.Hour),
		Location:  &entity.Coordinate{Lat: 25.04, Lng: 121.56},
	}

	return entity.NewNotificationCandidate(entity.NotificationTrending, event, "Trending", "Jazz night is popular right now")
}

func TestEmitter_PublishesSelectedCandidate(t *testing.T) {
	userID := uuid.MustParse("2b1c7f7e-0c5a-4a4e-9c59-6a3f8b5d9e10")
	candidate := testCandidate()

	e, publisher := newTestEmitter(t)
	publisher.EXPECT().
		PublishNotificationEvent(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.RequestID == "req-42" &&
				event.UserID == userID.String() &&
				event.TrackingID == candidate.TrackingID &&
				event.Priority == 5 &&
				event.SelectedAt == "2026-06-12T18:00:00Z" &&
				event.Latitude == 25.04 &&
				event.Longitude == 121.56
		})).
		Return(nil)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, e.Emit(ctx, userID, candidate))
}

func TestEmitter_PublishFailure(t *testing.T) {
	e, publisher := newTestEmitter(t)
	publisher.EXPECT().PublishNotificationEvent(mock.Anything, mock.Anything).Return(errors.New("topic missing"))

	err := e.Emit(context.Background(), uuid.New(), testCandidate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "topic missing")
}

func TestEmitter_RejectsCandidateWithoutEvent(t *testing.T) {
	e, _ := newTestEmitter(t)

	assert.Error(t, e.Emit(context.Background(), uuid.New(), &entity.NotificationCandidate{}))
}

type fakeSender struct {
	sent *messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = message

	return "projects/test/messages/1", f.err
}

func TestFirebaseService_SendToTopic(t *testing.T) {
	sender := &fakeSender{}
	s := &firebaseService{client: sender}

	require.NoError(t, s.SendToTopic(context.Background(), "user-1", "Title", "Body", map[string]string{"k": "v"}))
	assert.Equal(t, "user-1", sender.sent.Topic)
	assert.Equal(t, "Title", sender.sent.Notification.Title)
	assert.Equal(t, "v", sender.sent.Data["k"])

	sender.err = errors.New("quota exceeded")
	assert.Error(t, s.SendToTopic(context.Background(), "user-1", "Title", "Body", nil))
}
