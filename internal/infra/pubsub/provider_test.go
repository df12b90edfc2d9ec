package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventpulse/config"
	"eventpulse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:  "req-1",
		UserID:     "2b1c7f7e-0c5a-4a4e-9c59-6a3f8b5d9e10",
		TrackingID: "trending_7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21",
		Type:       "trending",
		Priority:   5,
		EventID:    "7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21",
		Title:      "Trending",
		Message:    "Jazz night is popular right now",
	}
}

func TestLocalHTTPPublisher_PushesPubSubEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "trending", received.Message.Attributes["notification_type"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.NotificationEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, testEvent().TrackingID, event.TrackingID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	assert.Error(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))
}

func TestNewEventPublisher(t *testing.T) {
	params := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(params(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))

	publisher, err = NewEventPublisher(params(&config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(params(&config.PubSubConfig{Provider: "local"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(params(&config.PubSubConfig{Provider: "google"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(params(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}
