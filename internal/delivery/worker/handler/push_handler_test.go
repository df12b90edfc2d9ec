package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventpulse/config"
	"eventpulse/internal/domain/service"
	"eventpulse/internal/errors"
	mockSvc "eventpulse/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testUserID = "2b1c7f7e-0c5a-4a4e-9c59-6a3f8b5d9e10"

func newTestPushHandler(t *testing.T) (*PushHandler, *mockSvc.MockPushService) {
	t.Helper()

	pushSvc := mockSvc.NewMockPushService(t)
	h := NewPushHandler(PushHandlerParams{
		Config:  &config.Config{Firebase: &config.FirebaseConfig{TopicPrefix: "user-"}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		PushSvc: pushSvc,
	})

	return h, pushSvc
}

func pushBody(t *testing.T, event *service.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		UserID:     testUserID,
		TrackingID: "proximity_7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21",
		Type:       "proximity",
		Priority:   7,
		EventID:    "7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21",
		Title:      "Nearby",
		Message:    "Jazz night is around the corner",
		Latitude:   25.04,
		Longitude:  121.56,
	}
}

func TestHandlePush_SendsToUserTopic(t *testing.T) {
	h, pushSvc := newTestPushHandler(t)
	pushSvc.EXPECT().
		SendToTopic(mock.Anything, "user-"+testUserID, "Nearby", "Jazz night is around the corner",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["priority"] == "7" && data["latitude"] == "25.04"
			})).
		Return(nil)

	rec := serve(h, pushBody(t, testEvent(), map[string]string{"request_id": "req-1"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_TransientFailureAsksForRedelivery(t *testing.T) {
	h, pushSvc := newTestPushHandler(t)
	pushSvc.EXPECT().SendToTopic(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable"))

	rec := serve(h, pushBody(t, testEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailuresAreAcknowledged(t *testing.T) {
	h, _ := newTestPushHandler(t)

	event := testEvent()
	event.UserID = "not-a-uuid"

	rec := serve(h, pushBody(t, event, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestHandlePush_RejectsUnverifiedRequests(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verify = func(*http.Request) error { return errors.New("bad token") }

	rec := serve(h, pushBody(t, testEvent(), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.NotNil(t, h.verify)

	cfg.Env.Env = "develop"
	h = NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.Default()})
	assert.Nil(t, h.verify)
}

func TestVerifyPubSubToken_MissingBearer(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	assert.Error(t, verifyPubSubToken(req))
}
