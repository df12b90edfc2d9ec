package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventpulse/config"
	apimiddleware "eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/router"
	"eventpulse/internal/delivery/api/router/handler"
	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/errors"
	"eventpulse/internal/infra/metrics"
	mockSvc "eventpulse/internal/mocks/service"
	mockUC "eventpulse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

type apiMocks struct {
	recommendation *mockUC.MockRecommendationUsecase
	notification   *mockUC.MockNotificationUsecase
	reengagement   *mockUC.MockReengagementUsecase
	proximity      *mockUC.MockProximityUsecase
}

type stubChecker struct {
	err error
}

func (s stubChecker) Name() string                  { return "postgres" }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func newTestAPI(t *testing.T, userID uuid.UUID, checkerErr error) (*echo.Echo, *apiMocks) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken(testToken).Return(userID, nil).Maybe()

	m := &apiMocks{
		recommendation: mockUC.NewMockRecommendationUsecase(t),
		notification:   mockUC.NewMockNotificationUsecase(t),
		reengagement:   mockUC.NewMockReengagementUsecase(t),
		proximity:      mockUC.NewMockProximityUsecase(t),
	}

	e := newEcho(&config.Config{}, logger)
	router.NewRouter(router.RouterParams{
		HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{
			Checkers: []handler.HealthChecker{stubChecker{err: checkerErr}},
		}),
		RecommendationHandler: handler.NewRecommendationHandler(handler.RecommendationHandlerParams{
			RecommendationUC: m.recommendation,
			Logger:           logger,
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: m.notification}),
		EventHandler: handler.NewEventHandler(handler.EventHandlerParams{
			ReengagementUC: m.reengagement,
			Logger:         logger,
		}),
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{ProximityUC: m.proximity}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenSvc),
		Metrics:        metrics.New(),
	}).RegisterRoutes(e)

	return e, m
}

func call(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func testEvent() *entity.Event {
	start := time.Date(2026, 6, 12, 20, 0, 0, 0, time.UTC)

	return &entity.Event{
		ID:        uuid.MustParse("7d9f0e4c-4a0b-4b4b-8f3c-2d6f1a9e5c21"),
		Title:     "Jazz night",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	}
}

func TestHealth(t *testing.T) {
	e, _ := newTestAPI(t, uuid.New(), nil)
	rec := call(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	e, _ = newTestAPI(t, uuid.New(), errors.New("refused"))
	rec = call(e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"postgres":"unavailable"`)
}

func TestMetricsEndpoint(t *testing.T) {
	e, _ := newTestAPI(t, uuid.New(), nil)

	rec := call(e, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRequiresToken(t *testing.T) {
	e, _ := newTestAPI(t, uuid.New(), nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/recommendations", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetRecommendations(t *testing.T) {
	userID := uuid.New()
	e, m := newTestAPI(t, userID, nil)

	scored := []*entity.ScoredEvent{{Event: testEvent(), RecommendationScore: 42}}
	m.recommendation.EXPECT().Recommend(mock.Anything, userID, 5).Return(scored, nil)

	rec := call(e, http.MethodGet, "/v1/recommendations?limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*entity.ScoredEvent
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
	require.Len(t, got, 1)
	assert.InDelta(t, 42.0, got[0].RecommendationScore, 1e-9)
}

func TestGetRecommendations_InvalidLimit(t *testing.T) {
	e, _ := newTestAPI(t, uuid.New(), nil)

	rec := call(e, http.MethodGet, "/v1/recommendations?limit=500", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, map[string]any{"limit": "max=100"}, body.Error.Details)
}

func TestEvaluateNotification(t *testing.T) {
	userID := uuid.New()

	t.Run("selected", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		candidate := entity.NewNotificationCandidate(entity.NotificationTrending, testEvent(), "Trending", "Popular now")
		m.notification.EXPECT().EvaluateForUser(mock.Anything, userID).Return(candidate, nil)

		rec := call(e, http.MethodPost, "/v1/notifications/evaluate", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), candidate.TrackingID)
	})

	t.Run("nothing eligible", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.notification.EXPECT().EvaluateForUser(mock.Anything, userID).Return(nil, nil)

		rec := call(e, http.MethodPost, "/v1/notifications/evaluate", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("history unavailable", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.notification.EXPECT().EvaluateForUser(mock.Anything, userID).
			Return(nil, errors.Wrap(domainerrors.ErrHistoryUnavailable, "claim"))

		rec := call(e, http.MethodPost, "/v1/notifications/evaluate", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "HISTORY_UNAVAILABLE", decode(t, rec).Error.Code)
	})
}

func TestEventSignals(t *testing.T) {
	userID := uuid.New()
	eventID := testEvent().ID

	t.Run("view schedules reminder", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.reengagement.EXPECT().TrackEventViewByID(mock.Anything, userID, eventID).Return(nil)
		m.reengagement.EXPECT().HasPendingReminder(userID, eventID).Return(true)

		rec := call(e, http.MethodPost, "/v1/events/"+eventID.String()+"/views", "")

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"reminder_pending":true`)
	})

	t.Run("view of unknown event", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.reengagement.EXPECT().TrackEventViewByID(mock.Anything, userID, eventID).Return(domainerrors.ErrEventNotFound)

		rec := call(e, http.MethodPost, "/v1/events/"+eventID.String()+"/views", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid event id", func(t *testing.T) {
		e, _ := newTestAPI(t, userID, nil)

		rec := call(e, http.MethodPost, "/v1/events/not-a-uuid/views", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("registration and favorite", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.reengagement.EXPECT().MarkAsRegistered(userID, eventID).Return()
		m.reengagement.EXPECT().MarkAsFavorited(userID, eventID).Return()

		assert.Equal(t, http.StatusOK, call(e, http.MethodPost, "/v1/events/"+eventID.String()+"/registrations", "").Code)
		assert.Equal(t, http.StatusOK, call(e, http.MethodPost, "/v1/events/"+eventID.String()+"/favorites", "").Code)
	})
}

func TestSessions(t *testing.T) {
	userID := uuid.New()
	idle := &entity.ProximityState{SessionID: "s1"}
	watching := &entity.ProximityState{SessionID: "s1", UserID: userID, Watching: true}

	t.Run("watch", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.proximity.EXPECT().StartWatching("s1", userID).Return(watching, nil)

		rec := call(e, http.MethodPost, "/v1/sessions/s1/watch", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"watching":true`)
	})

	t.Run("watch lost to another user", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.proximity.EXPECT().StartWatching("s1", userID).Return(nil, domainerrors.ErrSessionForbidden)

		rec := call(e, http.MethodPost, "/v1/sessions/s1/watch", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"near"`)
	})

	t.Run("another user's session", func(t *testing.T) {
		e, m := newTestAPI(t, uuid.New(), nil)
		m.proximity.EXPECT().State("s1").Return(watching)

		rec := call(e, http.MethodDelete, "/v1/sessions/s1/watch", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unwatch", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.proximity.EXPECT().State("s1").Return(watching)
		m.proximity.EXPECT().StopWatching("s1").Return()

		assert.Equal(t, http.StatusNoContent, call(e, http.MethodDelete, "/v1/sessions/s1/watch", "").Code)
	})

	t.Run("position raises alerts", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		alert := entity.NewNotificationCandidate(entity.NotificationProximity, testEvent(), "Nearby", "Jazz night is close")
		m.proximity.EXPECT().State("s1").Return(watching)
		m.proximity.EXPECT().
			TrackPosition(mock.Anything, "s1", entity.Coordinate{Lat: 25.04, Lng: 121.56}).
			Return([]*entity.NotificationCandidate{alert}, nil)

		rec := call(e, http.MethodPost, "/v1/sessions/s1/position", `{"lat":25.04,"lng":121.56}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), alert.TrackingID)
	})

	t.Run("position without watch", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.proximity.EXPECT().State("s1").Return(idle)
		m.proximity.EXPECT().TrackPosition(mock.Anything, "s1", mock.Anything).Return(nil, domainerrors.ErrSessionNotWatching)

		rec := call(e, http.MethodPost, "/v1/sessions/s1/position", `{"lat":0,"lng":0}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("position out of range", func(t *testing.T) {
		e, m := newTestAPI(t, userID, nil)
		m.proximity.EXPECT().State("s1").Return(watching)

		rec := call(e, http.MethodPost, "/v1/sessions/s1/position", `{"lat":95,"lng":0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
