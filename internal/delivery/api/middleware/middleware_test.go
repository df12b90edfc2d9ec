package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventpulse/internal/delivery/api/response"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/errors"
	mockSvc "eventpulse/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	t.Helper()

	tokenSvc := mockSvc.NewMockTokenService(t)

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	group := e.Group("/v1")
	group.Use(NewAuthMiddleware(tokenSvc).Authenticate)
	group.GET("/me", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "no user")
		}

		return c.String(http.StatusOK, userID.String())
	})
	group.GET("/conflict", func(echo.Context) error {
		return errors.Wrap(domainerrors.ErrSessionNotWatching, "update position")
	})
	group.GET("/boom", func(echo.Context) error {
		return errors.New("database exploded")
	})

	return e, tokenSvc
}

func do(e *echo.Echo, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		authorization string
		setup         func(m *mockSvc.MockTokenService)
		wantStatus    int
		wantCode      string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized, wantCode: "MISSING_TOKEN"},
		{name: "not bearer", authorization: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{
			name:          "rejected token",
			authorization: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("bad").Return(uuid.Nil, errors.New("expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:          "valid token",
			authorization: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(userID, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := newTestServer(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec := do(e, "/v1/me", tt.authorization)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			} else {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	e, tokenSvc := newTestServer(t)
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(uuid.New(), nil)

	rec := do(e, "/v1/conflict", "Bearer good")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "SESSION_NOT_WATCHING", decodeError(t, rec).Code)

	rec = do(e, "/v1/boom", "Bearer good")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", info.Code)
	assert.NotContains(t, info.Message, "database")

	rec = do(e, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeError(t, rec).Code)
}
