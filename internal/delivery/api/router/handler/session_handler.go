package handler

import (
	"net/http"

	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/response"
	"eventpulse/internal/delivery/api/validator"
	"eventpulse/internal/domain/entity"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	ProximityUC usecase.ProximityUsecase
}

// SessionHandler drives proximity watches for client sessions
type SessionHandler struct {
	proximityUC usecase.ProximityUsecase
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{proximityUC: params.ProximityUC}
}

// PositionRequest is a device position report
type PositionRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// Watch starts a proximity watch for the session
func (h *SessionHandler) Watch(c echo.Context) error {
	userID, sessionID, err := h.identify(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state, err := h.proximityUC.StartWatching(sessionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state)
}

// Unwatch stops the session's watch and forgets what it was told about
func (h *SessionHandler) Unwatch(c echo.Context) error {
	_, sessionID, err := h.owned(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.proximityUC.StopWatching(sessionID)

	return c.NoContent(http.StatusNoContent)
}

// UpdatePosition reports a position and returns the proximity alerts it raised
func (h *SessionHandler) UpdatePosition(c echo.Context) error {
	_, sessionID, err := h.owned(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid position input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid input", validator.Fields(err))
	}

	candidates, err := h.proximityUC.TrackPosition(c.Request().Context(), sessionID, entity.Coordinate{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if candidates == nil {
		candidates = []*entity.NotificationCandidate{}
	}

	return response.Success(c, http.StatusOK, candidates)
}

// owned resolves the caller and the session, refusing sessions watched by another user
func (h *SessionHandler) owned(c echo.Context) (uuid.UUID, string, error) {
	userID, sessionID, err := h.identify(c)
	if err != nil {
		return uuid.Nil, "", err
	}

	if state := h.proximityUC.State(sessionID); state != nil && state.Watching && state.UserID != userID {
		return uuid.Nil, "", domainerrors.ErrSessionForbidden
	}

	return userID, sessionID, nil
}

// identify resolves the caller and validates the session ID
func (h *SessionHandler) identify(c echo.Context) (uuid.UUID, string, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", domainerrors.ErrUnauthorized
	}

	sessionID := c.Param("sessionId")
	if sessionID == "" || len(sessionID) > 128 {
		return uuid.Nil, "", domainerrors.ErrValidationFailed.WithDetails("invalid session ID")
	}

	return userID, sessionID, nil
}
