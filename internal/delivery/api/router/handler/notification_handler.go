package handler

import (
	"net/http"

	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/response"
	"eventpulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
}

// NotificationHandler triggers notification arbitration for the caller
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{notificationUC: params.NotificationUC}
}

// Evaluate selects, records and emits at most one notification. It answers
// 204 when nothing is eligible.
func (h *NotificationHandler) Evaluate(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	candidate, err := h.notificationUC.EvaluateForUser(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if candidate == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return response.Success(c, http.StatusOK, candidate)
}
