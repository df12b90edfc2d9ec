package handler

import (
	"log/slog"
	"net/http"

	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/response"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	ReengagementUC usecase.ReengagementUsecase
	Logger         *slog.Logger
}

// EventHandler receives the engagement signals the client reports for an event
type EventHandler struct {
	reengagementUC usecase.ReengagementUsecase
	logger         *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		reengagementUC: params.ReengagementUC,
		logger:         params.Logger,
	}
}

// ReminderStatus reports whether a re-engagement reminder is scheduled
type ReminderStatus struct {
	EventID         uuid.UUID `json:"event_id"`
	ReminderPending bool      `json:"reminder_pending"`
}

// TrackView records that the caller viewed the event and schedules a reminder
func (h *EventHandler) TrackView(c echo.Context) error {
	userID, eventID, err := h.identify(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reengagementUC.TrackEventViewByID(c.Request().Context(), userID, eventID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, ReminderStatus{
		EventID:         eventID,
		ReminderPending: h.reengagementUC.HasPendingReminder(userID, eventID),
	})
}

// MarkRegistered records a registration, which cancels any reminder for the event
func (h *EventHandler) MarkRegistered(c echo.Context) error {
	userID, eventID, err := h.identify(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.reengagementUC.MarkAsRegistered(userID, eventID)

	return response.Success(c, http.StatusOK, ReminderStatus{EventID: eventID})
}

// MarkFavorited records a favorite, which cancels any reminder for the event
func (h *EventHandler) MarkFavorited(c echo.Context) error {
	userID, eventID, err := h.identify(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.reengagementUC.MarkAsFavorited(userID, eventID)

	return response.Success(c, http.StatusOK, ReminderStatus{EventID: eventID})
}

// identify reads the caller and the event path parameter
func (h *EventHandler) identify(c echo.Context) (userID, eventID uuid.UUID, err error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, domainerrors.ErrUnauthorized
	}

	eventID, err = uuid.Parse(c.Param("eventId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid event ID")
	}

	return userID, eventID, nil
}
