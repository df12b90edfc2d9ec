package handler

import (
	"log/slog"
	"net/http"

	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/response"
	"eventpulse/internal/delivery/api/validator"
	"eventpulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// RecommendationHandler serves ranked event feeds
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// RecommendationsQuery holds the query parameters of GetRecommendations
type RecommendationsQuery struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// GetRecommendations returns the caller's upcoming and ongoing events, best match first
func (h *RecommendationHandler) GetRecommendations(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var query RecommendationsQuery
	if err := c.Bind(&query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid input", validator.Fields(err))
	}

	scored, err := h.recommendationUC.Recommend(c.Request().Context(), userID, query.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, scored)
}
