package handler

import (
	"context"
	"net/http"

	"eventpulse/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthChecker is a dependency probed by the health endpoint
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Checkers []HealthChecker `group:"health_checkers"`
}

// HealthHandler reports liveness of the service and its dependencies
type HealthHandler struct {
	checkers []HealthChecker
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{checkers: params.Checkers}
}

// HealthStatus is the body of the health endpoint
type HealthStatus struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Check answers 200 when every dependency is reachable and 503 otherwise
func (h *HealthHandler) Check(c echo.Context) error {
	status := HealthStatus{Status: "ok"}
	code := http.StatusOK

	if len(h.checkers) > 0 {
		status.Dependencies = make(map[string]string, len(h.checkers))
	}
	for _, checker := range h.checkers {
		if err := checker.Check(c.Request().Context()); err != nil {
			status.Status = "degraded"
			status.Dependencies[checker.Name()] = "unavailable"
			code = http.StatusServiceUnavailable

			continue
		}
		status.Dependencies[checker.Name()] = "ok"
	}

	return response.Success(c, code, status)
}
