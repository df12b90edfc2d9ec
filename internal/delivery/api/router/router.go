// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/router/handler"
	"eventpulse/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler         *handler.HealthHandler
	RecommendationHandler *handler.RecommendationHandler
	NotificationHandler   *handler.NotificationHandler
	EventHandler          *handler.EventHandler
	SessionHandler        *handler.SessionHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Metrics               *metrics.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler         *handler.HealthHandler
	recommendationHandler *handler.RecommendationHandler
	notificationHandler   *handler.NotificationHandler
	eventHandler          *handler.EventHandler
	sessionHandler        *handler.SessionHandler
	authMiddleware        *middleware.AuthMiddleware
	metrics               *metrics.Registry
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:         params.HealthHandler,
		recommendationHandler: params.RecommendationHandler,
		notificationHandler:   params.NotificationHandler,
		eventHandler:          params.EventHandler,
		sessionHandler:        params.SessionHandler,
		authMiddleware:        params.AuthMiddleware,
		metrics:               params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	v1 := e.Group("/v1")
	v1.Use(r.authMiddleware.Authenticate)

	v1.GET("/recommendations", r.recommendationHandler.GetRecommendations)
	v1.POST("/notifications/evaluate", r.notificationHandler.Evaluate)

	eventsGroup := v1.Group("/events/:eventId")
	{
		eventsGroup.POST("/views", r.eventHandler.TrackView)
		eventsGroup.POST("/registrations", r.eventHandler.MarkRegistered)
		eventsGroup.POST("/favorites", r.eventHandler.MarkFavorited)
	}

	sessionsGroup := v1.Group("/sessions/:sessionId")
	{
		sessionsGroup.POST("/watch", r.sessionHandler.Watch)
		sessionsGroup.DELETE("/watch", r.sessionHandler.Unwatch)
		sessionsGroup.POST("/position", r.sessionHandler.UpdatePosition)
	}
}
