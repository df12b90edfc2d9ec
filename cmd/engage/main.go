package main

import (
	"context"
	"log/slog"
	"os"

	"eventpulse/config"
	"eventpulse/internal/delivery"
	"eventpulse/internal/delivery/api"
	"eventpulse/internal/delivery/api/middleware"
	"eventpulse/internal/delivery/api/router/handler"
	"eventpulse/internal/delivery/worker"
	"eventpulse/internal/infra/auth"
	"eventpulse/internal/infra/history"
	logs "eventpulse/internal/infra/log"
	"eventpulse/internal/infra/metrics"
	"eventpulse/internal/infra/notification"
	"eventpulse/internal/infra/persistence/postgres"
	"eventpulse/internal/infra/pubsub"
	"eventpulse/internal/infra/scheduler"
	"eventpulse/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		config.NewEngagementConfig,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		fx.Annotate(
			postgres.NewHealthChecker,
			fx.As(new(handler.HealthChecker)),
			fx.ResultTags(`group:"health_checkers"`),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEventRepository,
			postgres.NewInteractionRepository,
			postgres.NewFavoriteRepository,
			postgres.NewRegistrationRepository,
			postgres.NewPopularityRepository,
			history.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			metrics.NewEngagementMetrics,
			scheduler.New,
			pubsub.NewEventPublisher,
			notification.NewEmitter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCandidateInbox,
			impl.NewRecommendationService,
			impl.NewNotificationService,
			impl.NewProximityService,
			impl.NewReengagementService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewRecommendationHandler,
			handler.NewNotificationHandler,
			handler.NewEventHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
