package impl

import (
	"context"
	"log/slog"

	"eventpulse/config"
	domainerrors "eventpulse/internal/domain/errors"
	"eventpulse/internal/errors"

	"github.com/sony/gobreaker/v2"
)

// sourceGuard puts a circuit breaker in front of every external data source,
// so a failing feed is skipped quickly instead of being hammered on each evaluation.
type sourceGuard struct {
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

func newSourceGuard(cfg *config.EngagementConfig, logger *slog.Logger, sources ...string) *sourceGuard {
	g := &sourceGuard{breakers: make(map[string]*gobreaker.CircuitBreaker[any], len(sources))}
	for _, source := range sources {
		g.breakers[source] = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:        source,
			MaxRequests: 1,
			Timeout:     cfg.BreakerOpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= cfg.BreakerFailureThreshold
			},
			IsSuccessful: func(err error) bool {
				// A caller giving up is not a fault of the source
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("Data source breaker changed state",
					slog.String("source", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}

	return g
}

// guardedFetch runs fn behind the source's breaker. Any failure, including an
// open breaker, comes back as a DataSourceError.
func guardedFetch[T any](g *sourceGuard, source string, fn func() (T, error)) (T, error) {
	var zero T

	cb, ok := g.breakers[source]
	if !ok {
		return zero, errors.Errorf("no breaker registered for source %s", source)
	}

	result, err := cb.Execute(func() (any, error) {
		v, err := fn()

		return v, err
	})
	if err != nil {
		return zero, domainerrors.NewDataSourceError(source, err)
	}

	value, _ := result.(T)

	return value, nil
}
