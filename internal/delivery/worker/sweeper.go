package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"eventpulse/config"
	"eventpulse/internal/delivery"
	"eventpulse/internal/domain/lifecycle"
	"eventpulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the background sweeper
type SweeperParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.NotificationUsecase
}

// sweeper runs the periodic maintenance jobs of the engine on a cron schedule
type sweeper struct {
	cron     *cron.Cron
	logger   *slog.Logger
	done     chan struct{}
	stopOnce sync.Once
}

// NewSweeper registers the sweep jobs; they start running in Serve
func NewSweeper(params SweeperParams) (delivery.Delivery, error) {
	cronLog := cronLogger{logger: params.Logger}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	s := &sweeper{
		cron:   c,
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	spec := params.Cfg.Sweep.HistoryPrune
	if _, err := c.AddFunc(spec, s.pruneHistoryJob(params.NotificationUC)); err != nil {
		return nil, errors.Wrapf(err, "invalid history prune schedule %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the scheduler and blocks until the sweeper is stopped
func (s *sweeper) Serve(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting sweeper", slog.Int("jobs", len(s.cron.Entries())))
	s.cron.Start()

	select {
	case <-ctx.Done():
		return s.stop(context.Background())
	case <-s.done:
		return nil
	}
}

// stop waits for running jobs, bounded by the shutdown timeout
func (s *sweeper) stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping sweeper")

		ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
		defer cancel()

		select {
		case <-s.cron.Stop().Done():
		case <-ctx.Done():
			err = errors.Wrap(ctx.Err(), "sweep jobs did not finish")
		}
		close(s.done)
	})

	return err
}

func (s *sweeper) pruneHistoryJob(notificationUC usecase.NotificationUsecase) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		pruned, err := notificationUC.PruneHistory(ctx)
		if err != nil {
			s.logger.ErrorContext(ctx, "History prune failed", slog.Any("error", err))

			return
		}
		s.logger.DebugContext(ctx, "History pruned", slog.Int("records", pruned))
	}
}

// cronLogger adapts slog to cron.Logger
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
