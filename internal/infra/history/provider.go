package history

import (
	"context"
	"log/slog"

	"eventpulse/config"
	"eventpulse/internal/domain/constants"
	"eventpulse/internal/domain/repository"
	"eventpulse/internal/errors"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/fx"
)

// Params defines the dependencies for the shown-history store
type Params struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     *config.Config
	Engagement *config.EngagementConfig
	Logger     *slog.Logger
}

// New picks the history backend from config. The badger backend is closed on shutdown.
func New(params Params) (repository.ShownHistoryStore, error) {
	cfg := params.Config.History
	if cfg == nil || cfg.Store == "" || cfg.Store == constants.HistoryStoreMemory {
		params.Logger.Info("Using in-memory shown history store")

		return NewMemoryStore(), nil
	}

	if cfg.Store != constants.HistoryStoreBadger {
		return nil, errors.Errorf("unknown history store: %s", cfg.Store)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.Path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open badger history store")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing badger history store")

			return db.Close()
		},
	})

	params.Logger.Info("Using badger shown history store", slog.String("path", cfg.Path))

	return NewBadgerStore(db, params.Engagement.HistoryTTL), nil
}
