package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lexicon-journal/internal/adapter/memory"
	"github.com/heartmarshall/lexicon-journal/internal/adapter/postgres"
	"github.com/heartmarshall/lexicon-journal/internal/adapter/postgres/kv"
	"github.com/heartmarshall/lexicon-journal/internal/adapter/sqlite"
	"github.com/heartmarshall/lexicon-journal/internal/config"
	"github.com/heartmarshall/lexicon-journal/internal/store"
)

// KV is an opened store backend that can report its health.
type KV interface {
	store.Backend
	Ping(ctx context.Context) error
}

// OpenStore opens the backend selected by cfg.Store.Driver. The returned
// close function releases it and must be called exactly once.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (KV, func(), error) {
	log := logger.With("component", "store", "driver", cfg.Store.Driver)

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		log.WarnContext(ctx, "using in-memory store, journal will not survive restarts")
		return memory.NewKV(), func() {}, nil

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.InfoContext(ctx, "store opened", slog.String("path", cfg.Store.SQLitePath))
		return db, func() {
			if err := db.Close(); err != nil {
				log.Error("close sqlite", slog.String("error", err.Error()))
			}
		}, nil

	case config.StoreDriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		log.InfoContext(ctx, "store opened")
		return kv.New(pool), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
