package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/craftboard/internal/config"
	"github.com/osse101/craftboard/internal/database"
	"github.com/osse101/craftboard/internal/database/postgres"
	"github.com/osse101/craftboard/internal/database/sqlite"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/eventlog"
	"github.com/osse101/craftboard/internal/handler"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/repository"
	"github.com/osse101/craftboard/internal/storage"
)

// Backend holds the persistence implementations chosen by STORAGE_BACKEND.
// EventLog and Pinger are nil for backends without a database.
type Backend struct {
	Name     string
	Saves    repository.Save
	EventLog eventlog.Repository
	Pinger   handler.Pinger

	closers []func() error
}

// Close releases every resource the backend opened
func (b *Backend) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sqlPinger adapts database/sql to the readiness probe
type sqlPinger struct {
	db *sql.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

// InitializeRepositories opens the configured storage backend. Every backend
// except memory is fronted by the save cache.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Backend, error) {
	b := &Backend{Name: cfg.StorageBackend}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		b.Saves = storage.NewMemoryStore()
		logger.FromContext(ctx).Info(LogMsgBackendOpened, "backend", b.Name)
		return b, nil

	case config.BackendFile, "":
		store, err := storage.NewFileStore(cfg.SaveDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenFileStore, err)
		}
		b.Saves = store

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		b.closers = append(b.closers, func() error { return sqlite.Close(db) })
		b.Saves = sqlite.NewGormSaveRepository(db)
		b.EventLog = sqlite.NewGormEventLogRepository(db)
		if sqlDB, err := db.DB(); err == nil {
			b.Pinger = sqlPinger{db: sqlDB}
		}

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, database.PoolConfig{
			ConnString: cfg.GetDBConnString(),
			MaxConns:   cfg.DBMaxConns,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		b.closers = append(b.closers, func() error { pool.Close(); return nil })
		if err := postgres.Migrate(ctx, pool); err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		b.Saves = postgres.NewSaveRepository(pool)
		b.EventLog = postgres.NewEventLogRepository(pool)
		b.Pinger = pool

	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedBackendFmt, domain.ErrInvalidConfig, cfg.StorageBackend)
	}

	b.Saves = storage.NewCachedStore(b.Saves, cfg.SaveCacheSize, cfg.SaveCacheTTL)
	logger.FromContext(ctx).Info(LogMsgBackendOpened,
		"backend", b.Name,
		"event_log", b.EventLog != nil,
		"cache_size", cfg.SaveCacheSize)
	return b, nil
}
