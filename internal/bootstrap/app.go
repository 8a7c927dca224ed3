package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/config"
	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/eventlog"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/session"
)

// App is a fully wired game: catalog, persistence, events, and the live session
type App struct {
	Config   *config.Config
	Catalog  *catalog.Catalog
	Backend  *Backend
	Bus      *event.MemoryBus
	Journal  *event.JournalWriter
	EventLog eventlog.Service
	Session  *session.Session
}

// NewApp loads the catalog, opens storage, wires event subscribers, and starts
// the session from the persisted save
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := LoadCatalog(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	backend, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus, journal, err := InitializeEventSystem(cfg)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Catalog: cat,
		Backend: backend,
		Bus:     bus,
		Journal: journal,
	}
	if backend.EventLog != nil {
		app.EventLog = eventlog.NewService(backend.EventLog)
	}

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: app.EventLog,
		Journal:         journal,
	}); err != nil {
		_ = app.Close()
		return nil, err
	}

	app.Session, err = session.New(ctx, session.Options{
		Catalog: cat,
		Store:   backend.Saves,
		Host:    session.NewHeadlessHost(),
		Bus:     bus,
		Resolver: crafting.Options{
			DepletionEnabled: cfg.DepletionEnabled,
			PairCacheSize:    cfg.ResolverCacheSize,
		},
	})
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedStartSession, err)
	}

	logger.FromContext(ctx).Info(LogMsgSessionReady,
		"backend", backend.Name,
		"items", len(cat.Items()),
		"recipes", len(cat.Recipes()))
	return app, nil
}

// Close releases the journal and the storage backend. It does not save.
func (a *App) Close() error {
	var errs []error
	if a.Journal != nil {
		if err := a.Journal.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.Backend != nil {
		if err := a.Backend.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
