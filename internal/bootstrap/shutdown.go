package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/craftboard/internal/server"
	"github.com/osse101/craftboard/internal/sse"
	"github.com/osse101/craftboard/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Stream    *sse.Hub
	Server    *server.Server
	Scheduler *worker.Scheduler
	Pool      *worker.Pool
	App       *App
}

// GracefulShutdown stops the application in order:
// 1. Event stream, so long-lived connections end, then the HTTP server
// 2. Scheduler and worker pool (no further background jobs)
// 3. Final save, then the journal and storage backend
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Stream != nil {
		components.Stream.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		if err := components.Scheduler.Shutdown(ctx); err != nil {
			slog.Error(LogMsgSchedulerFailed, "error", err)
		}
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	if app := components.App; app != nil {
		if app.Session != nil && !app.Session.Save(ctx) {
			slog.Error(LogMsgFinalSaveFailed)
		}
		if err := app.Close(); err != nil {
			slog.Error(LogMsgBackendCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
