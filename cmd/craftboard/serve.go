package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/osse101/craftboard/internal/bootstrap"
	"github.com/osse101/craftboard/internal/eventlog"
	"github.com/osse101/craftboard/internal/server"
	"github.com/osse101/craftboard/internal/sse"
	"github.com/osse101/craftboard/internal/worker"
)

func newServeCommand(opts *globalOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the game over HTTP. The session autosaves on AUTOSAVE_INTERVAL and,
with a database backend, old events are pruned on EVENT_CLEANUP_INTERVAL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed(flagPort) {
				cfg.Port = port
			}

			logFile, err := bootstrap.SetupLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logFile.Close()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.NewApp(ctx, cfg)
			if err != nil {
				return err
			}

			pool := worker.NewPool(worker.DefaultWorkers, worker.DefaultQueueSize)
			pool.Start()
			scheduler := worker.NewScheduler(pool)

			if _, err := scheduler.Every(worker.JobNameAutosave, cfg.AutosaveInterval, worker.NewAutosaveJob(app.Session)); err != nil {
				slog.Warn(msgAutosaveDisabled, "error", err)
			}
			if app.EventLog != nil {
				job := eventlog.NewPruneJob(app.EventLog, cfg.EventRetentionDays)
				if _, err := scheduler.Every(eventlog.PruneJobName, cfg.CleanupInterval, job); err != nil {
					slog.Warn(msgCleanupDisabled, "error", err)
				}
			}

			hub := sse.NewHub()
			hub.Start()
			sse.NewSubscriber(hub).Subscribe(app.Bus)

			srv := server.NewServer(server.Options{
				Port:           cfg.Port,
				APIKey:         cfg.APIKey,
				TrustedProxies: cfg.TrustedProxies,
				Game:           app.Session,
				Events:         app.EventLog,
				Pinger:         app.Backend.Pinger,
				Stream:         hub,
			})

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			var serveErr error
			select {
			case <-ctx.Done():
				slog.Info(msgServeStopping)
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					serveErr = fmt.Errorf("%s: %w", errMsgServerFailed, err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
				Stream:    hub,
				Server:    srv,
				Scheduler: scheduler,
				Pool:      pool,
				App:       app,
			})
			return serveErr
		},
	}

	cmd.Flags().IntVar(&port, flagPort, 0, "Listen port (overrides PORT)")
	return cmd
}
