package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/osse101/craftboard/internal/bootstrap"
	"github.com/osse101/craftboard/internal/config"
	"github.com/osse101/craftboard/internal/logger"
)

// globalOptions are the persistent flags shared by every command.
// Unset flags leave the environment configuration untouched.
type globalOptions struct {
	catalogPath string
	backend     string
	saveDir     string
	logLevel    string
	jsonOutput  bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "craftboard - a merge-and-craft game engine",
		Long: `craftboard runs the crafting and unlock engine of a merge-and-craft game.
Progress is kept in the configured save backend between commands.

Examples:
  craftboard serve --port 8080
  craftboard combine fire water
  craftboard items --state unlocked
  craftboard recipes --item steam
  craftboard board clear
  craftboard validate --catalog configs/catalog.yaml`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, flagCatalog, "", "Path to the catalog file (overrides CATALOG_PATH)")
	rootCmd.PersistentFlags().StringVar(&opts.backend, flagBackend, "", "Save backend: file, sqlite, postgres or memory (overrides STORAGE_BACKEND)")
	rootCmd.PersistentFlags().StringVar(&opts.saveDir, flagSaveDir, "", "Directory for file saves (overrides SAVE_DIR)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, flagLogLevel, "", "Log level (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, flagJSON, false, "Print results as JSON")

	rootCmd.AddCommand(newServeCommand(opts))
	rootCmd.AddCommand(newCombineCommand(opts))
	rootCmd.AddCommand(newBoardCommand(opts))
	rootCmd.AddCommand(newItemsCommand(opts))
	rootCmd.AddCommand(newRecipesCommand(opts))
	rootCmd.AddCommand(newHintCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))
	rootCmd.AddCommand(newResetCommand(opts))
	rootCmd.AddCommand(newValidateCommand(opts))
	rootCmd.AddCommand(newVersionCommand(opts))

	return rootCmd
}

// loadConfig reads the environment configuration and applies flag overrides
func (o *globalOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.catalogPath != "" {
		cfg.CatalogPath = o.catalogPath
	}
	if o.backend != "" {
		cfg.StorageBackend = o.backend
	}
	if o.saveDir != "" {
		cfg.SaveDir = o.saveDir
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, nil
}

// withApp runs fn against a wired game and saves the session afterwards.
// One-shot commands log to stderr so stdout carries only results.
func (o *globalOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *bootstrap.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	cfg.LogDir = ""
	if _, err := bootstrap.SetupLogger(cfg, cmd.ErrOrStderr()); err != nil {
		return err
	}

	ctx := logger.WithRequestID(cmd.Context(), logger.GenerateRequestID())
	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := fn(ctx, app); err != nil {
		return err
	}
	if !app.Session.Save(ctx) {
		return fmt.Errorf("%s: save failed", cmd.Name())
	}
	return nil
}

// emit prints v as JSON when --json is set, otherwise calls text
func (o *globalOptions) emit(w io.Writer, v interface{}, text func(io.Writer) error) error {
	if o.jsonOutput {
		return printJSON(w, v)
	}
	return text(w)
}
