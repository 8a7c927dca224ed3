package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/craftboard/internal/config"
	"github.com/osse101/craftboard/internal/logger"
)

// SetupLogger initializes the process logger writing to console and, when
// cfg.LogDir is set, a timestamped session file in that directory. Old session
// files beyond the retention count are removed first.
// Returns the log file handle (nil without LogDir; caller must close).
func SetupLogger(cfg *config.Config, console io.Writer) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false)

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(logCfg, console)
		logStartup(cfg)
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(console, logFile))
	logStartup(cfg)
	return logFile, nil
}

func logStartup(cfg *config.Config) {
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	slog.Debug(LogMsgConfigurationLoaded,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage_backend", cfg.StorageBackend,
		"catalog_path", cfg.CatalogPath,
		"port", cfg.Port)
}

// cleanupLogs removes the oldest session logs once LogFileRetentionLimit is reached
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	if len(logFiles) < LogFileRetentionLimit {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logFiles)
	toDelete := len(logFiles) - LogFileRetentionCount
	for _, name := range logFiles[:toDelete] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
