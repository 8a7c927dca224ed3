package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/craftboard/internal/config"
	"github.com/osse101/craftboard/internal/event"
)

// InitializeEventSystem creates the event bus and, when EVENT_JOURNAL_PATH is
// set, the JSON-lines journal. The journal is nil otherwise; the caller closes it.
func InitializeEventSystem(cfg *config.Config) (*event.MemoryBus, *event.JournalWriter, error) {
	eventBus := event.NewMemoryBus()

	if cfg.EventJournalPath == "" {
		slog.Info(LogMsgEventSystemInitialized, "journal", false)
		return eventBus, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.EventJournalPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateJournalDir, err)
	}

	journal, err := event.NewJournalWriter(cfg.EventJournalPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedOpenJournal, err)
	}

	slog.Info(LogMsgEventSystemInitialized, "journal", true, "journal_path", cfg.EventJournalPath)
	return eventBus, journal, nil
}
