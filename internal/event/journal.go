package event

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/craftboard/internal/logger"
)

// JournalEntry is one line of the event journal
type JournalEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
}

// JournalWriter appends every event it handles to a JSON-lines sink
type JournalWriter struct {
	w      io.Writer
	closer io.Closer
	now    func() time.Time
	mu     sync.Mutex
}

// NewJournalWriter opens (or creates) the journal file at path for appending
func NewJournalWriter(path string) (*JournalWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, JournalFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open event journal %s: %w", path, err)
	}
	return &JournalWriter{w: f, closer: f, now: time.Now}, nil
}

// NewJournal writes to an arbitrary writer
func NewJournal(w io.Writer) *JournalWriter {
	return &JournalWriter{w: w, now: time.Now}
}

// Handle implements Handler. Write failures are logged and never fail the publish.
func (j *JournalWriter) Handle(ctx context.Context, evt Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := json.Marshal(JournalEntry{
		SchemaVersion: JournalSchemaVersion,
		Timestamp:     j.now(),
		Event:         evt,
	})
	if err == nil {
		_, err = j.w.Write(append(data, '\n'))
	}
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgJournalWriteFailed, "event_type", evt.Type, "error", err)
	}
	return nil
}

// Close closes the underlying file, if any
func (j *JournalWriter) Close() error {
	if j.closer == nil {
		return nil
	}
	return j.closer.Close()
}
