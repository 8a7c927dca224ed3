package eventlog

import (
	"context"
	"time"
)

// Event is one session event as stored by a Repository
type Event struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Repository is the append-only store behind the event log. Both the sqlite
// and postgres backends implement it.
type Repository interface {
	Append(ctx context.Context, eventType string, payload, metadata map[string]interface{}) error

	// Recent returns newest first; an empty eventType matches every type
	Recent(ctx context.Context, eventType string, limit int) ([]Event, error)

	// Prune deletes events older than retentionDays and reports how many went
	Prune(ctx context.Context, retentionDays int) (int64, error)
}
