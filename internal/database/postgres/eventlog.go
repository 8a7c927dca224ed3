package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/craftboard/internal/eventlog"
)

// EventLogRepository implements eventlog.Repository for PostgreSQL
type EventLogRepository struct {
	pool *pgxpool.Pool
}

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(pool *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{pool: pool}
}

// Append stores an event
func (r *EventLogRepository) Append(ctx context.Context, eventType string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		if metadataJSON, err = json.Marshal(metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
		}
	}

	if _, err := r.pool.Exec(ctx, sqlInsertEvent, eventType, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// Recent retrieves the newest events first
func (r *EventLogRepository) Recent(ctx context.Context, eventType string, limit int) ([]eventlog.Event, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if eventType == "" {
		rows, err = r.pool.Query(ctx, sqlRecentEvents, limit)
	} else {
		rows, err = r.pool.Query(ctx, sqlRecentEventsByType, eventType, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	var events []eventlog.Event
	for rows.Next() {
		var (
			evt                       eventlog.Event
			payloadJSON, metadataJSON []byte
		)
		if err := rows.Scan(&evt.ID, &evt.EventType, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanEvent, err)
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
			}
		}
		events = append(events, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}

// Prune removes events older than retentionDays
func (r *EventLogRepository) Prune(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := r.pool.Exec(ctx, sqlCleanupEvents, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvent, err)
	}
	return tag.RowsAffected(), nil
}
