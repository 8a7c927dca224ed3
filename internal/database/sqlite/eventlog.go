package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/osse101/craftboard/internal/eventlog"
)

// GormEventLogRepository implements eventlog.Repository using GORM over SQLite
type GormEventLogRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormEventLogRepository creates a new GORM-based event log repository
func NewGormEventLogRepository(db *gorm.DB) *GormEventLogRepository {
	return &GormEventLogRepository{db: db, now: time.Now}
}

// Append stores an event
func (r *GormEventLogRepository) Append(ctx context.Context, eventType string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
	}

	model := EventModel{
		EventType: eventType,
		Payload:   string(payloadJSON),
		CreatedAt: r.now(),
	}
	if metadata != nil {
		metadataJSON, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeEvent, err)
		}
		s := string(metadataJSON)
		model.Metadata = &s
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertEvent, err)
	}
	return nil
}

// Recent retrieves the newest events first
func (r *GormEventLogRepository) Recent(ctx context.Context, eventType string, limit int) ([]eventlog.Event, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Limit(limit)
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var models []EventModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}

	events := make([]eventlog.Event, 0, len(models))
	for _, m := range models {
		evt := eventlog.Event{
			ID:        m.ID,
			EventType: m.EventType,
			CreatedAt: m.CreatedAt,
		}
		if err := json.Unmarshal([]byte(m.Payload), &evt.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
		}
		if m.Metadata != nil {
			if err := json.Unmarshal([]byte(*m.Metadata), &evt.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeEvent, err)
			}
		}
		events = append(events, evt)
	}
	return events, nil
}

// Prune removes events older than retentionDays
func (r *GormEventLogRepository) Prune(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := r.now().AddDate(0, 0, -retentionDays)

	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&EventModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvent, result.Error)
	}
	return result.RowsAffected, nil
}
