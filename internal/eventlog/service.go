package eventlog

import (
	"context"

	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all session events
	Subscribe(bus event.Bus) error

	// RecentEvents returns the newest logged events, optionally filtered by type
	RecentEvents(ctx context.Context, eventType string, limit int) ([]Event, error)

	// Prune removes events older than retention period
	Prune(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all session event types
func (s *service) Subscribe(bus event.Bus) error {
	event.SubscribeAll(bus, s.handleEvent)
	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotMap, LogFieldType, evt.Type, LogFieldError, err)
		return nil
	}

	var metadata map[string]interface{}
	if evt.Metadata != nil {
		metadata, _ = event.DecodePayload[map[string]interface{}](evt.Metadata)
	}

	if err := s.repo.Append(ctx, string(evt.Type), payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type)
	return nil
}

// RecentEvents clamps limit and queries the repository
func (s *service) RecentEvents(ctx context.Context, eventType string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, eventType, limit)
}

// Prune removes events older than the retention period
func (s *service) Prune(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.Prune(ctx, retentionDays)
}
