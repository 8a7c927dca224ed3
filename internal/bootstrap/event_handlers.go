package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/eventlog"
	"github.com/osse101/craftboard/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
// EventLogService and Journal are optional.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
	Journal         *event.JournalWriter
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (for event-based metrics)
// - Event logger (persists events to the database backend)
// - Event journal (appends events to a JSON-lines file)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.EventLogService != nil {
		if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
		}
		slog.Info(LogMsgEventLoggerInitialized)
	}

	if deps.Journal != nil {
		event.SubscribeAll(deps.EventBus, deps.Journal.Handle)
		slog.Info(LogMsgEventJournalSubscribed)
	}

	return nil
}
