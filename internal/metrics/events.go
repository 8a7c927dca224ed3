package metrics

import (
	"context"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/logger"
)

// EventMetricsCollector subscribes to session events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every session event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemUnlocked:
		Unlocks.WithLabelValues(domain.KindCraftItem.String()).Inc()

	case event.RecipeUnlocked:
		Unlocks.WithLabelValues(domain.KindCraftRecipe.String()).Inc()
		CombineAttempts.WithLabelValues(OutcomeCrafted).Inc()

	case event.RecipeAlreadyMade:
		CombineAttempts.WithLabelValues(OutcomeAlreadyMade).Inc()

	case event.CombinationInvalid:
		CombineAttempts.WithLabelValues(OutcomeNoMatch).Inc()

	case event.HintGiven:
		HintsGiven.Inc()

	case event.GameReset:
		GameResets.Inc()

	case event.BoardRecycleStateChanged:
		payload, err := event.DecodePayload[domain.BoardRecycleStatePayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		BoardActions.WithLabelValues(string(payload.State)).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
