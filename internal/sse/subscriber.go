package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/craftboard/internal/event"
)

// Subscriber bridges the game event bus to the hub. Payloads are forwarded as
// published; they are already JSON shaped.
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers for every session event type
func (s *Subscriber) Subscribe(bus event.Bus) {
	event.SubscribeAll(bus, s.handle)
	slog.Info(LogMsgSubscriberReady, "types", len(event.SessionTypes))
}

func (s *Subscriber) handle(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
