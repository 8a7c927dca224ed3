package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/craftboard/internal/domain"
)

// Type names an event; values follow <entity>.<action>
type Type string

// Metadata is free-form context attached by the publisher
type Metadata interface{}

// Event is what a session publishes. Payload holds one of the typed
// payloads in internal/domain when published in-process.
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue returns nil when metadata is not a map or lacks key
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

const (
	ItemUnlocked             Type = domain.EventTypeItemUnlocked
	RecipeUnlocked           Type = domain.EventTypeRecipeUnlocked
	RecipeAlreadyMade        Type = domain.EventTypeRecipeAlreadyMade
	CombinationInvalid       Type = domain.EventTypeCombinationInvalid
	BoardRecycleStateChanged Type = domain.EventTypeBoardRecycleStateChanged
	HintGiven                Type = domain.EventTypeHintGiven
	GameReset                Type = domain.EventTypeGameReset
)

// SessionTypes lists every event type a session can publish
var SessionTypes = []Type{
	ItemUnlocked,
	RecipeUnlocked,
	RecipeAlreadyMade,
	CombinationInvalid,
	BoardRecycleStateChanged,
	HintGiven,
	GameReset,
}

type Handler func(ctx context.Context, event Event) error

// Bus is owned by a session; subscribers are registered before the first publish
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers synchronously on the publisher's goroutine
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for the event type in subscription order.
// A failing handler does not stop later ones; all failures come back joined.
// Events without a version are stamped with EventSchemaVersion.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	if event.Version == "" {
		event.Version = EventSchemaVersion
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe copies the handler slice so a Publish in flight keeps its snapshot
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.handlers[eventType]
	next := make([]Handler, len(current), len(current)+1)
	copy(next, current)
	b.handlers[eventType] = append(next, handler)
}

// SubscribeAll subscribes handler to every type in SessionTypes
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range SessionTypes {
		bus.Subscribe(t, handler)
	}
}
