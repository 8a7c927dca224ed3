package sse

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one message on the stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected stream
type Client struct {
	ID           string
	EventChannel chan Event
	// nil means all events
	EventFilter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans game events out to connected stream clients
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a new Hub; call Start before use
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.deliver(evt)

		case <-h.shutdown:
			return
		}
	}
}

// deliver never blocks; a lagging client misses the event
func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if !client.wants(evt.Type) {
			continue
		}
		select {
		case client.EventChannel <- evt:
		default:
			slog.Debug(LogMsgClientLagging, "client_id", client.ID, "event_type", evt.Type)
		}
	}
}

// Register adds a client interested in eventTypes (all when empty).
// It returns nil once the hub is stopped.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}

	select {
	case h.register <- client:
		return client
	case <-h.shutdown:
		return nil
	}
}

// Unregister removes a client
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client. It reports false when
// the event was dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) bool {
	evt := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: h.now().UnixMilli(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- evt:
		return true
	default:
		slog.Warn(LogMsgBroadcastDropped, "event_type", eventType)
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatMessage renders an event in text/event-stream framing
func FormatMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	msg := make([]byte, 0, len(data)+len(evt.ID)+len(evt.Type)+32)
	if evt.ID != "" {
		msg = append(msg, "id: "+evt.ID+"\n"...)
	}
	msg = append(msg, "event: "+evt.Type+"\n"...)
	msg = append(msg, "data: "...)
	msg = append(msg, data...)
	msg = append(msg, "\n\n"...)
	return msg, nil
}
