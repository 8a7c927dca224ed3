package sse

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Handler streams hub events to one client until it disconnects or the hub stops.
// ?types=a,b limits the stream to those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := http.NewResponseController(w)

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryParamTypes); filterParam != "" {
			for _, t := range strings.Split(filterParam, ",") {
				if t = strings.TrimSpace(t); t != "" {
					eventTypes = append(eventTypes, t)
				}
			}
		}

		w.Header().Set(HeaderContentType, ContentTypeEventStream)
		w.Header().Set(HeaderCacheControl, CacheControlNoCache)
		w.Header().Set(HeaderConnection, ConnectionKeepAlive)

		client := hub.Register(eventTypes)
		if client == nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		slog.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes)
		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(evt Event) bool {
			msg, err := FormatMessage(evt)
			if err != nil {
				slog.Error(LogMsgWriteError, "event_type", evt.Type, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				slog.Error(LogMsgStreamingFailed, "error", err)
				return false
			}
			return true
		}

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().UnixMilli(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}
		if !send(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case evt, ok := <-client.EventChannel:
				if !ok {
					return
				}
				if !send(evt) {
					return
				}

			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().UnixMilli()}) {
					return
				}
			}
		}
	}
}
