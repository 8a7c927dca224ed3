package handler

import (
	"net/http"

	"github.com/osse101/craftboard/internal/eventlog"
)

// HandleRecentEvents returns the newest logged events.
// Query: type=<event type>, limit=<n>
func HandleRecentEvents(svc eventlog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetOptionalIntParam(r, w, "limit", eventlog.DefaultRecentLimit)
		if !ok {
			return
		}
		eventType := GetOptionalQueryParam(r, "type", "")

		events, err := svc.RecentEvents(r.Context(), eventType, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEventsFailed, err)
			return
		}
		if events == nil {
			events = []eventlog.Event{}
		}
		respondJSON(w, http.StatusOK, events)
	}
}
