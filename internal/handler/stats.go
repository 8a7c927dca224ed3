package handler

import (
	"net/http"

	"github.com/osse101/craftboard/internal/domain"
)

// HintStatusResponse reports whether a hint can be requested
type HintStatusResponse struct {
	Available bool `json:"available"`
}

// HandleGetStats returns unlock progress counters
func HandleGetStats(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, game.Stats())
	}
}

// HandleGetTips returns the tip list. Query: default=true limits to default tips.
func HandleGetTips(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defaultsOnly, _, ok := GetOptionalBoolParam(r, w, "default")
		if !ok {
			return
		}
		tips := game.Tips(defaultsOnly)
		if tips == nil {
			tips = []domain.GameTip{}
		}
		respondJSON(w, http.StatusOK, tips)
	}
}

// HandleGetHintStatus reports whether anything is left to discover
func HandleGetHintStatus(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HintStatusResponse{Available: game.HintAvailable()})
	}
}

// HandleRequestHint flags a buildable locked item and returns the hint text
func HandleRequestHint(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hint, err := game.RequestHint(r.Context())
		if err != nil {
			respondServiceError(w, r, "request hint", err)
			return
		}
		respondJSON(w, http.StatusOK, hint)
	}
}
