package handler

import (
	"net/http"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
)

// SetUnlockRequest forces the unlock state of an item or recipe
type SetUnlockRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=item recipe"`
	ID       string `json:"id" validate:"required,max=100,token"`
	Unlocked bool   `json:"unlocked"`
}

// SetHintRequest forces an item's hint flag
type SetHintRequest struct {
	ItemID string `json:"item_id" validate:"required,max=100,token"`
	Hint   bool   `json:"hint"`
}

// HandleReset wipes all progress and the board
func HandleReset(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info(LogMsgGameResetRequested)
		game.Reset(r.Context())
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameResetSuccess})
	}
}

// HandleSetUnlock sets the unlock state of one entity
func HandleSetUnlock(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetUnlockRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set unlock"); err != nil {
			return
		}

		kind := domain.KindCraftItem
		if req.Kind == domain.KindCraftRecipe.String() {
			kind = domain.KindCraftRecipe
		}

		if err := game.SetUnlockState(r.Context(), kind, req.ID, req.Unlocked); err != nil {
			respondServiceError(w, r, ErrMsgSetUnlockFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUnlockStateUpdated})
	}
}

// HandleSetHint sets an item's hint flag
func HandleSetHint(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SetHintRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set hint"); err != nil {
			return
		}

		if err := game.SetHintState(r.Context(), req.ItemID, req.Hint); err != nil {
			respondServiceError(w, r, ErrMsgSetHintFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHintStateUpdated})
	}
}
