package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
)

// SpawnRequest places a new instance of an unlocked item on the board
type SpawnRequest struct {
	ItemID string  `json:"item_id" validate:"required,max=100,token"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// SpawnResponse reports the handle of a spawned instance
type SpawnResponse struct {
	Handle domain.Handle `json:"handle"`
	ItemID string        `json:"item_id"`
}

// MoveRequest moves a live instance
type MoveRequest struct {
	Handle string  `json:"handle" validate:"required,max=100,token"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// CombineRequest drops First onto Second
type CombineRequest struct {
	First  string `json:"first" validate:"required,max=100,token"`
	Second string `json:"second" validate:"required,max=100,token,nefield=First"`
}

// CombineResponse reports the outcome of a combine
type CombineResponse struct {
	Outcome       string             `json:"outcome"`
	RecipeID      string             `json:"recipe_id,omitempty"`
	Products      []string           `json:"products,omitempty"`
	Spawned       []crafting.Spawned `json:"spawned,omitempty"`
	NewlyUnlocked []string           `json:"newly_unlocked,omitempty"`
	Message       string             `json:"message,omitempty"`
}

// RecycleRequest selects a recycle action; Action defaults to toggle
type RecycleRequest struct {
	Action string `json:"action" validate:"omitempty,oneof=toggle clear undo unusable"`
}

// RecycleResponse reports the elements affected by a recycle action
type RecycleResponse struct {
	Action       string               `json:"action"`
	Affected     []domain.ElementView `json:"affected"`
	RecycleState domain.RecycleState  `json:"recycle_state"`
	Message      string               `json:"message,omitempty"`
}

// BoardHandler handles board HTTP requests
type BoardHandler struct {
	game Game
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(game Game) *BoardHandler {
	return &BoardHandler{game: game}
}

// GetBoard returns the tracked elements and recycle state
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.game.Board())
}

// Spawn places an unlocked item on the board
func (h *BoardHandler) Spawn(w http.ResponseWriter, r *http.Request) {
	var req SpawnRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spawn"); err != nil {
		return
	}

	handle, err := h.game.Spawn(r.Context(), req.ItemID, domain.Position{X: req.X, Y: req.Y})
	if err != nil {
		respondServiceError(w, r, ErrMsgSpawnFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SpawnResponse{Handle: handle, ItemID: req.ItemID})
}

// Move repositions a live instance
func (h *BoardHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Move"); err != nil {
		return
	}

	if err := h.game.Move(r.Context(), domain.Handle(req.Handle), domain.Position{X: req.X, Y: req.Y}); err != nil {
		respondServiceError(w, r, ErrMsgMoveFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, h.game.Board())
}

// Remove recycles one instance
func (h *BoardHandler) Remove(w http.ResponseWriter, r *http.Request) {
	handle := domain.Handle(chi.URLParam(r, "handle"))
	if err := h.game.Remove(r.Context(), handle); err != nil {
		respondServiceError(w, r, ErrMsgRemoveFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInstanceRemoved})
}

// Combine drops one instance onto another
func (h *BoardHandler) Combine(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CombineRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Combine"); err != nil {
		return
	}

	log.Debug(LogMsgCombineRequest, "first", req.First, "second", req.Second)

	result, err := h.game.Combine(r.Context(), domain.Handle(req.First), domain.Handle(req.Second))
	if err != nil {
		respondServiceError(w, r, ErrMsgCombineFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, newCombineResponse(result))
}

// Recycle runs a recycle action: toggle, clear, undo or unusable
func (h *BoardHandler) Recycle(w http.ResponseWriter, r *http.Request) {
	var req RecycleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recycle"); err != nil {
		return
	}
	if req.Action == "" {
		req.Action = RecycleActionToggle
	}

	logger.FromContext(r.Context()).Debug(LogMsgRecycleRequest, "action", req.Action)

	var affected []domain.BoardElement
	switch req.Action {
	case RecycleActionClear:
		affected = h.game.MassClear(r.Context())
	case RecycleActionUndo:
		affected = h.game.Undo(r.Context())
	case RecycleActionUnusable:
		affected = h.game.ClearUnusable(r.Context())
	default:
		affected = h.game.RecycleAction(r.Context())
	}

	resp := RecycleResponse{
		Action:       req.Action,
		Affected:     domain.ElementViews(affected),
		RecycleState: h.game.Board().RecycleState,
	}
	if len(affected) == 0 {
		resp.Message = MsgNothingToRecycle
	}
	respondJSON(w, http.StatusOK, resp)
}

func newCombineResponse(result crafting.CombineResult) CombineResponse {
	resp := CombineResponse{
		Outcome:       result.Outcome.String(),
		Products:      result.Products,
		Spawned:       result.Spawned,
		NewlyUnlocked: result.NewlyUnlocked,
	}
	if result.Recipe != nil {
		resp.RecipeID = result.Recipe.ID()
	}
	if result.Outcome == crafting.AlreadyMade {
		resp.Message = domain.MsgAlreadyMade
	}
	return resp
}
