package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/session"
)

func TestHandleGetStats(t *testing.T) {
	h := newTestRouter(newTestSession(t))

	w := doRequest(t, h, http.MethodGet, "/stats", nil)

	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[crafting.Stats](t, w)
	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 2, stats.UnlockedItems)
	assert.Equal(t, 2, stats.TotalRecipes)
	assert.Equal(t, 0, stats.UnlockedRecipes)
	assert.Equal(t, 1, stats.FinalItems)
}

func TestHandleGetTips(t *testing.T) {
	h := newTestRouter(newTestSession(t))

	t.Run("Best Case: every tip", func(t *testing.T) {
		tips := decode[[]domain.GameTip](t, doRequest(t, h, http.MethodGet, "/tips", nil))
		assert.Len(t, tips, 2)
	})

	t.Run("Best Case: defaults only", func(t *testing.T) {
		tips := decode[[]domain.GameTip](t, doRequest(t, h, http.MethodGet, "/tips?default=true", nil))
		require.Len(t, tips, 1)
		assert.Equal(t, "drag", tips[0].ID)
	})

	t.Run("Error Case: malformed flag", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/tips?default=often", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleHints(t *testing.T) {
	t.Run("Best Case: hint flags a buildable item", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))

		status := decode[HintStatusResponse](t, doRequest(t, h, http.MethodGet, "/hints", nil))
		assert.True(t, status.Available)

		w := doRequest(t, h, http.MethodPost, "/hints", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		hint := decode[crafting.Hint](t, w)
		assert.Equal(t, "stick", hint.ItemID)
		assert.Contains(t, hint.Message, "Stick")

		item := decode[crafting.ItemView](t, doRequest(t, h, http.MethodGet, "/items/stick", nil))
		assert.True(t, item.HintGiven)
	})

	t.Run("Error Case: nothing left to hint", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))
		for _, req := range []SetUnlockRequest{
			{Kind: "item", ID: "stick", Unlocked: true},
			{Kind: "item", ID: "torch", Unlocked: true},
			{Kind: "recipe", ID: "make_stick", Unlocked: true},
			{Kind: "recipe", ID: "make_torch", Unlocked: true},
		} {
			require.Equal(t, http.StatusOK, doRequest(t, h, http.MethodPost, "/admin/unlock", req).Code)
		}

		status := decode[HintStatusResponse](t, doRequest(t, h, http.MethodGet, "/hints", nil))
		assert.False(t, status.Available)

		w := doRequest(t, h, http.MethodPost, "/hints", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgNoHintAvailable, decode[ErrorResponse](t, w).Error)
	})
}

func TestAdminHandlers(t *testing.T) {
	t.Run("Best Case: unlock a recipe", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))

		w := doRequest(t, h, http.MethodPost, "/admin/unlock", SetUnlockRequest{Kind: "recipe", ID: "make_stick", Unlocked: true})

		require.Equal(t, http.StatusOK, w.Code)
		recipe := decode[crafting.RecipeView](t, doRequest(t, h, http.MethodGet, "/recipes/make_stick", nil))
		assert.True(t, recipe.Unlocked)
	})

	t.Run("Error Case: unknown entity", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))

		w := doRequest(t, h, http.MethodPost, "/admin/unlock", SetUnlockRequest{Kind: "recipe", ID: "make_gold", Unlocked: true})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error Case: bad kind", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))

		w := doRequest(t, h, http.MethodPost, "/admin/unlock", SetUnlockRequest{Kind: "tip", ID: "drag"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[ValidationErrorResponse](t, w).Fields, "kind")
	})

	t.Run("Best Case: set hint flag", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))

		w := doRequest(t, h, http.MethodPost, "/admin/hint", SetHintRequest{ItemID: "torch", Hint: true})

		require.Equal(t, http.StatusOK, w.Code)
		item := decode[crafting.ItemView](t, doRequest(t, h, http.MethodGet, "/items/torch", nil))
		assert.True(t, item.HintGiven)
	})

	t.Run("Best Case: reset wipes progress and board", func(t *testing.T) {
		h := newTestRouter(newTestSession(t))
		doRequest(t, h, http.MethodPost, "/board/combine", CombineRequest{
			First: string(spawn(t, h, "wood", 0, 0)), Second: string(spawn(t, h, "stone", 0, 0)),
		})

		w := doRequest(t, h, http.MethodPost, "/admin/reset", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, MsgGameResetSuccess, decode[SuccessResponse](t, w).Message)

		stats := decode[crafting.Stats](t, doRequest(t, h, http.MethodGet, "/stats", nil))
		assert.Equal(t, 2, stats.UnlockedItems)
		assert.Equal(t, 0, stats.UnlockedRecipes)

		board := decode[session.BoardView](t, doRequest(t, h, http.MethodGet, "/board", nil))
		assert.Empty(t, board.Elements)
	})
}
