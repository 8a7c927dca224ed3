package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/crafting"
)

func itemIDs(items []crafting.ItemView) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func recipeIDs(recipes []crafting.RecipeView) []string {
	out := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		out = append(out, recipe.ID)
	}
	return out
}

func TestHandleListItems(t *testing.T) {
	h := newTestRouter(newTestSession(t))

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedIDs    []string
	}{
		{
			name:           "Best Case: all items in catalog order",
			path:           "/items",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"wood", "stone", "stick", "torch"},
		},
		{
			name:           "Best Case: unlocked only",
			path:           "/items?unlocked=true",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"wood", "stone"},
		},
		{
			name:           "Best Case: locked only",
			path:           "/items?unlocked=false",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"stick", "torch"},
		},
		{
			name:           "Best Case: keyword filter",
			path:           "/items?keyword=Basic",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"wood", "stone"},
		},
		{
			name:           "Edge Case: keyword and lock state combine",
			path:           "/items?keyword=Basic&unlocked=false",
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{},
		},
		{
			name:           "Error Case: unknown keyword",
			path:           "/items?keyword=Shiny",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Error Case: malformed bool",
			path:           "/items?unlocked=maybe",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, h, http.MethodGet, tt.path, nil)

			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedIDs != nil {
				assert.Equal(t, tt.expectedIDs, itemIDs(decode[[]crafting.ItemView](t, w)))
			}
		})
	}
}

func TestHandleGetItem(t *testing.T) {
	h := newTestRouter(newTestSession(t))

	t.Run("Best Case: item view", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/items/torch", nil)

		require.Equal(t, http.StatusOK, w.Code)
		item := decode[crafting.ItemView](t, w)
		assert.Equal(t, "Torch", item.DisplayName)
		assert.False(t, item.Unlocked)
		assert.True(t, item.Final)
	})

	t.Run("Error Case: unknown item", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/items/unobtainium", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Best Case: recipes around an item", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/items/stick/recipes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[ItemRecipesResponse](t, w)
		assert.Equal(t, "stick", resp.ItemID)
		assert.Equal(t, []string{"make_stick"}, recipeIDs(resp.Producing))
		assert.Equal(t, []string{"make_torch"}, recipeIDs(resp.Using))
	})

	t.Run("Edge Case: basic item has no producing recipe", func(t *testing.T) {
		resp := decode[ItemRecipesResponse](t, doRequest(t, h, http.MethodGet, "/items/stone/recipes", nil))
		assert.Empty(t, resp.Producing)
		assert.NotNil(t, resp.Producing)
	})

	t.Run("Error Case: recipes for unknown item", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/items/unobtainium/recipes", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleRecipes(t *testing.T) {
	h := newTestRouter(newTestSession(t))

	t.Run("Best Case: all recipes", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/recipes", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"make_stick", "make_torch"}, recipeIDs(decode[[]crafting.RecipeView](t, w)))
	})

	t.Run("Edge Case: nothing unlocked yet", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/recipes?unlocked=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Best Case: buildable flag", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/recipes/make_stick", nil)

		require.Equal(t, http.StatusOK, w.Code)
		recipe := decode[crafting.RecipeView](t, w)
		assert.True(t, recipe.Buildable)
		assert.False(t, recipe.Unlocked)
	})

	t.Run("Error Case: unknown recipe", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/recipes/make_gold", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, ErrMsgRecipeNotFoundError, decode[ErrorResponse](t, w).Error)
	})
}
