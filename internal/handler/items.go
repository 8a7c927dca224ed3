package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
)

// ItemRecipesResponse lists the recipes around one item
type ItemRecipesResponse struct {
	ItemID    string                `json:"item_id"`
	Producing []crafting.RecipeView `json:"producing"`
	Using     []crafting.RecipeView `json:"using"`
}

// HandleListItems lists items, optionally filtered by keyword or lock state.
// Query: keyword=Basic|Hint|Depleted, unlocked=true|false
func HandleListItems(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		unlocked, filterLock, ok := GetOptionalBoolParam(r, w, "unlocked")
		if !ok {
			return
		}

		var items []crafting.ItemView
		if raw := r.URL.Query().Get("keyword"); raw != "" {
			k, known := domain.ParseKeyword(raw)
			if !known {
				respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidKeyword, raw))
				return
			}
			items = game.ItemsWithKeyword(ctx, k)
			if filterLock {
				items = filterItems(items, unlocked)
			}
		} else if filterLock {
			items = game.ItemsByLockState(ctx, unlocked)
		} else {
			items = game.Items(ctx)
		}

		if items == nil {
			items = []crafting.ItemView{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleGetItem returns one item by id
func HandleGetItem(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := game.Item(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "get item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleGetItemRecipes returns the recipes producing and using an item
func HandleGetItemRecipes(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		producing, using, err := game.RecipesForItem(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "item recipes", err)
			return
		}
		respondJSON(w, http.StatusOK, ItemRecipesResponse{
			ItemID:    id,
			Producing: nonNilRecipes(producing),
			Using:     nonNilRecipes(using),
		})
	}
}

func filterItems(items []crafting.ItemView, unlocked bool) []crafting.ItemView {
	out := make([]crafting.ItemView, 0, len(items))
	for _, item := range items {
		if item.Unlocked == unlocked {
			out = append(out, item)
		}
	}
	return out
}
