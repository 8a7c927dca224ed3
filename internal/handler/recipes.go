package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/craftboard/internal/crafting"
)

// HandleListRecipes lists recipes, optionally filtered by lock state.
// Query: unlocked=true|false
func HandleListRecipes(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		unlocked, filterLock, ok := GetOptionalBoolParam(r, w, "unlocked")
		if !ok {
			return
		}

		var recipes []crafting.RecipeView
		if filterLock {
			recipes = game.RecipesByLockState(r.Context(), unlocked)
		} else {
			recipes = game.Recipes(r.Context())
		}
		respondJSON(w, http.StatusOK, nonNilRecipes(recipes))
	}
}

// HandleGetRecipe returns one recipe by id
func HandleGetRecipe(game Game) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipe, err := game.Recipe(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, "get recipe", err)
			return
		}
		respondJSON(w, http.StatusOK, recipe)
	}
}

func nonNilRecipes(recipes []crafting.RecipeView) []crafting.RecipeView {
	if recipes == nil {
		return []crafting.RecipeView{}
	}
	return recipes
}
