package crafting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/craftboard/internal/domain"
)

func TestStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{DepletionEnabled: true})

	assert.Equal(t, Stats{
		TotalItems:    7,
		UnlockedItems: 3,
		LockedItems:   4,
		TotalRecipes:  4,
		LockedRecipes: 4,
		FinalItems:    3,
	}, f.resolver.Stats())

	f.resolver.AttemptCombine(ctx, "water", "stone", origin, &fakeSpawner{})

	stats := f.resolver.Stats()
	assert.Equal(t, 4, stats.UnlockedItems)
	assert.Equal(t, 1, stats.UnlockedRecipes)
	assert.Equal(t, 3, stats.LockedRecipes)
	assert.Equal(t, 1, stats.DepletedItems)
	assert.Equal(t, 25.0, stats.Completion)
}

func TestCountItemsWithKeyword(t *testing.T) {
	f := newFixture(t, Options{})
	assert.Equal(t, 3, f.resolver.CountItemsWithKeyword(domain.KeywordBasic))
	assert.Equal(t, 0, f.resolver.CountItemsWithKeyword(domain.KeywordHint))
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	assert.Equal(t, []string{"wood", "stone", "water"}, ids(f.resolver.ItemsByLockState(true)))
	assert.Equal(t, []string{"stick", "plank", "mud", "torch"}, ids(f.resolver.ItemsByLockState(false)))
	assert.Empty(t, f.resolver.RecipesByLockState(true))
	assert.Equal(t, []string{"wood", "stone", "water"}, ids(f.resolver.ItemsWithKeyword(domain.KeywordBasic)))
	assert.Equal(t, []string{"make_stick", "make_plank"}, ids(f.resolver.RecipesProducing(ctx, "stick")))
	assert.Equal(t, []string{"make_torch"}, ids(f.resolver.RecipesUsing(ctx, "stick")))

	view := f.resolver.ItemView(ctx, f.store.GetItem(ctx, "torch"))
	assert.Equal(t, "Torch", view.DisplayName)
	assert.True(t, view.Final)
	assert.False(t, view.Unlocked)

	recipeView := f.resolver.RecipeView(ctx, f.store.GetRecipe(ctx, "make_torch"))
	assert.False(t, recipeView.Buildable)
	assert.Equal(t, []string{"torch"}, recipeView.Products)
}
