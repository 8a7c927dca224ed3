package crafting

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/craftboard/internal/entity"
	"github.com/osse101/craftboard/internal/logger"
)

// ErrNoHintAvailable is returned when nothing can be hinted
var ErrNoHintAvailable = errors.New(ErrMsgNoHintsAvailable)

// Hint is a hint handed to the player
type Hint struct {
	ItemID  string `json:"item_id"`
	Message string `json:"message"`
}

// HasHintAvailable reports whether any item or recipe is still locked
func (r *Resolver) HasHintAvailable() bool {
	return len(r.ItemsByLockState(false)) > 0 || len(r.RecipesByLockState(false)) > 0
}

// LockedButBuildableItems returns locked items that some recipe could produce
// from unlocked ingredients
func (r *Resolver) LockedButBuildableItems(ctx context.Context) []*entity.Item {
	items := make([]*entity.Item, 0)
	for _, item := range r.ItemsByLockState(false) {
		for _, recipeID := range r.index.ProductRecipes(item.ID()) {
			if r.CanBuildRecipe(ctx, recipeID) {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// LockedButBuildableRecipes returns locked recipes whose ingredients are all unlocked
func (r *Resolver) LockedButBuildableRecipes(ctx context.Context) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0)
	for _, recipe := range r.RecipesByLockState(false) {
		if r.canBuild(ctx, recipe) {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// ItemHint picks a random locked but buildable item, or nil
func (r *Resolver) ItemHint(ctx context.Context) *entity.Item {
	items := r.LockedButBuildableItems(ctx)
	idx := r.randIndex(len(items))
	if idx < 0 {
		return nil
	}
	return items[idx]
}

// RecipeHint picks a random locked but buildable recipe, or nil
func (r *Resolver) RecipeHint(ctx context.Context) *entity.Recipe {
	recipes := r.LockedButBuildableRecipes(ctx)
	idx := r.randIndex(len(recipes))
	if idx < 0 {
		return nil
	}
	return recipes[idx]
}

// RequestHint flags a random buildable item as hinted and returns the player message
func (r *Resolver) RequestHint(ctx context.Context) (Hint, error) {
	item := r.ItemHint(ctx)
	if item == nil {
		return Hint{}, ErrNoHintAvailable
	}

	if err := r.SetHintState(ctx, item.ID(), true); err != nil {
		return Hint{}, err
	}
	r.publish(ctx, NewHintGivenEvent(item.ID()))
	logger.FromContext(ctx).Info(LogMsgHintGiven, "item_id", item.ID())

	return Hint{
		ItemID:  item.ID(),
		Message: fmt.Sprintf(HintMessageFmt, item.Definition().DisplayName),
	}, nil
}
