package crafting

import (
	"context"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/entity"
)

// ItemView is the read model of an item handed to hosts
type ItemView struct {
	ID           string           `json:"id"`
	DisplayName  string           `json:"display_name"`
	Blurb        string           `json:"blurb,omitempty"`
	Sprite       string           `json:"sprite,omitempty"`
	Keywords     []domain.Keyword `json:"keywords"`
	Unlocked     bool             `json:"unlocked"`
	TimeUnlocked int64            `json:"time_unlocked,omitempty"`
	HintGiven    bool             `json:"hint_given"`
	Final        bool             `json:"final"`
	Depleted     bool             `json:"depleted"`
}

// RecipeView is the read model of a recipe handed to hosts
type RecipeView struct {
	ID           string                     `json:"id"`
	Ingredients  []domain.RecipeRequirement `json:"ingredients"`
	Products     []string                   `json:"products"`
	Unlocked     bool                       `json:"unlocked"`
	TimeUnlocked int64                      `json:"time_unlocked,omitempty"`
	Buildable    bool                       `json:"buildable"`
}

// ItemView builds the read model for one item
func (r *Resolver) ItemView(ctx context.Context, item *entity.Item) ItemView {
	def := item.Definition()
	return ItemView{
		ID:           def.ID,
		DisplayName:  def.DisplayName,
		Blurb:        def.Blurb,
		Sprite:       def.Sprite,
		Keywords:     item.Keywords(),
		Unlocked:     item.Unlocked(),
		TimeUnlocked: item.TimeUnlocked(),
		HintGiven:    item.HintGiven(),
		Final:        r.IsFinalItem(def.ID),
		Depleted:     item.HasKeyword(domain.KeywordDepleted),
	}
}

// RecipeView builds the read model for one recipe
func (r *Resolver) RecipeView(ctx context.Context, recipe *entity.Recipe) RecipeView {
	def := recipe.Definition()
	return RecipeView{
		ID:           def.ID,
		Ingredients:  def.Ingredients,
		Products:     def.Products,
		Unlocked:     recipe.Unlocked(),
		TimeUnlocked: recipe.TimeUnlocked(),
		Buildable:    r.canBuild(ctx, recipe),
	}
}

// ItemsWithKeyword returns every item carrying k, built-in or runtime, in catalog order
func (r *Resolver) ItemsWithKeyword(k domain.Keyword) []*entity.Item {
	items := make([]*entity.Item, 0)
	for _, item := range r.store.AllItems() {
		if item.HasKeyword(k) {
			items = append(items, item)
		}
	}
	return items
}

// ItemsByLockState returns every item whose unlock state equals unlocked
func (r *Resolver) ItemsByLockState(unlocked bool) []*entity.Item {
	items := make([]*entity.Item, 0)
	for _, item := range r.store.AllItems() {
		if item.Unlocked() == unlocked {
			items = append(items, item)
		}
	}
	return items
}

// RecipesByLockState returns every recipe whose unlock state equals unlocked
func (r *Resolver) RecipesByLockState(unlocked bool) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0)
	for _, recipe := range r.store.AllRecipes() {
		if recipe.Unlocked() == unlocked {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}

// RecipesProducing returns the recipes whose products include itemID
func (r *Resolver) RecipesProducing(ctx context.Context, itemID string) []*entity.Recipe {
	return r.recipes(ctx, r.index.ProductRecipes(itemID))
}

// RecipesUsing returns the recipes that take itemID as an ingredient
func (r *Resolver) RecipesUsing(ctx context.Context, itemID string) []*entity.Recipe {
	return r.recipes(ctx, r.index.IngredientRecipes(itemID))
}

func (r *Resolver) recipes(ctx context.Context, ids []string) []*entity.Recipe {
	recipes := make([]*entity.Recipe, 0, len(ids))
	for _, id := range ids {
		if recipe := r.store.GetRecipe(ctx, id); recipe != nil {
			recipes = append(recipes, recipe)
		}
	}
	return recipes
}
