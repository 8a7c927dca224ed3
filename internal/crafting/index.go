package crafting

import "github.com/osse101/craftboard/internal/domain"

// RecipeIndex maps item ids to the recipes that produce them and the recipes
// that consume them. It is built once and never modified.
type RecipeIndex struct {
	productOf    map[string][]string
	ingredientOf map[string][]string
}

// BuildFrom indexes recipes. Buckets keep catalog order and hold each recipe
// at most once, even when a recipe lists the same item twice.
func BuildFrom(recipes []domain.RecipeDefinition) *RecipeIndex {
	idx := &RecipeIndex{
		productOf:    make(map[string][]string),
		ingredientOf: make(map[string][]string),
	}

	for _, recipe := range recipes {
		for _, product := range recipe.Products {
			idx.productOf[product] = appendOnce(idx.productOf[product], recipe.ID)
		}
		for _, req := range recipe.Ingredients {
			idx.ingredientOf[req.ItemID] = appendOnce(idx.ingredientOf[req.ItemID], recipe.ID)
		}
	}
	return idx
}

// recipes are visited in order, so a duplicate can only be the last entry
func appendOnce(bucket []string, recipeID string) []string {
	if n := len(bucket); n > 0 && bucket[n-1] == recipeID {
		return bucket
	}
	return append(bucket, recipeID)
}

// ProductRecipes returns the ids of recipes that produce itemID. The slice must not be modified.
func (x *RecipeIndex) ProductRecipes(itemID string) []string {
	if ids, ok := x.productOf[itemID]; ok {
		return ids
	}
	return []string{}
}

// IngredientRecipes returns the ids of recipes that consume itemID. The slice must not be modified.
func (x *RecipeIndex) IngredientRecipes(itemID string) []string {
	if ids, ok := x.ingredientOf[itemID]; ok {
		return ids
	}
	return []string{}
}
