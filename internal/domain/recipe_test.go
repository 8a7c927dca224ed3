package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeDefinition_Satisfied(t *testing.T) {
	stick := RecipeDefinition{
		ID:          "make_stick",
		Ingredients: []RecipeRequirement{{ItemID: "wood", Count: 1}, {ItemID: "stone", Count: 1}},
		Products:    []string{"stick"},
	}
	plank := RecipeDefinition{
		ID:          "make_plank",
		Ingredients: []RecipeRequirement{{ItemID: "wood", Count: 2}},
		Products:    []string{"plank"},
	}

	tests := []struct {
		name   string
		recipe RecipeDefinition
		a, b   string
		want   bool
	}{
		{"Best Case: exact pair", stick, "wood", "stone", true},
		{"Best Case: reversed pair", stick, "stone", "wood", true},
		{"Best Case: doubled ingredient", plank, "wood", "wood", true},
		{"Error Case: foreign ingredient", stick, "wood", "water", false},
		{"Error Case: duplicate where two kinds are required", stick, "wood", "wood", false},
		{"Error Case: one of a doubled ingredient is short", plank, "wood", "stone", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.recipe.Satisfied(tt.a, tt.b))
			assert.Equal(t, tt.recipe.Satisfied(tt.a, tt.b), tt.recipe.Satisfied(tt.b, tt.a))
		})
	}

	t.Run("Edge Case: surplus of a required item still satisfies", func(t *testing.T) {
		single := RecipeDefinition{Ingredients: []RecipeRequirement{{ItemID: "wood", Count: 1}}}
		assert.True(t, single.Satisfied("wood", "wood"))
	})
}

func TestRecipeDefinition_Contains(t *testing.T) {
	r := RecipeDefinition{
		Ingredients: []RecipeRequirement{{ItemID: "wood", Count: 1}, {ItemID: "stone", Count: 1}},
		Products:    []string{"stick", "wood"},
	}

	assert.True(t, r.ContainsIngredient("stone"))
	assert.False(t, r.ContainsIngredient("stick"))
	assert.True(t, r.ContainsProduct("stick"))
	assert.Equal(t, []string{"stick", "wood", "stone"}, r.ReferencedItems())
}

func TestEntityKind(t *testing.T) {
	assert.Equal(t, "item", KindCraftItem.String())
	assert.Equal(t, "recipe", KindCraftRecipe.String())
	assert.Equal(t, "unknown", EntityKind(0).String())
	assert.Equal(t, "item_wood", SaveID(KindCraftItem, "wood"))
	assert.Equal(t, "recipe_make_stick", SaveID(KindCraftRecipe, "make_stick"))
	assert.Equal(t, "raw", SaveID(EntityKind(9), "raw"))
}

func TestParseKeyword(t *testing.T) {
	k, ok := ParseKeyword("Basic")
	assert.True(t, ok)
	assert.Equal(t, KeywordBasic, k)

	_, ok = ParseKeyword("basic")
	assert.False(t, ok)
}
