package entity

import (
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/save"
)

// Recipe is the runtime state of one recipe
type Recipe struct {
	def    domain.RecipeDefinition
	record save.Record
	saveID string
}

func newRecipe(def domain.RecipeDefinition) *Recipe {
	return &Recipe{
		def:    def,
		saveID: domain.SaveID(domain.KindCraftRecipe, def.ID),
	}
}

// ID returns the catalog id
func (r *Recipe) ID() string { return r.def.ID }

// Definition returns the immutable catalog entry
func (r *Recipe) Definition() domain.RecipeDefinition { return r.def }

// SaveID returns the id the recipe is persisted under
func (r *Recipe) SaveID() string { return r.saveID }

// Record returns a copy of the persisted state
func (r *Recipe) Record() save.Record { return r.record }

// Unlocked reports whether the recipe has been crafted at least once
func (r *Recipe) Unlocked() bool { return r.record.Unlocked }

// TimeUnlocked returns the unlock time in milliseconds, zero while locked
func (r *Recipe) TimeUnlocked() int64 { return r.record.TimeUnlocked }

// Ref refers to exactly one of an item or a recipe, selected by Kind
type Ref struct {
	Kind   domain.EntityKind
	Item   *Item
	Recipe *Recipe
}

// ID returns the referenced entity's id
func (r Ref) ID() string {
	switch r.Kind {
	case domain.KindCraftItem:
		return r.Item.ID()
	case domain.KindCraftRecipe:
		return r.Recipe.ID()
	default:
		return ""
	}
}

// Unlocked reports the referenced entity's unlock state
func (r Ref) Unlocked() bool {
	switch r.Kind {
	case domain.KindCraftItem:
		return r.Item.Unlocked()
	case domain.KindCraftRecipe:
		return r.Recipe.Unlocked()
	default:
		return false
	}
}

// SaveID returns the referenced entity's save id
func (r Ref) SaveID() string {
	switch r.Kind {
	case domain.KindCraftItem:
		return r.Item.SaveID()
	case domain.KindCraftRecipe:
		return r.Recipe.SaveID()
	default:
		return ""
	}
}
