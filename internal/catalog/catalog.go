package catalog

import (
	"fmt"

	"github.com/osse101/craftboard/internal/domain"
)

// Document is the on-disk shape of a catalog
type Document struct {
	Version string                    `json:"version,omitempty" yaml:"version,omitempty"`
	Items   []domain.ItemDefinition   `json:"items" yaml:"items" validate:"dive"`
	Recipes []domain.RecipeDefinition `json:"recipes" yaml:"recipes" validate:"dive"`
	Tips    []domain.GameTip          `json:"tips,omitempty" yaml:"tips,omitempty" validate:"dive"`
}

// Catalog holds the immutable item and recipe definitions of a game.
// Slices returned by accessors must not be modified.
type Catalog struct {
	items   []domain.ItemDefinition
	recipes []domain.RecipeDefinition
	tips    []domain.GameTip

	itemIndex   map[string]int
	recipeIndex map[string]int
}

// New builds a Catalog from a document, rejecting duplicate ids and dangling item references
func New(doc Document) (*Catalog, error) {
	c := &Catalog{
		items:       doc.Items,
		recipes:     doc.Recipes,
		tips:        doc.Tips,
		itemIndex:   make(map[string]int, len(doc.Items)),
		recipeIndex: make(map[string]int, len(doc.Recipes)),
	}

	for i, item := range doc.Items {
		if _, dup := c.itemIndex[item.ID]; dup {
			return nil, fmt.Errorf("%w: %w: "+ErrMsgDuplicateItemFmt, domain.ErrDataLoad, domain.ErrDuplicateID, item.ID)
		}
		c.itemIndex[item.ID] = i
	}

	for i, recipe := range doc.Recipes {
		if _, dup := c.recipeIndex[recipe.ID]; dup {
			return nil, fmt.Errorf("%w: %w: "+ErrMsgDuplicateRecipeFmt, domain.ErrDataLoad, domain.ErrDuplicateID, recipe.ID)
		}
		c.recipeIndex[recipe.ID] = i

		for j, req := range recipe.Ingredients {
			if _, ok := c.itemIndex[req.ItemID]; !ok {
				return nil, fmt.Errorf("%w: %w: "+ErrMsgIngredientRefFmt, domain.ErrDataLoad, domain.ErrInvalidItemRef, recipe.ID, j, req.ItemID)
			}
		}
		for j, product := range recipe.Products {
			if _, ok := c.itemIndex[product]; !ok {
				return nil, fmt.Errorf("%w: %w: "+ErrMsgProductRefFmt, domain.ErrDataLoad, domain.ErrInvalidItemRef, recipe.ID, j, product)
			}
		}
	}

	tipIDs := make(map[string]bool, len(doc.Tips))
	for _, tip := range doc.Tips {
		if tipIDs[tip.ID] {
			return nil, fmt.Errorf("%w: %w: "+ErrMsgDuplicateTipFmt, domain.ErrDataLoad, domain.ErrDuplicateID, tip.ID)
		}
		tipIDs[tip.ID] = true
	}

	return c, nil
}

// Items returns every item definition in catalog order
func (c *Catalog) Items() []domain.ItemDefinition {
	return c.items
}

// Recipes returns every recipe definition in catalog order
func (c *Catalog) Recipes() []domain.RecipeDefinition {
	return c.recipes
}

// Tips returns every game tip in catalog order
func (c *Catalog) Tips() []domain.GameTip {
	return c.tips
}

// DefaultTips returns the tips flagged as default
func (c *Catalog) DefaultTips() []domain.GameTip {
	var tips []domain.GameTip
	for _, tip := range c.tips {
		if tip.Default {
			tips = append(tips, tip)
		}
	}
	return tips
}

// Item looks up an item definition by id
func (c *Catalog) Item(id string) (domain.ItemDefinition, bool) {
	i, ok := c.itemIndex[id]
	if !ok {
		return domain.ItemDefinition{}, false
	}
	return c.items[i], true
}

// Recipe looks up a recipe definition by id
func (c *Catalog) Recipe(id string) (domain.RecipeDefinition, bool) {
	i, ok := c.recipeIndex[id]
	if !ok {
		return domain.RecipeDefinition{}, false
	}
	return c.recipes[i], true
}
