package domain

// RecipeRequirement is one ingredient entry of a recipe
type RecipeRequirement struct {
	ItemID string `json:"item" yaml:"item" validate:"required"`
	Count  int    `json:"count" yaml:"count" validate:"gt=0"`
}

// RecipeDefinition is the immutable catalog entry for a recipe.
// Ingredients form an unordered multiset; Products is never empty.
type RecipeDefinition struct {
	ID          string              `json:"id" yaml:"id" validate:"required,max=100"`
	Ingredients []RecipeRequirement `json:"ingredients" yaml:"ingredients" validate:"required,min=1,dive"`
	Products    []string            `json:"products" yaml:"products" validate:"required,min=1,dive,required"`
}

// ContainsIngredient reports whether itemID is required by the recipe
func (r RecipeDefinition) ContainsIngredient(itemID string) bool {
	for _, req := range r.Ingredients {
		if req.ItemID == itemID {
			return true
		}
	}
	return false
}

// ContainsProduct reports whether itemID is produced by the recipe
func (r RecipeDefinition) ContainsProduct(itemID string) bool {
	for _, p := range r.Products {
		if p == itemID {
			return true
		}
	}
	return false
}

// Satisfied reports whether the supplied ingredients exactly cover the
// requirement multiset. An ingredient the recipe does not list fails the match.
func (r RecipeDefinition) Satisfied(ingredients ...string) bool {
	remaining := make(map[string]int, len(r.Ingredients))
	for _, req := range r.Ingredients {
		remaining[req.ItemID] += req.Count
	}

	for _, id := range ingredients {
		if _, ok := remaining[id]; !ok {
			return false
		}
		remaining[id]--
	}

	for _, count := range remaining {
		if count > 0 {
			return false
		}
	}
	return true
}

// ReferencedItems returns every item id the recipe mentions, products first, without duplicates
func (r RecipeDefinition) ReferencedItems() []string {
	seen := make(map[string]bool, len(r.Products)+len(r.Ingredients))
	ids := make([]string, 0, len(r.Products)+len(r.Ingredients))
	for _, p := range r.Products {
		if !seen[p] {
			seen[p] = true
			ids = append(ids, p)
		}
	}
	for _, req := range r.Ingredients {
		if !seen[req.ItemID] {
			seen[req.ItemID] = true
			ids = append(ids, req.ItemID)
		}
	}
	return ids
}
