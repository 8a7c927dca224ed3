package crafting

import (
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/utils"
)

// Stats summarises unlock progress
type Stats struct {
	TotalItems      int     `json:"total_items"`
	UnlockedItems   int     `json:"unlocked_items"`
	LockedItems     int     `json:"locked_items"`
	TotalRecipes    int     `json:"total_recipes"`
	UnlockedRecipes int     `json:"unlocked_recipes"`
	LockedRecipes   int     `json:"locked_recipes"`
	HintedItems     int     `json:"hinted_items"`
	DepletedItems   int     `json:"depleted_items"`
	FinalItems      int     `json:"final_items"`
	Completion      float64 `json:"completion_percent"`
}

// CountItemsWithKeyword counts items carrying k, built-in or runtime
func (r *Resolver) CountItemsWithKeyword(k domain.Keyword) int {
	return len(r.ItemsWithKeyword(k))
}

// Stats computes the current progress summary. Completion is the share of
// recipes unlocked.
func (r *Resolver) Stats() Stats {
	items := r.store.AllItems()
	recipes := r.store.AllRecipes()

	s := Stats{
		TotalItems:    len(items),
		TotalRecipes:  len(recipes),
		HintedItems:   r.CountItemsWithKeyword(domain.KeywordHint),
		DepletedItems: r.CountItemsWithKeyword(domain.KeywordDepleted),
	}
	for _, item := range items {
		if item.Unlocked() {
			s.UnlockedItems++
		}
		if r.IsFinalItem(item.ID()) {
			s.FinalItems++
		}
	}
	for _, recipe := range recipes {
		if recipe.Unlocked() {
			s.UnlockedRecipes++
		}
	}
	s.LockedItems = s.TotalItems - s.UnlockedItems
	s.LockedRecipes = s.TotalRecipes - s.UnlockedRecipes
	s.Completion = utils.Percent(s.UnlockedRecipes, s.TotalRecipes)
	return s
}
