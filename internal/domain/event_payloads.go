package domain

// ItemUnlockedPayload is the event payload for item.unlocked events
type ItemUnlockedPayload struct {
	ItemID    string `json:"item_id"`
	RecipeID  string `json:"recipe_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// RecipeUnlockedPayload is the event payload for recipe.unlocked events
type RecipeUnlockedPayload struct {
	RecipeID  string   `json:"recipe_id"`
	Products  []string `json:"products"`
	Timestamp int64    `json:"timestamp"`
}

// RecipeAlreadyMadePayload is the event payload for recipe.already_made events.
// Message is the toast text the host shows.
type RecipeAlreadyMadePayload struct {
	RecipeID string   `json:"recipe_id"`
	Products []string `json:"products"`
	Message  string   `json:"message"`
}

// CombinationInvalidPayload is the event payload for combination.invalid events
type CombinationInvalidPayload struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// BoardRecycleStatePayload is the event payload for board.recycle_state_changed events
type BoardRecycleStatePayload struct {
	State   RecycleState `json:"state"`
	Cleared int          `json:"cleared"`
}

// HintGivenPayload is the event payload for item.hint_given events
type HintGivenPayload struct {
	ItemID string `json:"item_id"`
}

// GameResetPayload is the event payload for game.reset events
type GameResetPayload struct {
	Items     int   `json:"items"`
	Recipes   int   `json:"recipes"`
	Timestamp int64 `json:"timestamp"`
}
