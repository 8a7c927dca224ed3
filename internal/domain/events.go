package domain

// Event type constants used by the session event bus and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.unlocked")
const (
	// EventTypeItemUnlocked is published when a craft item becomes unlocked through crafting
	EventTypeItemUnlocked = "item.unlocked"

	// EventTypeRecipeUnlocked is published the first time a recipe is crafted
	EventTypeRecipeUnlocked = "recipe.unlocked"

	// EventTypeRecipeAlreadyMade is published when two items combine into a recipe that is already unlocked
	EventTypeRecipeAlreadyMade = "recipe.already_made"

	// EventTypeCombinationInvalid is published when two items do not satisfy any recipe
	EventTypeCombinationInvalid = "combination.invalid"

	// EventTypeBoardRecycleStateChanged is published whenever the board moves between Clean and Undo
	EventTypeBoardRecycleStateChanged = "board.recycle_state_changed"

	// EventTypeHintGiven is published when the hint subsystem flags an item
	EventTypeHintGiven = "item.hint_given"

	// EventTypeGameReset is published after all progress has been wiped
	EventTypeGameReset = "game.reset"
)

// Metadata keys attached to events
const (
	MetadataKeySource   = "source"
	MetadataKeyItemID   = "item_id"
	MetadataKeyRecipeID = "recipe_id"
)
