package crafting

// ==================== Resolver Settings ====================

// DefaultPairCacheSize is the number of ingredient pairs whose resolution is memoised
const DefaultPairCacheSize = 1024

// ==================== Hint Text ====================

// HintMessageFmt is shown to the player with the hinted item's display name
const HintMessageFmt = "%s... \nYou can create this item with what you already have unlocked."

// ==================== Error Messages ====================

const (
	ErrMsgPairCacheFmt     = "failed to create pair cache: %w"
	ErrMsgItemNotFoundFmt  = "%w: %s"
	ErrMsgNoHintsAvailable = "no hint available"
)

// ==================== Log Messages ====================

const (
	LogMsgCombineNoMatch     = "Combination has no recipe"
	LogMsgCombineAlreadyMade = "Recipe already made"
	LogMsgCombineCrafted     = "Recipe crafted"
	LogMsgItemUnlocked       = "Item unlocked"
	LogMsgPublishFailed      = "Failed to publish event"
	LogMsgDepletionRefreshed = "Depletion refreshed"
	LogMsgHintGiven          = "Hint given"
	LogMsgStartingValues     = "Starting values applied"
)
