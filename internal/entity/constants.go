package entity

// Log messages
const (
	LogMsgItemNotFound      = "Craft item not found"
	LogMsgRecipeNotFound    = "Recipe not found"
	LogMsgUnknownKind       = "Unknown entity kind"
	LogMsgStoreLoaded       = "Entity store loaded"
	LogMsgStartingUnlock    = "Basic item unlocked at start"
	LogMsgEntitiesReset     = "All entities reset to defaults"
	LogMsgLoadOutcomeNotice = "Entity save not loaded from storage"
)
