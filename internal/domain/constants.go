package domain

// Save document identifiers
const (
	BoardSaveID      = "board_save_state"
	SavePrefixItem   = "item"
	SavePrefixRecipe = "recipe"
)

// Host-facing notices
const (
	MsgAlreadyMade = "Already Made!"
)
