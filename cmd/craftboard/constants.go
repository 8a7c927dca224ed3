package main

import "time"

const (
	appName = "craftboard"

	// confirmYes is the value --confirm must carry for destructive commands
	confirmYes = "yes"

	shutdownTimeout = 10 * time.Second
)

// Flag names
const (
	flagCatalog  = "catalog"
	flagBackend  = "backend"
	flagSaveDir  = "save-dir"
	flagLogLevel = "log-level"
	flagJSON     = "json"
	flagKeyword  = "keyword"
	flagState    = "state"
	flagItem     = "item"
	flagX        = "x"
	flagY        = "y"
	flagConfirm  = "confirm"
	flagPort     = "port"
)

// Lock state filter values
const (
	stateAll      = "all"
	stateUnlocked = "unlocked"
	stateLocked   = "locked"
)

// Messages
const (
	msgCatalogValid     = "Catalog is valid: %d items, %d recipes, %d tips\n"
	msgGameReset        = "Game reset to its starting state"
	msgResetAborted     = "reset needs --confirm=yes"
	msgNothingToHint    = "Nothing left to hint"
	msgHintGiven        = "Hint: %s\n"
	msgNoMatch          = "Nothing happens."
	msgCrafted          = "Crafted %s via %s\n"
	msgNewlyUnlocked    = "Unlocked: %s\n"
	msgBoardEmpty       = "The board is empty"
	msgCleared          = "Cleared %d instance(s)\n"
	msgSpawned          = "Spawned %s as %s\n"
	msgServeStopping    = "Received shutdown signal"
	msgAutosaveDisabled = "Autosave disabled"
	msgCleanupDisabled  = "Event prune disabled"
	msgVersion          = "%s %s (%s) commit=%s\n"
	errMsgInvalidState  = "invalid --state %q: expected all, unlocked or locked"
	errMsgBadKeyword    = "unknown keyword %q"
	errMsgServerFailed  = "server failed"
)
