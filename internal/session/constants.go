package session

// ==================== Error Messages ====================

const (
	ErrMsgMissingDependencyFmt = "%w: session requires a %s"
	ErrMsgItemLockedFmt        = "%w: item %s is locked"
	ErrMsgSameHandle           = "cannot combine an instance with itself"
	ErrMsgHandleFmt            = "%w: %s"
	ErrMsgHostCannotMove       = "host does not support moving instances"
)

// ==================== Log Messages ====================

const (
	LogMsgSessionStarted     = "Session started"
	LogMsgRestoreUnknownItem = "Dropping unknown item from saved board"
	LogMsgInstanceSpawned    = "Instance spawned"
	LogMsgInstanceRemoved    = "Instance removed"
	LogMsgCombineResolved    = "Combination resolved"
	LogMsgGameResetPublished = "Game reset complete"
	LogMsgResetPublishFailed = "Failed to publish game reset event"
)
