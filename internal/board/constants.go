package board

// ==================== Log Messages ====================

const (
	LogMsgBoardLoaded        = "Board loaded"
	LogMsgBoardRestored      = "Board restored"
	LogMsgRestoreSkipped     = "Skipping board element on restore"
	LogMsgElementTracked     = "Board element tracked"
	LogMsgElementUntracked   = "Board element untracked"
	LogMsgElementPruned      = "Pruned board element with no live instance"
	LogMsgMassCleared        = "Board mass cleared"
	LogMsgUndone             = "Board mass clear undone"
	LogMsgUndoDiscarded      = "Undo buffer discarded"
	LogMsgUnusableRecycled   = "Recycled unusable board elements"
	LogMsgBoardReset         = "Board reset"
	LogMsgStatePublishFailed = "Failed to publish board state event"
)
