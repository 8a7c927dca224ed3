package save

// ==================== Log Messages ====================

// Load log messages
const (
	LogMsgSaveLoaded      = "Save loaded"
	LogMsgSaveCreated     = "Save missing, default written"
	LogMsgSaveCorrupt     = "Save payload corrupt, default written"
	LogMsgSaveLoadFailed  = "Save could not be read, using defaults"
	LogMsgPersistFailed   = "Failed to persist save"
	LogMsgPersistSkipped  = "Save unreadable, write skipped"
	LogMsgGameResetBegin  = "Game reset started"
	LogMsgGameResetFinish = "Game reset completed"
)

// ==================== Error Messages ====================

const (
	ErrMsgEncodeFmt = "encode %s: %w"
	ErrMsgWriteFmt  = "write %s: %w"
)
