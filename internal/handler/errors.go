package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidKeyword    = "Unknown keyword '%s'. Valid options: Basic, Hint, Depleted"

	// Board error messages
	ErrMsgSpawnFailed   = "Failed to spawn item"
	ErrMsgMoveFailed    = "Failed to move item"
	ErrMsgRemoveFailed  = "Failed to remove item"
	ErrMsgCombineFailed = "Failed to combine items"

	// Progress error messages
	ErrMsgSetUnlockFailed = "Failed to set unlock state"
	ErrMsgSetHintFailed   = "Failed to set hint state"
	ErrMsgNoHintAvailable = "Nothing left to hint"

	// Event log error messages
	ErrMsgGetEventsFailed = "Failed to retrieve events"
	ErrMsgInvalidLimit    = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgGameResetSuccess   = "Game reset successfully"
	MsgUnlockStateUpdated = "Unlock state updated"
	MsgHintStateUpdated   = "Hint state updated"
	MsgInstanceRemoved    = "Item removed from board"
	MsgNothingToRecycle   = "Nothing to recycle"
)

// Recycle actions accepted by the board recycle endpoint
const (
	RecycleActionToggle   = "toggle"
	RecycleActionClear    = "clear"
	RecycleActionUndo     = "undo"
	RecycleActionUnusable = "unusable"
)

// Log messages
const (
	LogMsgRequestDecodeFailed = "Failed to decode request"
	LogMsgRequestDecoded      = "Request decoded"
	LogMsgMissingQueryParam   = "Missing query parameter"
	LogMsgServiceError        = "Service call failed"
	LogMsgEncodeFailed        = "Failed to encode JSON response"
	LogMsgWriteFailed         = "Failed to write response buffer"
	LogMsgReadinessFailed     = "Readiness check failed"
	LogMsgCombineRequest      = "Combine request received"
	LogMsgRecycleRequest      = "Recycle request received"
	LogMsgGameResetRequested  = "Game reset requested"
)
