package sqlite

// Connection settings
const (
	// MemoryPath opens a private in-memory database
	MemoryPath = ":memory:"
)

// Table names
const (
	TableSaveDocuments = "save_documents"
	TableEvents        = "events"
)

// Error Messages
const (
	ErrMsgFailedToOpen         = "failed to open sqlite database"
	ErrMsgFailedToGetDB        = "failed to get underlying db"
	ErrMsgFailedToMigrate      = "failed to auto-migrate sqlite database"
	ErrMsgFailedToLoadSave     = "failed to load save %s"
	ErrMsgFailedToUpsertSave   = "failed to upsert save %s"
	ErrMsgFailedToDeleteSave   = "failed to delete save %s"
	ErrMsgFailedToListSaves    = "failed to list saves"
	ErrMsgFailedToEncodeEvent  = "failed to encode event"
	ErrMsgFailedToInsertEvent  = "failed to insert event"
	ErrMsgFailedToQueryEvents  = "failed to query events"
	ErrMsgFailedToDecodeEvent  = "failed to decode event"
	ErrMsgFailedToCleanupEvent = "failed to cleanup events"
)

// Log Messages
const (
	LogMsgOpened = "SQLite database opened"
)
