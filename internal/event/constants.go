package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Journal file configuration
const (
	// JournalSchemaVersion is the current version of the journal line format.
	// Increment this when changing the JournalEntry structure.
	JournalSchemaVersion = "1.0"

	// JournalFilePermissions is the file permission mode for journal files
	JournalFilePermissions = 0644
)

// Error messages
const (
	ErrMsgDecodePayloadFormat  = "decode payload as %T: %w"
	ErrMsgHandlersFailedFormat = "%d handlers failed for %s: %w"
)

// Log message constants
const (
	LogMsgJournalWriteFailed = "Failed to write event to journal"
)
