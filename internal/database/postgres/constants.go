package postgres

// Migration settings
const (
	// MigrationsDir is the directory inside the embedded migration FS
	MigrationsDir = "migrations"

	// GooseDialect is the goose dialect name for PostgreSQL
	GooseDialect = "postgres"
)

// SQL statements
const (
	sqlLoadSave = `SELECT payload FROM save_documents WHERE save_id = $1`

	sqlUpsertSave = `INSERT INTO save_documents (save_id, payload, created_at, updated_at)
VALUES ($1, $2, NOW(), NOW())
ON CONFLICT (save_id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()`

	sqlDeleteSave = `DELETE FROM save_documents WHERE save_id = $1`

	sqlListSaves = `SELECT save_id, octet_length(payload::text), updated_at FROM save_documents ORDER BY save_id`

	sqlInsertEvent = `INSERT INTO events (event_type, payload, metadata) VALUES ($1, $2, $3)`

	sqlRecentEvents = `SELECT id, event_type, payload, metadata, created_at FROM events
ORDER BY created_at DESC, id DESC LIMIT $1`

	sqlRecentEventsByType = `SELECT id, event_type, payload, metadata, created_at FROM events
WHERE event_type = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	sqlCleanupEvents = `DELETE FROM events WHERE created_at < NOW() - make_interval(days => $1)`
)

// Error Messages
const (
	ErrMsgFailedToLoadSave     = "failed to load save %s"
	ErrMsgFailedToUpsertSave   = "failed to upsert save %s"
	ErrMsgFailedToDeleteSave   = "failed to delete save %s"
	ErrMsgFailedToListSaves    = "failed to list saves"
	ErrMsgFailedToScanSave     = "failed to scan save row"
	ErrMsgFailedToSetDialect   = "failed to set migration dialect"
	ErrMsgFailedToMigrate      = "failed to apply migrations"
	ErrMsgFailedToEncodeEvent  = "failed to encode event"
	ErrMsgFailedToInsertEvent  = "failed to insert event"
	ErrMsgFailedToQueryEvents  = "failed to query events"
	ErrMsgFailedToScanEvent    = "failed to scan event row"
	ErrMsgFailedToDecodeEvent  = "failed to decode event"
	ErrMsgFailedToCleanupEvent = "failed to cleanup events"
)

// Log Messages
const (
	LogMsgMigrationsApplied = "Database migrations applied"
)
