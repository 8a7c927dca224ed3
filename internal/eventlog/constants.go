package eventlog

// Query limits
const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
)

// Log messages - service events
const (
	LogMsgEventPayloadNotMap = "Event payload could not be converted to a map, skipping log"
	LogMsgFailedToLogEvent   = "Failed to log event to database"
	LogMsgEventLogged        = "Event logged to database"
)

// PruneJobName names the prune job in worker logs
const PruneJobName = "event_prune"

// Log messages - prune job
const (
	LogMsgPruneSkipped   = "Event retention disabled, nothing pruned"
	LogMsgPruneFailed    = "Event log prune failed"
	LogMsgPruneCompleted = "Event log pruned"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retention_days"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "pruned"
)
