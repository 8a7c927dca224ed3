package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Crafting metric names
const (
	MetricNameCombineAttempts = "craft_combine_attempts_total"
	MetricNameUnlocks         = "craft_unlocks_total"
	MetricNameHintsGiven      = "craft_hints_given_total"
	MetricNameBoardActions    = "craft_board_actions_total"
	MetricNameGameResets      = "craft_game_resets_total"
)

// Persistence metric names
const (
	MetricNameSaveWrites   = "save_writes_total"
	MetricNameSaveFailures = "save_failures_total"
	MetricNameSaveCreated  = "save_defaults_created_total"
	MetricNameSaveCache    = "save_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Crafting metric help text
const (
	HelpTextCombineAttempts = "Total number of combine attempts by outcome"
	HelpTextUnlocks         = "Total number of entities unlocked by kind"
	HelpTextHintsGiven      = "Total number of hints given"
	HelpTextBoardActions    = "Total number of board recycle actions by resulting state"
	HelpTextGameResets      = "Total number of game resets"
)

// Persistence metric help text
const (
	HelpTextSaveWrites   = "Total number of save documents written"
	HelpTextSaveFailures = "Total number of failed save operations by operation"
	HelpTextSaveCreated  = "Total number of default save documents created on load"
	HelpTextSaveCache    = "Total number of save cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOutcome   = "outcome"
	LabelKind      = "kind"
	LabelState     = "state"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// ============================================================================
// Label Values
// ============================================================================

// Combine outcome label values
const (
	OutcomeCrafted     = "crafted"
	OutcomeAlreadyMade = "already_made"
	OutcomeNoMatch     = "no_match"
)

// Cache lookup label values
const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Save operation label values
const (
	OperationLoad   = "load"
	OperationSave   = "save"
	OperationDecode = "decode"
	OperationEncode = "encode"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
