package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the number of log files that triggers cleanup
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCraftboard  = "Starting craftboard"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage Backends
// =============================================================================

const (
	LogMsgBackendOpened         = "Storage backend opened"
	LogMsgBackendClosed         = "Storage backend closed"
	ErrMsgFailedOpenFileStore   = "failed to open file store"
	ErrMsgFailedOpenSQLite      = "failed to open sqlite database"
	ErrMsgFailedConnectDB       = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to migrate database"
	ErrMsgUnsupportedBackendFmt = "unsupported storage backend %q"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgFailedCreateJournalDir = "failed to create event journal directory"
	LogMsgFailedOpenJournal      = "failed to open event journal"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgLoadingCatalog    = "Loading catalog"
	ErrMsgFailedLoadCatalog = "failed to load catalog"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventJournalSubscribed     = "Event journal subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// =============================================================================
// Session
// =============================================================================

const (
	ErrMsgFailedStartSession = "failed to start game session"
	LogMsgSessionReady       = "Game session ready"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSchedulerFailed      = "Scheduler shutdown failed"
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgBackendCloseFailed   = "Storage backend close failed"
)
