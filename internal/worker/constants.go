package worker

import "time"

// ============================================================================
// Pool Defaults
// ============================================================================

const (
	DefaultWorkers   = 2
	DefaultQueueSize = 16
	UnnamedJob       = "unnamed"
)

// ============================================================================
// Job Names
// ============================================================================

const (
	JobNameAutosave     = "autosave"
	SchedulerWorkerName = "scheduler"
)

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job completed"
	LogMsgQueueFull       = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Scheduler
// ============================================================================

const (
	LogMsgScheduleRegistered     = "Schedule registered"
	LogMsgScheduleCancelled      = "Schedule cancelled"
	LogMsgScheduleFired          = "Schedule fired"
	LogMsgWorkerShuttingDown     = "Worker shutting down"
	LogMsgWorkerShutdownComplete = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout  = "Worker shutdown timed out"
	LogMsgAutosaveFailed         = "Autosave failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in the package tests
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
	TestWaitTimeout      = 2 * time.Second
	TestPollInterval     = 5 * time.Millisecond
	TestScheduleInterval = 10 * time.Millisecond
	TestShutdownTimeout  = time.Second
)
