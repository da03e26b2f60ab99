package bootstrap

import "time"

const (
	DirPermission     = 0o755
	LogFilePermission = 0o644
)

// Session log files are named session_<timestamp>.log so they sort by age
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount older sessions are kept next to the new one
	LogFileRetentionCount = 9
)

// Event publisher fallbacks for unset config
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// WorkerQueueSize bounds the jobs waiting for a worker
const WorkerQueueSize = 64

// Startup
const (
	LogMsgLoggingInitialized     = "Logging initialized"
	LogMsgStartingBrandishRPG    = "Starting BrandishRPG"
	LogMsgConfigurationLoaded    = "Configuration loaded"
	LogMsgEventSystemInitialized = "Event system initialized"
	LogMsgStoresInitialized      = "Stores initialized"
	LogMsgServicesInitialized    = "Services initialized"
	LogMsgBackgroundJobsRunning  = "Background jobs running"

	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	LogMsgEventObserved              = "Event observed"

	LogMsgUsingBuiltInTables  = "Using built-in set bonus tables"
	LogMsgSetTablesLoaded     = "Set bonus tables loaded"
	LogMsgSetTablesUnreadable = "Set bonus tables file unreadable, using built-in tables"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	LogMsgPoolMetricsUnavailable = "Database pool metrics not registered"
)

// Wrapped error prefixes
const (
	LogMsgFailedCreateLogsDir            = "failed to create logs directory"
	LogMsgFailedOpenLogFile              = "failed to open log file"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
	ErrMsgFailedLoadSetTables            = "failed to load set bonus tables"
)

// Shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher"
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs"
	LogMsgServerStopped              = "Server stopped"
	LogMsgClosingDatabase            = "Closing database pool"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
