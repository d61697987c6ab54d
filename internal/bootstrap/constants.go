package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
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

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// =============================================================================
// Messages
// =============================================================================

const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStartingService            = "Starting slots service"
	LogMsgConfigLoaded               = "Configuration loaded"
	LogMsgDeleteOldLogFailed         = "Failed to delete old log file"
	LogMsgDeterministicEngine        = "Engine seeded, outcomes are reproducible"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Session stats handler registered"
	LogMsgRevealDriverSubscribed     = "Reveal driver subscribed"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgShuttingDownReveal         = "Stopping reveal driver"
	LogMsgRevealShutdownFailed       = "Reveal driver shutdown failed"
	LogMsgShuttingDownHub            = "Closing SSE streams"
	LogMsgHubShutdownFailed          = "SSE hub shutdown failed"
	LogMsgServerStopped              = "Server stopped"

	ErrMsgCreateLogDir    = "failed to create logs directory"
	ErrMsgOpenLogFile     = "failed to open log file"
	ErrMsgCreateEngine    = "failed to create slots engine"
	ErrMsgCreateLedger    = "failed to create ledger"
	ErrMsgRegisterMetrics = "failed to register metrics collector"
)
