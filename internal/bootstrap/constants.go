package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSwordForge  = "Starting SwordForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog and Forge
// =============================================================================

const (
	LogMsgLoadingCatalog = "Loading forge catalog..."
	LogMsgCatalogLoaded  = "Forge catalog loaded"
	LogMsgForgeReady     = "Forge service initialized"

	ErrMsgFailedLoadCatalog        = "failed to load forge catalog"
	ErrMsgFailedCreateRedistrib    = "failed to create odds redistributor"
	ErrMsgFailedCreateLedger       = "failed to create upgrade ledger"
	ErrMsgFailedCreateForgeService = "failed to create forge service"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventAuditRegistered       = "Event audit log registered"
	LogMsgEventStreamStarted         = "Event stream hub started"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingEventStreams        = "Closing event streams..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"

	ServiceNameForge = "forge"

	// Prepended with the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
