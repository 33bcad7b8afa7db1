package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys and values
const (
	MetadataSource  = "source"
	SourcePlayer    = "player"
	SourceCountdown = "countdown"
)

// Retry configuration defaults
const (
	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	// DeadLetterSchemaVersion is the version of the dead-letter line format
	DeadLetterSchemaVersion = "1.0"

	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0o644
)

// Log message constants
const (
	LogMsgPublishFailedRetrying = "Event publish failed, retrying in background"
	LogMsgRetrySucceeded        = "Event retry succeeded"
	LogMsgRetryFailed           = "Event retry failed"
	LogMsgDeadLettered          = "Event dead-lettered"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns baseDelay doubled for each attempt after the first.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return baseDelay * time.Duration(1<<(attempt-1))
}
