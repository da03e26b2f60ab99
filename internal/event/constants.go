package event

import "time"

// EventSchemaVersion is stamped on every event the services publish
const EventSchemaVersion = "1.0"

const (
	// RetryQueueBufferSize bounds the retry backlog; overflow goes straight to the dead-letter file
	RetryQueueBufferSize = 1000

	DeadLetterFilePermissions = 0o644

	// maxBackoffShift keeps the backoff multiplier from overflowing Duration
	maxBackoffShift = 16
)

const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event dead-lettered"

	ErrFmtHandlersFailed = "%d handlers failed for %s: %w"
)

// CalculateRetryDelay doubles baseDelay for each attempt after the first
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	shift := min(max(attempt-1, 0), maxBackoffShift)
	return baseDelay << shift
}
