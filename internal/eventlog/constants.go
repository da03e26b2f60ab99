package eventlog

// History limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Log messages - service events
const (
	LogMsgEventMarshalFailed = "Failed to encode event payload, skipping log"
	LogMsgFailedToLogEvent   = "Failed to log event to database"
	LogMsgEventLogged        = "Event logged to database"
)

const LogMsgEventsPruned = "Old events pruned"

// Error message format strings
const (
	ErrMsgHistoryFailed = "failed to load event history: %w"
)
