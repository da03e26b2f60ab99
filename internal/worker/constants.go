package worker

import "time"

// DefaultJobTimeout bounds a single Process call
const DefaultJobTimeout = time.Minute

const (
	LogMsgJobFailed   = "Background job failed"
	LogMsgJobPanicked = "Background job panicked"
)
