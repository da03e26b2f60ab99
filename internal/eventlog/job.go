package eventlog

import (
	"context"
	"fmt"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// CleanupJobName labels the cleanup in logs and metrics
const CleanupJobName = "event_log_cleanup"

// CleanupJob deletes entries older than its retention window. A window of
// zero days or less keeps everything.
type CleanupJob struct {
	events        Service
	retentionDays int
}

func NewCleanupJob(events Service, retentionDays int) *CleanupJob {
	return &CleanupJob{events: events, retentionDays: retentionDays}
}

func (j *CleanupJob) Name() string { return CleanupJobName }

func (j *CleanupJob) Process(ctx context.Context) error {
	if j.retentionDays <= 0 {
		return nil
	}

	deleted, err := j.events.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		return fmt.Errorf("prune events older than %d days: %w", j.retentionDays, err)
	}
	if deleted > 0 {
		logger.FromContext(ctx).Info(LogMsgEventsPruned, "deleted", deleted, "retention_days", j.retentionDays)
	}
	return nil
}
