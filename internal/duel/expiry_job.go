package duel

import (
	"context"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/logger"
)

// ExpiryJob sweeps expired challenges out of the arena. It is meant to be
// scheduled on a worker pool.
type ExpiryJob struct {
	arena     *Arena
	publisher EventPublisher
	now       func() time.Time
}

// NewExpiryJob creates a sweep job for arena
func NewExpiryJob(arena *Arena, publisher EventPublisher) *ExpiryJob {
	return &ExpiryJob{arena: arena, publisher: publisher, now: time.Now}
}

// ExpiryJobName labels the sweep in logs and metrics
const ExpiryJobName = "duel_expiry"

func (j *ExpiryJob) Name() string { return ExpiryJobName }

// Process implements worker.Job
func (j *ExpiryJob) Process(ctx context.Context) error {
	expired := j.arena.Sweep(j.now())
	if len(expired) == 0 {
		return nil
	}

	for i := range expired {
		if j.publisher != nil {
			j.publisher.PublishWithRetry(ctx, event.NewChallengeExpiredEvent(&expired[i]))
		}
	}
	logger.FromContext(ctx).Info(LogMsgChallengesExpired, "count", len(expired))
	return nil
}
