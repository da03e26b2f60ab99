package bootstrap

import (
	"log/slog"

	"github.com/osse101/BrandishRPG_Go/internal/config"
	"github.com/osse101/BrandishRPG_Go/internal/duel"
	"github.com/osse101/BrandishRPG_Go/internal/event"
	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
	"github.com/osse101/BrandishRPG_Go/internal/scheduler"
	"github.com/osse101/BrandishRPG_Go/internal/worker"
)

// BackgroundJobs owns the worker pool and the scheduler feeding it
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs starts the worker pool, schedules the duel expiry
// sweep and the event log cleanup
func StartBackgroundJobs(cfg *config.Config, arena *duel.Arena, publisher *event.ResilientPublisher, events eventlog.Service) *BackgroundJobs {
	pool := worker.NewPool(cfg.WorkerCount, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, duel.NewExpiryJob(arena, publisher))
	if cfg.EventLogRetentionDays > 0 {
		sched.Schedule(cfg.EventLogCleanupEvery, eventlog.NewCleanupJob(events, cfg.EventLogRetentionDays))
	}

	slog.Info(LogMsgBackgroundJobsRunning,
		"workers", cfg.WorkerCount,
		"sweep_interval", cfg.SweepInterval,
		"event_retention_days", cfg.EventLogRetentionDays)

	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling before draining the workers
func (b *BackgroundJobs) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
