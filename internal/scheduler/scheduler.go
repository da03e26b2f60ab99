// Package scheduler feeds jobs into a worker pool on fixed intervals.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
	"github.com/osse101/BrandishRPG_Go/internal/worker"
)

const LogMsgTickSkipped = "Scheduled job skipped, worker queue full"

// Enqueuer is the part of worker.Pool the scheduler needs
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

type Scheduler struct {
	pool   Enqueuer
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(pool Enqueuer) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{pool: pool, ctx: ctx, cancel: cancel}
}

// Schedule enqueues job every interval until Stop. A tick that finds the
// queue full is dropped; the next tick tries again.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	name := worker.NameOf(job)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if !s.pool.TryEnqueue(job) {
					metrics.JobsSkipped.WithLabelValues(name).Inc()
					logger.Warn(LogMsgTickSkipped, "job", name, "interval", interval)
				}
			case <-s.ctx.Done():
				return
			}
		}
	}()
}

// Stop ends every schedule and waits for the tickers to exit
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
