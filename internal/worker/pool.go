package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/BrandishRPG_Go/internal/logger"
	"github.com/osse101/BrandishRPG_Go/internal/metrics"
)

// ErrPoolStopped is returned by Enqueue once Stop has been called
var ErrPoolStopped = errors.New("worker pool stopped")

// Job is a unit of background work
type Job interface {
	Process(ctx context.Context) error
}

// Named jobs report a stable name for logs and metrics
type Named interface {
	Name() string
}

// NameOf returns job's Name, or its type name
func NameOf(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", job)
}

// Pool runs queued jobs on a fixed set of goroutines. Stop cancels the
// context handed to running jobs; queued jobs that never started are dropped.
type Pool struct {
	workers int
	timeout time.Duration
	jobs    chan Job

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool creates a pool with at least one worker
func NewPool(workers, queueSize int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: max(workers, 1),
		timeout: DefaultJobTimeout,
		jobs:    make(chan Job, max(queueSize, 0)),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for range p.workers {
		p.wg.Add(1)
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobs:
			p.run(job)
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) run(job Job) {
	name := NameOf(job)
	ctx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	log := logger.FromContext(ctx)
	start := time.Now()

	outcome := metrics.OutcomeCompleted
	defer func() {
		if r := recover(); r != nil {
			outcome = metrics.OutcomePanicked
			log.Error(LogMsgJobPanicked, "job", name, "panic", r)
		}
		metrics.JobRuns.WithLabelValues(name, outcome).Inc()
		metrics.JobDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}()

	if err := job.Process(ctx); err != nil {
		outcome = metrics.OutcomeFailed
		log.Error(LogMsgJobFailed, "job", name, "error", err)
	}
}

// Enqueue waits for queue space until ctx ends or the pool stops
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	if p.ctx.Err() != nil {
		return ErrPoolStopped
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return ErrPoolStopped
	}
}

// TryEnqueue queues job without waiting. It reports false when the queue is
// full or the pool has stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop cancels running jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.cancel()
	p.wg.Wait()
}
