// Package tasks runs fire-and-forget work (such as outgoing emails) on a bounded worker pool.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"curateurs-backoffice/internal/ids"
	"curateurs-backoffice/internal/logger"
	"curateurs-backoffice/internal/metrics"
)

// Func is a unit of background work. The context carries the task timeout.
type Func func(ctx context.Context) error

type task struct {
	id   string
	kind string
	fn   Func
}

// Runner executes submitted tasks on a fixed number of workers over a bounded queue.
type Runner struct {
	timeout time.Duration

	queue  chan task
	wg     sync.WaitGroup
	closed bool
	mu     sync.RWMutex
}

// NewRunner starts workers goroutines reading from a queue of queueSize tasks.
func NewRunner(workers, queueSize int, timeout time.Duration) *Runner {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	r := &Runner{
		timeout: timeout,
		queue:   make(chan task, queueSize),
	}

	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

func (r *Runner) worker() {
	defer r.wg.Done()

	for t := range r.queue {
		r.run(t)
	}
}

func (r *Runner) run(t task) {
	log := logger.WithTaskID(t.id).With(slog.String("kind", t.kind))

	ctx := context.Background()
	var cancel context.CancelFunc
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	timer := metrics.NewTimer()
	metrics.StartTask(t.kind)

	err := safeCall(ctx, t.fn)
	metrics.EndTask(t.kind, err, timer.Seconds())

	if err != nil {
		log.Error("Background task failed", slog.String("error", err.Error()))
		return
	}
	log.Debug("Background task completed", slog.Float64("duration_seconds", timer.Seconds()))
}

func safeCall(ctx context.Context, fn Func) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	return fn(ctx)
}

// Submit queues fn without blocking. It returns false when the queue is full
// or the runner is closed; the task is then dropped and logged.
func (r *Runner) Submit(kind string, fn Func) bool {
	t := task{id: ids.New(), kind: kind, fn: fn}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		logger.Warn("Task dropped, runner closed", slog.String("task_id", t.id), slog.String("kind", kind))
		metrics.TaskSubmitted(kind, false)
		return false
	}

	select {
	case r.queue <- t:
		metrics.TaskSubmitted(kind, true)
		return true
	default:
		logger.Warn("Task dropped, queue full", slog.String("task_id", t.id), slog.String("kind", kind))
		metrics.TaskSubmitted(kind, false)
		return false
	}
}

// Close stops accepting tasks and waits for queued ones to finish.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}
