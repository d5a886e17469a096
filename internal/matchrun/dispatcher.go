// Package matchrun makes matching fire-and-forget: the action that
// triggers a run never waits on it, and a run's failure is visible only
// in this package's logs and the match_requests table.
package matchrun

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

// Dispatcher executes queued tasks on a fixed set of workers. Submit
// never blocks the caller; a full queue is reported back instead.
type Dispatcher struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	logger  *zap.Logger

	closeOnce sync.Once
}

func NewDispatcher(workers, buffer int, logger *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		workers: workers,
		tasks:   make(chan Task, buffer),
		logger:  logger,
	}
}

// Submit queues a task without blocking. Reports false when the queue is
// full; the caller decides whether to retry or requeue elsewhere.
func (d *Dispatcher) Submit(t Task) bool {
	if d == nil || t == nil {
		return false
	}
	select {
	case d.tasks <- t:
		return true
	default:
		return false
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(d.workers)
	for i := 0; i < d.workers; i++ {
		go func() {
			defer d.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-d.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					t(ctx)
				}
			}
		}()
	}
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (d *Dispatcher) Stop() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() { close(d.tasks) })
	d.wg.Wait()
}
