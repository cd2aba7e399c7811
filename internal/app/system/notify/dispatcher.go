// internal/app/system/notify/dispatcher.go
package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/dalemusser/placementhub/internal/app/system/metrics"
	"github.com/dalemusser/placementhub/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher runs fire-and-forget tasks in their own goroutines, each with
// its own timeout detached from the request that started it. Failures are
// logged; callers never see them. Shutdown waits for in-flight tasks.
type Dispatcher struct {
	log *zap.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher that logs through logger.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{log: logger}
}

// Go starts fn in the background and returns the task id used in logs.
// After Shutdown has been called the task is dropped and "" is returned.
func (d *Dispatcher) Go(name string, fn func(ctx context.Context) error) string {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.log.Warn("dispatcher closed, task dropped", zap.String("task", name))
		return ""
	}
	d.wg.Add(1)
	d.mu.Unlock()

	id := uuid.NewString()
	metrics.NotificationsInFlight.Inc()

	go func() {
		defer d.wg.Done()
		defer metrics.NotificationsInFlight.Dec()

		ctx, cancel := context.WithTimeout(context.Background(), timeouts.Send())
		defer cancel()

		if err := d.run(ctx, fn); err != nil {
			d.log.Error("background task failed",
				zap.String("task", name),
				zap.String("task_id", id),
				zap.Error(err))
		}
	}()
	return id
}

func (d *Dispatcher) run(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return fn(ctx)
}

// Shutdown stops accepting tasks and waits for running ones to finish or
// for ctx to end, whichever comes first.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for background tasks: %w", ctx.Err())
	}
}
