package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/craftboard/internal/logger"
)

// BaseWorker provides timer bookkeeping and graceful shutdown for workers
// that schedule their own executions
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// stopTimer cancels and forgets the timer for id, reporting whether it existed
func (w *BaseWorker) stopTimer(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	timer, ok := w.timers[id]
	if ok {
		timer.Stop()
		delete(w.timers, id)
	}
	return ok
}

// registerTimer records a new timer. It returns false, and stops the timer,
// when the worker is already shut down.
func (w *BaseWorker) registerTimer(id uuid.UUID, timer *time.Timer) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		timer.Stop()
		return false
	}
	w.timers[id] = timer
	return true
}

// replaceTimer swaps in the next timer for a schedule that is still active.
// A cancelled schedule or a shut down worker stops the new timer instead.
func (w *BaseWorker) replaceTimer(id uuid.UUID, timer *time.Timer) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, active := w.timers[id]; !active || w.closed {
		timer.Stop()
		return false
	}
	w.timers[id] = timer
	return true
}

// active reports whether id is still scheduled
func (w *BaseWorker) active(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.timers[id]
	return ok && !w.closed
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for id, timer := range w.timers {
		timer.Stop()
		log.Debug(LogMsgScheduleCancelled, "worker", workerName, "schedule_id", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
