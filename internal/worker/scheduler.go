package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
)

// Scheduler runs jobs on fixed intervals. Jobs are handed to the pool when
// one is set, otherwise they run on a goroutine tracked by the scheduler.
type Scheduler struct {
	BaseWorker
	pool *Pool
}

// NewScheduler creates a scheduler that dispatches to pool, which may be nil
func NewScheduler(pool *Pool) *Scheduler {
	s := &Scheduler{pool: pool}
	s.init()
	return s
}

// Every runs job each interval until the schedule is cancelled or the scheduler shuts down
func (s *Scheduler) Every(name string, interval time.Duration, job Job) (uuid.UUID, error) {
	if interval <= 0 {
		return uuid.Nil, fmt.Errorf("%w: schedule %q interval must be positive", domain.ErrInvalidInput, name)
	}
	if job == nil {
		return uuid.Nil, fmt.Errorf("%w: schedule %q has no job", domain.ErrInvalidInput, name)
	}

	id := uuid.New()
	timer := time.AfterFunc(interval, func() { s.fire(id, name, interval, job) })
	if !s.registerTimer(id, timer) {
		return uuid.Nil, fmt.Errorf("%w: scheduler is shut down", domain.ErrInvalidInput)
	}

	logger.FromContext(context.Background()).Info(LogMsgScheduleRegistered,
		"schedule", name, "schedule_id", id, "interval", interval)
	return id, nil
}

// Cancel stops a schedule, reporting whether it was active
func (s *Scheduler) Cancel(id uuid.UUID) bool {
	return s.stopTimer(id)
}

// Shutdown stops every schedule and waits for inline jobs to finish
func (s *Scheduler) Shutdown(ctx context.Context) error {
	return s.shutdownInternal(ctx, SchedulerWorkerName)
}

func (s *Scheduler) fire(id uuid.UUID, name string, interval time.Duration, job Job) {
	select {
	case <-s.shutdown:
		return
	default:
	}
	if !s.active(id) {
		return
	}

	logger.FromContext(context.Background()).Debug(LogMsgScheduleFired, "schedule", name, "schedule_id", id)
	s.dispatch(job)

	next := time.AfterFunc(interval, func() { s.fire(id, name, interval, job) })
	s.replaceTimer(id, next)
}

func (s *Scheduler) dispatch(job Job) {
	if s.pool != nil {
		s.pool.TryEnqueue(job)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx := context.Background()
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", jobName(job), "error", err)
		}
	}()
}
