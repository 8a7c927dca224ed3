package eventlog

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
)

// PruneJob deletes logged events once they pass the retention window.
// It runs on the worker scheduler.
type PruneJob struct {
	service       Service
	retentionDays int
}

func NewPruneJob(service Service, retentionDays int) *PruneJob {
	return &PruneJob{service: service, retentionDays: retentionDays}
}

func (j *PruneJob) Name() string {
	return PruneJobName
}

// Process runs one prune pass. A non-positive retention keeps every event.
func (j *PruneJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if j.retentionDays <= 0 {
		log.Debug(LogMsgPruneSkipped, LogFieldRetentionDays, j.retentionDays)
		return nil
	}

	start := time.Now()
	pruned, err := j.service.Prune(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgPruneFailed, LogFieldError, err, LogFieldDuration, time.Since(start))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	log.Info(LogMsgPruneCompleted,
		LogFieldRetentionDays, j.retentionDays,
		LogFieldDeletedCount, pruned,
		LogFieldDuration, time.Since(start))
	return nil
}
