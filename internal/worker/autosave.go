package worker

import (
	"context"
	"fmt"

	"github.com/osse101/craftboard/internal/domain"
)

// Saver persists the current game state, reporting success
type Saver interface {
	Save(ctx context.Context) bool
}

// AutosaveJob writes the session save on a schedule
type AutosaveJob struct {
	saver Saver
}

// NewAutosaveJob creates an autosave job for saver
func NewAutosaveJob(saver Saver) *AutosaveJob {
	return &AutosaveJob{saver: saver}
}

// Name implements Named
func (j *AutosaveJob) Name() string {
	return JobNameAutosave
}

// Process implements Job
func (j *AutosaveJob) Process(ctx context.Context) error {
	if !j.saver.Save(ctx) {
		return fmt.Errorf("%w: %s", domain.ErrPersistence, LogMsgAutosaveFailed)
	}
	return nil
}
