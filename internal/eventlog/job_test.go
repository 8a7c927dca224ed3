package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/craftboard/internal/domain"
)

func TestPruneJob_Process(t *testing.T) {
	t.Run("Best Case: prunes expired events", func(t *testing.T) {
		mockRepo := new(MockRepository)
		job := NewPruneJob(NewService(mockRepo), 10)

		mockRepo.On("Prune", mock.Anything, 10).Return(int64(100), nil)

		assert.NoError(t, job.Process(context.Background()))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error Case: repository failure is a persistence error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		job := NewPruneJob(NewService(mockRepo), 3)

		mockRepo.On("Prune", mock.Anything, 3).Return(int64(0), errors.New("db down"))

		err := job.Process(context.Background())
		assert.ErrorIs(t, err, domain.ErrPersistence)
		assert.ErrorContains(t, err, "db down")
	})

	t.Run("Boundary Case: zero retention keeps everything", func(t *testing.T) {
		mockRepo := new(MockRepository)
		job := NewPruneJob(NewService(mockRepo), 0)

		assert.NoError(t, job.Process(context.Background()))
		mockRepo.AssertNotCalled(t, "Prune", mock.Anything, mock.Anything)
	})

	t.Run("Best Case: named for worker logs", func(t *testing.T) {
		assert.Equal(t, PruneJobName, NewPruneJob(nil, 1).Name())
	})
}
