package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/craftboard/internal/domain"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func TestAutosaveJob(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: save succeeds", func(t *testing.T) {
		saver := new(MockSaver)
		saver.On("Save", ctx).Return(true).Once()

		job := NewAutosaveJob(saver)
		assert.NoError(t, job.Process(ctx))
		assert.Equal(t, JobNameAutosave, job.Name())
		saver.AssertExpectations(t)
	})

	t.Run("Error Case: save fails", func(t *testing.T) {
		saver := new(MockSaver)
		saver.On("Save", ctx).Return(false).Once()

		err := NewAutosaveJob(saver).Process(ctx)
		assert.ErrorIs(t, err, domain.ErrPersistence)
		saver.AssertExpectations(t)
	})
}
