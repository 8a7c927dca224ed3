package eventlog

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository records calls for tests that exercise the service without a database
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, eventType string, payload, metadata map[string]interface{}) error {
	return m.Called(ctx, eventType, payload, metadata).Error(0)
}

func (m *MockRepository) Recent(ctx context.Context, eventType string, limit int) ([]Event, error) {
	args := m.Called(ctx, eventType, limit)
	events, _ := args.Get(0).([]Event)
	return events, args.Error(1)
}

func (m *MockRepository) Prune(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	pruned, _ := args.Get(0).(int64)
	return pruned, args.Error(1)
}
