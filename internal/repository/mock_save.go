package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSave is a mock implementation of the Save interface
type MockSave struct {
	mock.Mock
}

func (m *MockSave) Load(ctx context.Context, saveID string) ([]byte, error) {
	args := m.Called(ctx, saveID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockSave) Save(ctx context.Context, saveID string, data []byte) error {
	args := m.Called(ctx, saveID, data)
	return args.Error(0)
}

func (m *MockSave) Delete(ctx context.Context, saveID string) error {
	args := m.Called(ctx, saveID)
	return args.Error(0)
}

func (m *MockSave) List(ctx context.Context) ([]SaveInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SaveInfo), args.Error(1)
}
