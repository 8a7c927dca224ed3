package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/event"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	mockBus := new(MockEventBus)

	for _, et := range event.SessionTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := svc.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: struct payload is stored as a map", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		evt := event.Event{
			Version:  event.EventSchemaVersion,
			Type:     event.ItemUnlocked,
			Payload:  domain.ItemUnlockedPayload{ItemID: "stick", RecipeID: "make_stick", Timestamp: 42},
			Metadata: map[string]interface{}{domain.MetadataKeySource: "test"},
		}

		mockRepo.On("Append", ctx, "item.unlocked", mock.MatchedBy(func(p map[string]interface{}) bool {
			return p["item_id"] == "stick" && p["recipe_id"] == "make_stick"
		}), map[string]interface{}{domain.MetadataKeySource: "test"}).Return(nil)

		err := svc.handleEvent(ctx, evt)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error Case: repository error is returned", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		mockRepo.On("Append", ctx, "combination.invalid", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		err := svc.handleEvent(ctx, event.Event{
			Type:    event.CombinationInvalid,
			Payload: domain.CombinationInvalidPayload{First: "a", Second: "b"},
		})
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("Edge Case: non-object payload is skipped", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo).(*service)

		err := svc.handleEvent(ctx, event.Event{Type: event.HintGiven, Payload: "just a string"})
		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_RecentEvents(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requested int
		expected  int
	}{
		{"default limit when zero", 0, DefaultRecentLimit},
		{"limit passed through", 10, 10},
		{"limit clamped to maximum", MaxRecentLimit + 1, MaxRecentLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			svc := NewService(mockRepo)

			mockRepo.On("Recent", ctx, "", tt.expected).Return([]Event{{ID: 1, EventType: "item.unlocked"}}, nil)

			events, err := svc.RecentEvents(ctx, "", tt.requested)
			require.NoError(t, err)
			assert.Len(t, events, 1)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Prune", ctx, 10).Return(int64(5), nil)

	count, err := svc.Prune(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
