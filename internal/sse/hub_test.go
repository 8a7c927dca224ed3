package sse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/testing/leaktest"
)

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "channel closed")
		return evt
	case <-time.After(testWait):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil)
	onlyUnlocks := hub.Register([]string{"item.unlocked"})
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, testWait, testTick)

	t.Run("Best Case: every client gets a matching event", func(t *testing.T) {
		require.True(t, hub.Broadcast("item.unlocked", map[string]string{"item_id": "steam"}))

		for _, c := range []*Client{all, onlyUnlocks} {
			evt := receive(t, c)
			assert.Equal(t, "item.unlocked", evt.Type)
			assert.NotEmpty(t, evt.ID)
		}
	})

	t.Run("Edge Case: filtered client skips other types", func(t *testing.T) {
		require.True(t, hub.Broadcast("game.reset", nil))

		assert.Equal(t, "game.reset", receive(t, all).Type)
		select {
		case evt := <-onlyUnlocks.EventChannel:
			t.Fatalf("unexpected event %s", evt.Type)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("Best Case: unregister closes the channel", func(t *testing.T) {
		hub.Unregister(onlyUnlocks.ID)
		assert.Eventually(t, func() bool { return hub.ClientCount() == 1 }, testWait, testTick)

		_, ok := <-onlyUnlocks.EventChannel
		assert.False(t, ok)
	})
}

func TestHub_Stop(t *testing.T) {
	hub := NewHub()
	hub.Start()

	client := hub.Register(nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, testWait, testTick)

	hub.Stop()
	_, ok := <-client.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())

	assert.NotPanics(t, hub.Stop)
	assert.Nil(t, hub.Register(nil), "register after stop")
}

func TestHub_BroadcastDropsWhenFull(t *testing.T) {
	hub := NewHub()

	for i := 0; i < BroadcastBufferSize; i++ {
		require.True(t, hub.Broadcast("item.unlocked", i))
	}
	assert.False(t, hub.Broadcast("item.unlocked", "overflow"))
}

func TestFormatMessage(t *testing.T) {
	msg, err := FormatMessage(Event{ID: "abc", Type: "game.reset", Timestamp: 42})
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: abc\nevent: game.reset\ndata: {"))
	assert.True(t, strings.HasSuffix(text, "}\n\n"))
	assert.Contains(t, text, `"timestamp":42`)

	keepalive, err := FormatMessage(Event{Type: EventTypeKeepalive})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(keepalive), "event: keepalive\n"))
}

func TestHub_StopLeavesNoGoroutines(t *testing.T) {
	leaktest.Run(t, func() {
		hub := NewHub()
		hub.Start()
		hub.Register(nil)
		hub.Stop()
	})
}
