package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/domain"
)

func TestHeadlessHost(t *testing.T) {
	h := NewHeadlessHost()

	handle := h.SpawnInstance("wood", domain.Position{X: 1, Y: 2})
	_, err := uuid.Parse(string(handle))
	require.NoError(t, err, "handles are uuids")

	pos, ok := h.Position(handle)
	assert.True(t, ok)
	assert.Equal(t, domain.Position{X: 1, Y: 2}, pos)

	assert.True(t, h.MoveInstance(handle, domain.Position{X: 3}))
	pos, _ = h.Position(handle)
	assert.Equal(t, domain.Position{X: 3}, pos)

	h.ShowAlreadyMade("stick", pos)
	assert.Equal(t, []Notice{{ItemID: "stick", Position: pos}}, h.DrainNotices())

	h.RecycleInstance(handle)
	_, ok = h.Position(handle)
	assert.False(t, ok)
	assert.False(t, h.MoveInstance(handle, domain.Position{}))
	assert.Empty(t, h.Instances())

	t.Run("Edge Case: recycling an unknown handle is a no-op", func(t *testing.T) {
		h.RecycleInstance("nope")
		assert.Empty(t, h.Instances())
	})
}
