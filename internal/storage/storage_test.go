package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
)

// exerciseStore runs the behaviour every repository.Save implementation shares
func exerciseStore(t *testing.T, store repository.Save) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "item_wood")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)

	require.NoError(t, store.Save(ctx, "item_wood", []byte(`{"unlocked":true}`)))
	require.NoError(t, store.Save(ctx, "board_save_state", []byte(`{"elements":[]}`)))

	data, err := store.Load(ctx, "item_wood")
	require.NoError(t, err)
	assert.Equal(t, `{"unlocked":true}`, string(data))

	require.NoError(t, store.Save(ctx, "item_wood", []byte(`{"unlocked":false}`)))
	data, err = store.Load(ctx, "item_wood")
	require.NoError(t, err)
	assert.Equal(t, `{"unlocked":false}`, string(data))

	saves, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, saves, 2)
	assert.Equal(t, "board_save_state", saves[0].SaveID)
	assert.Equal(t, "item_wood", saves[1].SaveID)
	assert.Equal(t, len(`{"unlocked":false}`), saves[1].Size)

	require.NoError(t, store.Delete(ctx, "item_wood"))
	require.NoError(t, store.Delete(ctx, "item_wood"))
	_, err = store.Load(ctx, "item_wood")
	assert.ErrorIs(t, err, domain.ErrSaveNotFound)
}

func TestMemoryStore(t *testing.T) {
	t.Run("Best Case: shared behaviour", func(t *testing.T) {
		exerciseStore(t, NewMemoryStore())
	})

	t.Run("Edge Case: payloads are copied", func(t *testing.T) {
		ctx := context.Background()
		store := NewMemoryStore()

		payload := []byte(`{"a":1}`)
		require.NoError(t, store.Save(ctx, "x", payload))
		payload[2] = 'b'

		data, err := store.Load(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(data))

		data[2] = 'c'
		again, err := store.Load(ctx, "x")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(again))
		assert.Equal(t, 1, store.Len())
	})
}

func TestFileStore(t *testing.T) {
	t.Run("Best Case: shared behaviour", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)
		exerciseStore(t, store)
	})

	t.Run("Best Case: one file per save id", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "saves")
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Save(context.Background(), "recipe_make_stick", []byte(`{}`)))

		content, err := os.ReadFile(filepath.Join(dir, "recipe_make_stick.json"))
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(content))
		assert.Equal(t, dir, store.Dir())
	})

	t.Run("Error Case: save ids cannot escape the directory", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		for _, id := range []string{"", "..", "../evil", `a\b`} {
			err := store.Save(context.Background(), id, []byte(`{}`))
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "id %q", id)
		}
	})

	t.Run("Edge Case: unrelated files are not listed", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))
		require.NoError(t, store.Save(context.Background(), "item_wood", []byte(`{}`)))

		saves, err := store.List(context.Background())
		require.NoError(t, err)
		require.Len(t, saves, 1)
		assert.Equal(t, "item_wood", saves[0].SaveID)
	})
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: shared behaviour", func(t *testing.T) {
		exerciseStore(t, NewCachedStore(NewMemoryStore(), 8, 0))
	})

	t.Run("Best Case: repeated loads hit the cache", func(t *testing.T) {
		backing := new(repository.MockSave)
		backing.On("Load", mock.Anything, "item_wood").Return([]byte(`{"unlocked":true}`), nil).Once()

		cache := NewCachedStore(backing, 8, 0)
		for i := 0; i < 3; i++ {
			data, err := cache.Load(ctx, "item_wood")
			require.NoError(t, err)
			assert.Equal(t, `{"unlocked":true}`, string(data))
		}

		backing.AssertNumberOfCalls(t, "Load", 1)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("Best Case: writes populate the cache", func(t *testing.T) {
		backing := new(repository.MockSave)
		backing.On("Save", mock.Anything, "item_wood", []byte(`{}`)).Return(nil)

		cache := NewCachedStore(backing, 8, 0)
		require.NoError(t, cache.Save(ctx, "item_wood", []byte(`{}`)))

		data, err := cache.Load(ctx, "item_wood")
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(data))
		backing.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("Error Case: failed write evicts the entry", func(t *testing.T) {
		backing := new(repository.MockSave)
		backing.On("Save", mock.Anything, "item_wood", []byte(`{"v":1}`)).Return(nil).Once()
		backing.On("Save", mock.Anything, "item_wood", []byte(`{"v":2}`)).Return(errors.New("disk full")).Once()

		cache := NewCachedStore(backing, 8, 0)
		require.NoError(t, cache.Save(ctx, "item_wood", []byte(`{"v":1}`)))
		assert.EqualError(t, cache.Save(ctx, "item_wood", []byte(`{"v":2}`)), "disk full")
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("Error Case: misses are not cached", func(t *testing.T) {
		backing := new(repository.MockSave)
		backing.On("Load", mock.Anything, "item_wood").Return(nil, domain.ErrSaveNotFound).Twice()

		cache := NewCachedStore(backing, 8, 0)
		for i := 0; i < 2; i++ {
			_, err := cache.Load(ctx, "item_wood")
			assert.ErrorIs(t, err, domain.ErrSaveNotFound)
		}
		backing.AssertExpectations(t)
	})

	t.Run("Edge Case: purge forces a reload", func(t *testing.T) {
		backing := new(repository.MockSave)
		backing.On("Load", mock.Anything, "item_wood").Return([]byte(`{}`), nil).Twice()

		cache := NewCachedStore(backing, 8, 0)
		_, err := cache.Load(ctx, "item_wood")
		require.NoError(t, err)
		cache.Purge()
		_, err = cache.Load(ctx, "item_wood")
		require.NoError(t, err)
		backing.AssertExpectations(t)
	})
}
