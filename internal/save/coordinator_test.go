package save

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/repository"
	"github.com/osse101/craftboard/internal/storage"
)

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newTestCoordinator(store repository.Save) *Coordinator {
	c := NewCoordinator(store)
	c.now = func() time.Time { return fixedNow }
	return c
}

func TestRecord(t *testing.T) {
	t.Run("Touch stamps creation once", func(t *testing.T) {
		var r Record
		r.Touch(10)
		r.Touch(20)
		assert.Equal(t, int64(10), r.TimeCreated)
		assert.Equal(t, int64(20), r.TimeUpdated)
	})

	t.Run("Reset restores defaults but keeps creation time", func(t *testing.T) {
		r := Record{Unlocked: true, TimeUnlocked: 5, HintGiven: true, TimeCreated: 1, TimeUpdated: 2}
		r.Reset()
		assert.Equal(t, Record{TimeCreated: 1}, r)

		r.Touch(30)
		assert.Equal(t, int64(1), r.TimeCreated)
		assert.Equal(t, int64(30), r.TimeUpdated)
	})
}

func TestCoordinator_LoadOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: existing save is decoded", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "item_wood", []byte(`{"unlocked":true,"timeUnlocked":7,"hintGiven":false,"timeCreated":1,"timeUpdated":7}`)))

		var rec Record
		outcome := newTestCoordinator(store).LoadOrCreate(ctx, "item_wood", &rec)

		assert.Equal(t, Loaded, outcome)
		assert.True(t, rec.Unlocked)
		assert.Equal(t, int64(7), rec.TimeUnlocked)
	})

	t.Run("Best Case: missing save writes defaults", func(t *testing.T) {
		store := storage.NewMemoryStore()
		rec := Record{Unlocked: true}

		outcome := newTestCoordinator(store).LoadOrCreate(ctx, "item_wood", &rec)

		assert.Equal(t, Created, outcome)
		assert.False(t, rec.Unlocked)
		assert.Equal(t, fixedNow.UnixMilli(), rec.TimeCreated)

		data, err := store.Load(ctx, "item_wood")
		require.NoError(t, err)
		assert.JSONEq(t, `{"unlocked":false,"timeUnlocked":0,"hintGiven":false,"timeCreated":1700000000000,"timeUpdated":1700000000000}`, string(data))
	})

	t.Run("Edge Case: corrupt save is replaced by defaults", func(t *testing.T) {
		store := storage.NewMemoryStore()
		require.NoError(t, store.Save(ctx, "item_wood", []byte(`{"unlocked":tru`)))

		var rec Record
		outcome := newTestCoordinator(store).LoadOrCreate(ctx, "item_wood", &rec)

		assert.Equal(t, Recovered, outcome)
		assert.Equal(t, Record{TimeCreated: fixedNow.UnixMilli(), TimeUpdated: fixedNow.UnixMilli()}, rec)

		data, err := store.Load(ctx, "item_wood")
		require.NoError(t, err)
		assert.Contains(t, string(data), `"unlocked":false`)
	})

	t.Run("Error Case: storage failure keeps defaults in memory only", func(t *testing.T) {
		store := new(repository.MockSave)
		store.On("Load", mock.Anything, "item_wood").Return(nil, errors.New("disk unreadable"))

		rec := Record{Unlocked: true}
		outcome := newTestCoordinator(store).LoadOrCreate(ctx, "item_wood", &rec)

		assert.Equal(t, Unavailable, outcome)
		assert.Equal(t, Record{}, rec)
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCoordinator_Persist(t *testing.T) {
	ctx := context.Background()

	t.Run("Best Case: write-through with timestamps", func(t *testing.T) {
		store := storage.NewMemoryStore()
		rec := Record{Unlocked: true, TimeUnlocked: 3}

		ok := newTestCoordinator(store).Persist(ctx, "recipe_make_stick", &rec)

		assert.True(t, ok)
		assert.Equal(t, fixedNow.UnixMilli(), rec.TimeUpdated)
		data, err := store.Load(ctx, "recipe_make_stick")
		require.NoError(t, err)
		assert.Contains(t, string(data), `"unlocked":true`)
	})

	t.Run("Error Case: failure is swallowed", func(t *testing.T) {
		store := new(repository.MockSave)
		store.On("Save", mock.Anything, "item_wood", mock.Anything).Return(errors.New("disk full"))

		rec := Record{Unlocked: true}
		ok := newTestCoordinator(store).Persist(ctx, "item_wood", &rec)

		assert.False(t, ok)
		assert.True(t, rec.Unlocked, "in-memory state stays authoritative")
		store.AssertExpectations(t)
	})
}

func TestCoordinator_UnreadableSave(t *testing.T) {
	ctx := context.Background()

	t.Run("Error Case: unreadable save is never overwritten", func(t *testing.T) {
		store := new(repository.MockSave)
		store.On("Load", mock.Anything, "board").Return(nil, errors.New("connection reset"))
		c := newTestCoordinator(store)

		var rec Record
		require.Equal(t, Unavailable, c.LoadOrCreate(ctx, "board", &rec))
		assert.True(t, c.Unreadable("board"))

		rec.Unlocked = true
		assert.False(t, c.Persist(ctx, "board", &rec))
		store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Best Case: a later successful load makes the save writable", func(t *testing.T) {
		store := new(repository.MockSave)
		store.On("Load", mock.Anything, "item_wood").Return(nil, errors.New("connection reset")).Once()
		store.On("Load", mock.Anything, "item_wood").Return([]byte(`{"unlocked":true}`), nil).Once()
		store.On("Save", mock.Anything, "item_wood", mock.Anything).Return(nil)
		c := newTestCoordinator(store)

		var rec Record
		c.LoadOrCreate(ctx, "item_wood", &rec)
		require.Equal(t, Loaded, c.LoadOrCreate(ctx, "item_wood", &rec))

		assert.False(t, c.Unreadable("item_wood"))
		assert.True(t, c.Persist(ctx, "item_wood", &rec))
		store.AssertExpectations(t)
	})

	t.Run("Best Case: game reset makes unreadable saves writable", func(t *testing.T) {
		store := new(repository.MockSave)
		store.On("Load", mock.Anything, "item_wood").Return(nil, errors.New("connection reset"))
		store.On("Save", mock.Anything, "item_wood", mock.Anything).Return(nil)
		c := newTestCoordinator(store)

		var rec Record
		c.LoadOrCreate(ctx, "item_wood", &rec)
		r := &recorder{}
		c.GameReset(ctx, fakeBoard{r}, fakeEntities{r})

		assert.False(t, c.Unreadable("item_wood"))
		assert.True(t, c.Persist(ctx, "item_wood", &rec))
	})
}

type recorder struct {
	calls []string
}

type fakeBoard struct{ r *recorder }

func (b fakeBoard) Reset(context.Context) { b.r.calls = append(b.r.calls, "board.reset") }

type fakeEntities struct{ r *recorder }

func (e fakeEntities) ResetAll(context.Context) { e.r.calls = append(e.r.calls, "entities.reset") }
func (e fakeEntities) EnsureStartingValues(context.Context) {
	e.r.calls = append(e.r.calls, "entities.ensure")
}

func TestCoordinator_GameReset(t *testing.T) {
	r := &recorder{}
	newTestCoordinator(storage.NewMemoryStore()).GameReset(context.Background(), fakeBoard{r}, fakeEntities{r})

	assert.Equal(t, []string{"board.reset", "entities.reset", "entities.ensure"}, r.calls)
}

func TestLoadOutcome_String(t *testing.T) {
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "recovered", Recovered.String())
	assert.Equal(t, "unavailable", Unavailable.String())
	assert.Equal(t, "unknown", LoadOutcome(99).String())
}

func TestErrorsAreDomainErrors(t *testing.T) {
	store := new(repository.MockSave)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("boom"))

	err := newTestCoordinator(store).write(context.Background(), "item_wood", &Record{})
	assert.ErrorIs(t, err, domain.ErrPersistence)
}
