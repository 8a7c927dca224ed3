package crafting

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/entity"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/save"
	"github.com/osse101/craftboard/internal/storage"
)

// wood, stone and water are Basic. torch and mud are final.
func testCatalog(t testing.TB) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(catalog.Document{
		Items: []domain.ItemDefinition{
			{ID: "wood", DisplayName: "Wood", Keywords: []domain.Keyword{domain.KeywordBasic}},
			{ID: "stone", DisplayName: "Stone", Keywords: []domain.Keyword{domain.KeywordBasic}},
			{ID: "water", DisplayName: "Water", Keywords: []domain.Keyword{domain.KeywordBasic}},
			{ID: "stick", DisplayName: "Stick"},
			{ID: "plank", DisplayName: "Plank"},
			{ID: "mud", DisplayName: "Mud"},
			{ID: "torch", DisplayName: "Torch"},
		},
		Recipes: []domain.RecipeDefinition{
			{
				ID:          "make_stick",
				Ingredients: []domain.RecipeRequirement{{ItemID: "wood", Count: 1}, {ItemID: "stone", Count: 1}},
				Products:    []string{"stick"},
			},
			{
				ID:          "make_plank",
				Ingredients: []domain.RecipeRequirement{{ItemID: "wood", Count: 2}},
				Products:    []string{"plank", "stick"},
			},
			{
				ID:          "make_mud",
				Ingredients: []domain.RecipeRequirement{{ItemID: "water", Count: 1}, {ItemID: "stone", Count: 1}},
				Products:    []string{"mud"},
			},
			{
				ID:          "make_torch",
				Ingredients: []domain.RecipeRequirement{{ItemID: "stick", Count: 1}, {ItemID: "wood", Count: 1}},
				Products:    []string{"torch"},
			},
		},
	})
	require.NoError(t, err)
	return cat
}

type fixture struct {
	resolver *Resolver
	store    *entity.Store
	backing  *storage.MemoryStore
	events   *eventRecorder
}

func newFixture(t testing.TB, opts Options) *fixture {
	t.Helper()

	ctx := context.Background()
	cat := testCatalog(t)
	backing := storage.NewMemoryStore()
	store := entity.NewStore(ctx, cat, save.NewCoordinator(backing))

	bus := event.NewMemoryBus()
	recorder := &eventRecorder{}
	event.SubscribeAll(bus, recorder.handle)

	resolver, err := NewResolver(store, BuildFrom(cat.Recipes()), bus, opts)
	require.NoError(t, err)
	resolver.EnsureStartingValues(ctx)

	return &fixture{resolver: resolver, store: store, backing: backing, events: recorder}
}

type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]event.Type, 0, len(r.events))
	for _, evt := range r.events {
		types = append(types, evt.Type)
	}
	return types
}

func (r *eventRecorder) last() event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *eventRecorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

type showCall struct {
	itemID string
	at     domain.Position
}

type fakeSpawner struct {
	spawned []string
	shown   []showCall
}

func (f *fakeSpawner) SpawnInstance(itemID string, at domain.Position) domain.Handle {
	f.spawned = append(f.spawned, itemID)
	return domain.Handle("h-" + itemID)
}

func (f *fakeSpawner) ShowAlreadyMade(itemID string, at domain.Position) {
	f.shown = append(f.shown, showCall{itemID: itemID, at: at})
}

func ids[T interface{ ID() string }](entries []T) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID())
	}
	return out
}
