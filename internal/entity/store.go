package entity

import (
	"context"
	"time"

	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/save"
)

// Persister is the save path used by the store
type Persister interface {
	LoadOrCreate(ctx context.Context, saveID string, doc save.Document) save.LoadOutcome
	Persist(ctx context.Context, saveID string, doc save.Document) bool
}

// Store owns the runtime state of every item and recipe in a catalog.
// Entries are created once at load and live as long as the store.
type Store struct {
	items   []*Item
	recipes []*Recipe

	itemIndex   map[string]*Item
	recipeIndex map[string]*Recipe

	persister Persister
	now       func() time.Time
}

// NewStore creates runtime state for every catalog entry and loads each
// persisted record, writing defaults where none exist.
func NewStore(ctx context.Context, cat *catalog.Catalog, persister Persister) *Store {
	s := &Store{
		items:       make([]*Item, 0, len(cat.Items())),
		recipes:     make([]*Recipe, 0, len(cat.Recipes())),
		itemIndex:   make(map[string]*Item, len(cat.Items())),
		recipeIndex: make(map[string]*Recipe, len(cat.Recipes())),
		persister:   persister,
		now:         time.Now,
	}

	log := logger.FromContext(ctx)
	counts := make(map[save.LoadOutcome]int)

	for _, def := range cat.Items() {
		item := newItem(def)
		outcome := persister.LoadOrCreate(ctx, item.saveID, &item.record)
		counts[outcome]++
		if outcome == save.Unavailable {
			log.Warn(LogMsgLoadOutcomeNotice, "save_id", item.saveID, "outcome", outcome.String())
		}
		s.items = append(s.items, item)
		s.itemIndex[def.ID] = item
	}

	for _, def := range cat.Recipes() {
		recipe := newRecipe(def)
		outcome := persister.LoadOrCreate(ctx, recipe.saveID, &recipe.record)
		counts[outcome]++
		if outcome == save.Unavailable {
			log.Warn(LogMsgLoadOutcomeNotice, "save_id", recipe.saveID, "outcome", outcome.String())
		}
		s.recipes = append(s.recipes, recipe)
		s.recipeIndex[def.ID] = recipe
	}

	log.Info(LogMsgStoreLoaded,
		"items", len(s.items),
		"recipes", len(s.recipes),
		"loaded", counts[save.Loaded],
		"created", counts[save.Created],
		"recovered", counts[save.Recovered],
		"unavailable", counts[save.Unavailable])
	return s
}

// GetItem returns the item with id, or nil with a logged warning
func (s *Store) GetItem(ctx context.Context, id string) *Item {
	item, ok := s.itemIndex[id]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgItemNotFound, "item_id", id)
		return nil
	}
	return item
}

// GetRecipe returns the recipe with id, or nil with a logged warning
func (s *Store) GetRecipe(ctx context.Context, id string) *Recipe {
	recipe, ok := s.recipeIndex[id]
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgRecipeNotFound, "recipe_id", id)
		return nil
	}
	return recipe
}

// HasItem reports whether id names a catalog item
func (s *Store) HasItem(id string) bool {
	_, ok := s.itemIndex[id]
	return ok
}

// Lookup resolves an entity of the given kind. Unknown kinds and ids are logged and reported as missing.
func (s *Store) Lookup(ctx context.Context, kind domain.EntityKind, id string) (Ref, bool) {
	switch kind {
	case domain.KindCraftItem:
		if item := s.GetItem(ctx, id); item != nil {
			return Ref{Kind: kind, Item: item}, true
		}
	case domain.KindCraftRecipe:
		if recipe := s.GetRecipe(ctx, id); recipe != nil {
			return Ref{Kind: kind, Recipe: recipe}, true
		}
	default:
		logger.FromContext(ctx).Warn(LogMsgUnknownKind, "kind", int(kind), "id", id)
	}
	return Ref{}, false
}

// AllItems returns every item in catalog order
func (s *Store) AllItems() []*Item {
	return s.items
}

// AllRecipes returns every recipe in catalog order
func (s *Store) AllRecipes() []*Recipe {
	return s.recipes
}

// ==================== Mutations ====================

// SetItemUnlocked changes an item's unlock state and persists it. Unlocking is
// idempotent: the first unlock time is kept. Unlocking also clears any hint.
// It reports whether the unlock state changed.
func (s *Store) SetItemUnlocked(ctx context.Context, item *Item, unlocked bool) bool {
	changed := item.record.Unlocked != unlocked
	if unlocked {
		if changed {
			item.record.Unlocked = true
			item.record.TimeUnlocked = s.now().UnixMilli()
		}
		item.record.HintGiven = false
		item.setRuntime(domain.KeywordHint, false)
	} else {
		item.record.Unlocked = false
		item.record.TimeUnlocked = 0
	}
	s.persister.Persist(ctx, item.saveID, &item.record)
	return changed
}

// SetRecipeUnlocked changes a recipe's unlock state and persists it.
// It reports whether the unlock state changed.
func (s *Store) SetRecipeUnlocked(ctx context.Context, recipe *Recipe, unlocked bool) bool {
	changed := recipe.record.Unlocked != unlocked
	if unlocked {
		if changed {
			recipe.record.Unlocked = true
			recipe.record.TimeUnlocked = s.now().UnixMilli()
		}
	} else {
		recipe.record.Unlocked = false
		recipe.record.TimeUnlocked = 0
	}
	s.persister.Persist(ctx, recipe.saveID, &recipe.record)
	return changed
}

// SetItemHint sets the persisted hint flag and the transient Hint keyword together
func (s *Store) SetItemHint(ctx context.Context, item *Item, hint bool) {
	item.record.HintGiven = hint
	item.setRuntime(domain.KeywordHint, hint)
	s.persister.Persist(ctx, item.saveID, &item.record)
}

// SetItemDepleted applies or removes the transient Depleted keyword. Nothing is persisted.
func (s *Store) SetItemDepleted(item *Item, depleted bool) {
	item.setRuntime(domain.KeywordDepleted, depleted)
}

// EnsureStartingValues reconciles an item with its definition and persisted
// state: Basic items are unlocked, a persisted hint shows the Hint keyword,
// and depleted controls the Depleted keyword. Safe to call repeatedly.
func (s *Store) EnsureStartingValues(ctx context.Context, item *Item, depleted bool) {
	if item.def.HasKeyword(domain.KeywordBasic) && !item.record.Unlocked {
		s.SetItemUnlocked(ctx, item, true)
		logger.FromContext(ctx).Debug(LogMsgStartingUnlock, "item_id", item.ID())
	}
	item.setRuntime(domain.KeywordHint, item.record.HintGiven)
	item.setRuntime(domain.KeywordDepleted, depleted)
}

// ResetAll restores every item and recipe to its defaults and persists them
func (s *Store) ResetAll(ctx context.Context) {
	for _, item := range s.items {
		item.record.Reset()
		clear(item.runtime)
		s.persister.Persist(ctx, item.saveID, &item.record)
	}
	for _, recipe := range s.recipes {
		recipe.record.Reset()
		s.persister.Persist(ctx, recipe.saveID, &recipe.record)
	}
	logger.FromContext(ctx).Info(LogMsgEntitiesReset, "items", len(s.items), "recipes", len(s.recipes))
}
