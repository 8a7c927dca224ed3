package crafting

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/entity"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/utils"
)

// Spawner is the part of the host the resolver drives while combining
type Spawner interface {
	SpawnInstance(itemID string, at domain.Position) domain.Handle
	ShowAlreadyMade(itemID string, at domain.Position)
}

// Outcome classifies a combine attempt
type Outcome int

const (
	NoMatch Outcome = iota
	AlreadyMade
	Crafted
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case NoMatch:
		return "no_match"
	case AlreadyMade:
		return "already_made"
	case Crafted:
		return "crafted"
	default:
		return "unknown"
	}
}

// Spawned is one product instance created by a craft
type Spawned struct {
	ItemID string        `json:"item_id"`
	Handle domain.Handle `json:"handle"`
}

// CombineResult reports what AttemptCombine did. Recipe is nil for NoMatch.
type CombineResult struct {
	Outcome       Outcome
	Recipe        *entity.Recipe
	Products      []string
	Spawned       []Spawned
	NewlyUnlocked []string
}

// Options tunes a Resolver
type Options struct {
	// DepletionEnabled turns on the Depleted keyword; when false no item is ever depleted
	DepletionEnabled bool
	// PairCacheSize bounds the memoised pair lookups; zero uses DefaultPairCacheSize
	PairCacheSize int
}

type pairKey struct {
	lo, hi string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Resolver owns the combination algorithm and every unlock/hint mutation
type Resolver struct {
	store *entity.Store
	index *RecipeIndex
	bus   event.Bus

	pairs            *lru.Cache[pairKey, string]
	depletionEnabled bool

	now       func() time.Time
	randIndex func(n int) int
}

// NewResolver creates a resolver over store and index, publishing to bus
func NewResolver(store *entity.Store, index *RecipeIndex, bus event.Bus, opts Options) (*Resolver, error) {
	size := opts.PairCacheSize
	if size <= 0 {
		size = DefaultPairCacheSize
	}
	pairs, err := lru.New[pairKey, string](size)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPairCacheFmt, err)
	}

	return &Resolver{
		store:            store,
		index:            index,
		bus:              bus,
		pairs:            pairs,
		depletionEnabled: opts.DepletionEnabled,
		now:              time.Now,
		randIndex:        utils.RandomIndex,
	}, nil
}

// Store returns the entity store the resolver mutates
func (r *Resolver) Store() *entity.Store {
	return r.store
}

// Index returns the recipe index
func (r *Resolver) Index() *RecipeIndex {
	return r.index
}

// IsFinalItem reports whether no recipe uses the item as an ingredient
func (r *Resolver) IsFinalItem(itemID string) bool {
	return len(r.index.IngredientRecipes(itemID)) == 0
}

// IsDepletedItem reports whether every recipe using the item has been made.
// Final items are never depleted.
func (r *Resolver) IsDepletedItem(ctx context.Context, itemID string) bool {
	if !r.depletionEnabled || r.IsFinalItem(itemID) {
		return false
	}
	for _, recipeID := range r.index.IngredientRecipes(itemID) {
		recipe := r.store.GetRecipe(ctx, recipeID)
		if recipe == nil || !recipe.Unlocked() {
			return false
		}
	}
	return true
}

// RecipeSatisfiedBy finds the first recipe, in index order, whose ingredients
// are exactly the two items. The result does not depend on argument order.
func (r *Resolver) RecipeSatisfiedBy(ctx context.Context, first, second string) (*entity.Recipe, bool) {
	key := newPairKey(first, second)
	if recipeID, ok := r.pairs.Get(key); ok {
		if recipeID == "" {
			return nil, false
		}
		return r.store.GetRecipe(ctx, recipeID), true
	}

	// probing from the smaller id keeps the first match independent of argument order
	for _, recipeID := range r.index.IngredientRecipes(key.lo) {
		recipe := r.store.GetRecipe(ctx, recipeID)
		if recipe == nil {
			continue
		}
		if recipe.Definition().Satisfied(first, second) {
			r.pairs.Add(key, recipeID)
			return recipe, true
		}
	}

	r.pairs.Add(key, "")
	return nil, false
}

// CanBuildRecipe reports whether every ingredient of the recipe is unlocked
func (r *Resolver) CanBuildRecipe(ctx context.Context, recipeID string) bool {
	recipe := r.store.GetRecipe(ctx, recipeID)
	if recipe == nil {
		return false
	}
	return r.canBuild(ctx, recipe)
}

func (r *Resolver) canBuild(ctx context.Context, recipe *entity.Recipe) bool {
	for _, req := range recipe.Definition().Ingredients {
		item := r.store.GetItem(ctx, req.ItemID)
		if item == nil || !item.Unlocked() {
			return false
		}
	}
	return true
}

// AttemptCombine resolves two items against the recipe book. Nothing is
// consumed here: on Crafted the caller recycles both source instances.
func (r *Resolver) AttemptCombine(ctx context.Context, first, second string, at domain.Position, host Spawner) CombineResult {
	log := logger.FromContext(ctx)

	recipe, ok := r.RecipeSatisfiedBy(ctx, first, second)
	if !ok {
		log.Debug(LogMsgCombineNoMatch, "first", first, "second", second)
		r.publish(ctx, NewCombinationInvalidEvent(first, second))
		return CombineResult{Outcome: NoMatch}
	}

	def := recipe.Definition()

	if recipe.Unlocked() {
		log.Debug(LogMsgCombineAlreadyMade, "recipe_id", def.ID)
		for _, product := range def.Products {
			host.ShowAlreadyMade(product, at)
		}
		r.publish(ctx, NewRecipeAlreadyMadeEvent(def))
		return CombineResult{Outcome: AlreadyMade, Recipe: recipe, Products: def.Products}
	}

	r.store.SetRecipeUnlocked(ctx, recipe, true)
	r.publish(ctx, NewRecipeUnlockedEvent(def, recipe.TimeUnlocked()))

	result := CombineResult{
		Outcome:  Crafted,
		Recipe:   recipe,
		Products: def.Products,
		Spawned:  make([]Spawned, 0, len(def.Products)),
	}

	for _, product := range def.Products {
		handle := host.SpawnInstance(product, at)
		result.Spawned = append(result.Spawned, Spawned{ItemID: product, Handle: handle})

		item := r.store.GetItem(ctx, product)
		if item == nil || item.Unlocked() {
			continue
		}
		r.store.SetItemUnlocked(ctx, item, true)
		result.NewlyUnlocked = append(result.NewlyUnlocked, product)
		log.Info(LogMsgItemUnlocked, "item_id", product, "recipe_id", def.ID)
		r.publish(ctx, NewItemUnlockedEvent(product, def.ID, item.TimeUnlocked()))
	}

	r.RefreshDepletion(ctx, def.ReferencedItems()...)

	log.Info(LogMsgCombineCrafted, "recipe_id", def.ID, "products", def.Products, "unlocked", result.NewlyUnlocked)
	return result
}

// RefreshDepletion recomputes the Depleted keyword for the given items
func (r *Resolver) RefreshDepletion(ctx context.Context, itemIDs ...string) {
	for _, id := range itemIDs {
		item := r.store.GetItem(ctx, id)
		if item == nil {
			continue
		}
		r.store.SetItemDepleted(item, r.IsDepletedItem(ctx, id))
	}
	logger.FromContext(ctx).Debug(LogMsgDepletionRefreshed, "items", len(itemIDs))
}

// SetItemUnlockState sets an item's unlock state. Unlocking is idempotent and clears any hint.
func (r *Resolver) SetItemUnlockState(ctx context.Context, itemID string, unlocked bool) error {
	item := r.store.GetItem(ctx, itemID)
	if item == nil {
		return fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, itemID)
	}
	r.store.SetItemUnlocked(ctx, item, unlocked)
	return nil
}

// SetRecipeUnlockState sets a recipe's unlock state and refreshes depletion of the items it references
func (r *Resolver) SetRecipeUnlockState(ctx context.Context, recipeID string, unlocked bool) error {
	recipe := r.store.GetRecipe(ctx, recipeID)
	if recipe == nil {
		return fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrRecipeNotFound, recipeID)
	}
	if r.store.SetRecipeUnlocked(ctx, recipe, unlocked) {
		r.RefreshDepletion(ctx, recipe.Definition().ReferencedItems()...)
	}
	return nil
}

// SetUnlockState dispatches on the kind of ref
func (r *Resolver) SetUnlockState(ctx context.Context, ref entity.Ref, unlocked bool) error {
	switch ref.Kind {
	case domain.KindCraftItem:
		return r.SetItemUnlockState(ctx, ref.Item.ID(), unlocked)
	case domain.KindCraftRecipe:
		return r.SetRecipeUnlockState(ctx, ref.Recipe.ID(), unlocked)
	default:
		return fmt.Errorf("%w: entity kind %d", domain.ErrInvalidInput, int(ref.Kind))
	}
}

// SetHintState toggles an item's hint flag together with its Hint keyword
func (r *Resolver) SetHintState(ctx context.Context, itemID string, hint bool) error {
	item := r.store.GetItem(ctx, itemID)
	if item == nil {
		return fmt.Errorf(ErrMsgItemNotFoundFmt, domain.ErrItemNotFound, itemID)
	}
	r.store.SetItemHint(ctx, item, hint)
	return nil
}

// EnsureStartingValues applies the starting rules to every item
func (r *Resolver) EnsureStartingValues(ctx context.Context) {
	for _, item := range r.store.AllItems() {
		r.store.EnsureStartingValues(ctx, item, r.IsDepletedItem(ctx, item.ID()))
	}
	logger.FromContext(ctx).Debug(LogMsgStartingValues, "items", len(r.store.AllItems()))
}

// ResetAll restores every item and recipe to its defaults
func (r *Resolver) ResetAll(ctx context.Context) {
	r.store.ResetAll(ctx)
}

func (r *Resolver) publish(ctx context.Context, evt event.Event) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
