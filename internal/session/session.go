package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/craftboard/internal/board"
	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/entity"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/repository"
	"github.com/osse101/craftboard/internal/save"
)

// ErrSameHandle is returned when an instance is combined with itself
var ErrSameHandle = errors.New(ErrMsgSameHandle)

// Options configures a Session
type Options struct {
	Catalog  *catalog.Catalog
	Store    repository.Save
	Host     Host
	Bus      event.Bus
	Resolver crafting.Options
}

// BoardView is the read model of the board
type BoardView struct {
	Elements     []domain.ElementView `json:"elements"`
	RecycleState domain.RecycleState  `json:"recycle_state"`
	UndoCount    int                  `json:"undo_count"`
}

// Session owns one game: catalog, runtime entities, resolver, board and
// persistence. Every method is serialised behind one mutex.
type Session struct {
	mu sync.Mutex

	catalog  *catalog.Catalog
	coord    *save.Coordinator
	entities *entity.Store
	resolver *crafting.Resolver
	board    *board.State
	host     Host
	bus      event.Bus
}

// New loads every saved record, applies starting values and restores the board
func New(ctx context.Context, opts Options) (*Session, error) {
	switch {
	case opts.Catalog == nil:
		return nil, fmt.Errorf(ErrMsgMissingDependencyFmt, domain.ErrInvalidConfig, "catalog")
	case opts.Store == nil:
		return nil, fmt.Errorf(ErrMsgMissingDependencyFmt, domain.ErrInvalidConfig, "save store")
	case opts.Host == nil:
		return nil, fmt.Errorf(ErrMsgMissingDependencyFmt, domain.ErrInvalidConfig, "host")
	}

	bus := opts.Bus
	if bus == nil {
		bus = event.NewMemoryBus()
	}

	coord := save.NewCoordinator(opts.Store)
	entities := entity.NewStore(ctx, opts.Catalog, coord)
	resolver, err := crafting.NewResolver(entities, crafting.BuildFrom(opts.Catalog.Recipes()), bus, opts.Resolver)
	if err != nil {
		return nil, err
	}
	resolver.EnsureStartingValues(ctx)

	s := &Session{
		catalog:  opts.Catalog,
		coord:    coord,
		entities: entities,
		resolver: resolver,
		host:     opts.Host,
		bus:      bus,
	}

	s.board = board.New(ctx, opts.Host, coord, bus)
	placed := s.board.Restore(ctx, func(itemID string) bool {
		if !entities.HasItem(itemID) {
			logger.FromContext(ctx).Warn(LogMsgRestoreUnknownItem, "item_id", itemID)
			return false
		}
		return !s.unusable(ctx, itemID)
	})

	logger.FromContext(ctx).Info(LogMsgSessionStarted,
		"items", len(opts.Catalog.Items()),
		"recipes", len(opts.Catalog.Recipes()),
		"board", placed)
	return s, nil
}

// Bus returns the bus session events are published on
func (s *Session) Bus() event.Bus {
	return s.bus
}

// Catalog returns the immutable definitions
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

func (s *Session) unusable(ctx context.Context, itemID string) bool {
	return s.resolver.IsFinalItem(itemID) || s.resolver.IsDepletedItem(ctx, itemID)
}

// ==================== Board Operations ====================

// Spawn places a new instance of an unlocked item on the board
func (s *Session) Spawn(ctx context.Context, itemID string, at domain.Position) (domain.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.catalog.Item(itemID)
	if !ok {
		return "", fmt.Errorf(ErrMsgHandleFmt, domain.ErrItemNotFound, itemID)
	}
	if state := s.entities.GetItem(ctx, item.ID); !state.Unlocked() {
		return "", fmt.Errorf(ErrMsgItemLockedFmt, domain.ErrInvalidInput, itemID)
	}

	handle := s.host.SpawnInstance(itemID, at)
	s.board.TrackElement(ctx, itemID, handle)
	logger.FromContext(ctx).Debug(LogMsgInstanceSpawned, "item_id", itemID, "handle", handle)
	return handle, nil
}

// Move relocates an instance. Any movement forfeits a pending undo.
func (s *Session) Move(ctx context.Context, handle domain.Handle, at domain.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mover, ok := s.host.(Mover)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgHostCannotMove)
	}
	if _, tracked := s.board.Element(handle); !tracked || !mover.MoveInstance(handle, at) {
		return fmt.Errorf(ErrMsgHandleFmt, domain.ErrInvalidHandle, handle)
	}

	s.board.OnPositionChanged(ctx)
	s.board.Save(ctx)
	return nil
}

// Remove recycles one instance
func (s *Session) Remove(ctx context.Context, handle domain.Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, tracked := s.board.Element(handle); !tracked {
		return fmt.Errorf(ErrMsgHandleFmt, domain.ErrInvalidHandle, handle)
	}
	s.host.RecycleInstance(handle)
	s.board.UntrackElement(ctx, handle)
	logger.FromContext(ctx).Debug(LogMsgInstanceRemoved, "handle", handle)
	return nil
}

// Combine drops first onto second. Products appear at second's position and
// both sources are recycled when a recipe is crafted.
func (s *Session) Combine(ctx context.Context, first, second domain.Handle) (crafting.CombineResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if first == second {
		return crafting.CombineResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, ErrSameHandle)
	}
	a, ok := s.board.Element(first)
	if !ok {
		return crafting.CombineResult{}, fmt.Errorf(ErrMsgHandleFmt, domain.ErrInvalidHandle, first)
	}
	b, ok := s.board.Element(second)
	if !ok {
		return crafting.CombineResult{}, fmt.Errorf(ErrMsgHandleFmt, domain.ErrInvalidHandle, second)
	}

	at, live := s.host.Position(second)
	if !live {
		at = b.Position
	}

	result := s.resolver.AttemptCombine(ctx, a.ItemID, b.ItemID, at, s.host)
	if result.Outcome == crafting.Crafted {
		for _, h := range []domain.Handle{first, second} {
			s.host.RecycleInstance(h)
			s.board.UntrackElement(ctx, h)
		}
		for _, spawned := range result.Spawned {
			s.board.TrackElement(ctx, spawned.ItemID, spawned.Handle)
		}
	}

	logger.FromContext(ctx).Info(LogMsgCombineResolved,
		"first", a.ItemID,
		"second", b.ItemID,
		"outcome", result.Outcome.String())
	return result, nil
}

// MassClear recycles everything on the board and arms undo
func (s *Session) MassClear(ctx context.Context) []domain.BoardElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.MassClear(ctx)
}

// Undo restores the last mass clear
func (s *Session) Undo(ctx context.Context) []domain.BoardElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Undo(ctx)
}

// RecycleAction is the single recycle button: clear when clean, undo when armed
func (s *Session) RecycleAction(ctx context.Context) []domain.BoardElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.HandleRecycleAction(ctx)
}

// ClearUnusable recycles every final or depleted item on the board
func (s *Session) ClearUnusable(ctx context.Context) []domain.BoardElement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.RecycleUnusable(ctx, func(itemID string) bool {
		return s.unusable(ctx, itemID)
	})
}

// Save writes the board with fresh positions
func (s *Session) Save(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Save(ctx)
}

// Board returns the current board
func (s *Session) Board() BoardView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BoardView{
		Elements:     domain.ElementViews(s.board.Elements()),
		RecycleState: s.board.RecycleState(),
		UndoCount:    len(s.board.UndoBuffer()),
	}
}

// Reset wipes all progress and the board, then reapplies starting values
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.coord.GameReset(ctx, s.board, s.resolver)

	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.GameReset,
		Payload: domain.GameResetPayload{
			Items:     len(s.entities.AllItems()),
			Recipes:   len(s.entities.AllRecipes()),
			Timestamp: s.coord.NowMs(),
		},
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgResetPublishFailed, "error", err)
	}
	logger.FromContext(ctx).Info(LogMsgGameResetPublished)
}

// ==================== Unlock and Hint State ====================

// SetUnlockState sets the unlock state of an item or recipe
func (s *Session) SetUnlockState(ctx context.Context, kind domain.EntityKind, id string, unlocked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.entities.Lookup(ctx, kind, id)
	if !ok {
		if kind == domain.KindCraftRecipe {
			return fmt.Errorf(ErrMsgHandleFmt, domain.ErrRecipeNotFound, id)
		}
		return fmt.Errorf(ErrMsgHandleFmt, domain.ErrItemNotFound, id)
	}
	return s.resolver.SetUnlockState(ctx, ref, unlocked)
}

// SetHintState sets an item's hint flag
func (s *Session) SetHintState(ctx context.Context, itemID string, hint bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.SetHintState(ctx, itemID, hint)
}

// RequestHint flags a buildable locked item and returns the hint text
func (s *Session) RequestHint(ctx context.Context) (crafting.Hint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.RequestHint(ctx)
}

// HintAvailable reports whether anything is left to discover
func (s *Session) HintAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.HasHintAvailable()
}

// ==================== Queries ====================

// Items returns every item in catalog order
func (s *Session) Items(ctx context.Context) []crafting.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemViews(ctx, s.entities.AllItems())
}

// Item returns one item
func (s *Session) Item(ctx context.Context, id string) (crafting.ItemView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entities.HasItem(id) {
		return crafting.ItemView{}, fmt.Errorf(ErrMsgHandleFmt, domain.ErrItemNotFound, id)
	}
	return s.resolver.ItemView(ctx, s.entities.GetItem(ctx, id)), nil
}

// ItemsWithKeyword returns every item carrying k
func (s *Session) ItemsWithKeyword(ctx context.Context, k domain.Keyword) []crafting.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemViews(ctx, s.resolver.ItemsWithKeyword(k))
}

// ItemsByLockState returns every item with the given unlock state
func (s *Session) ItemsByLockState(ctx context.Context, unlocked bool) []crafting.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemViews(ctx, s.resolver.ItemsByLockState(unlocked))
}

// Recipes returns every recipe in catalog order
func (s *Session) Recipes(ctx context.Context) []crafting.RecipeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipeViews(ctx, s.entities.AllRecipes())
}

// Recipe returns one recipe
func (s *Session) Recipe(ctx context.Context, id string) (crafting.RecipeView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.catalog.Recipe(id); !ok {
		return crafting.RecipeView{}, fmt.Errorf(ErrMsgHandleFmt, domain.ErrRecipeNotFound, id)
	}
	return s.resolver.RecipeView(ctx, s.entities.GetRecipe(ctx, id)), nil
}

// RecipesByLockState returns every recipe with the given unlock state
func (s *Session) RecipesByLockState(ctx context.Context, unlocked bool) []crafting.RecipeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recipeViews(ctx, s.resolver.RecipesByLockState(unlocked))
}

// RecipesForItem returns the recipes producing and using an item
func (s *Session) RecipesForItem(ctx context.Context, itemID string) (producing, using []crafting.RecipeView, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.entities.HasItem(itemID) {
		return nil, nil, fmt.Errorf(ErrMsgHandleFmt, domain.ErrItemNotFound, itemID)
	}
	return s.recipeViews(ctx, s.resolver.RecipesProducing(ctx, itemID)),
		s.recipeViews(ctx, s.resolver.RecipesUsing(ctx, itemID)), nil
}

// Stats returns progress counters
func (s *Session) Stats() crafting.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolver.Stats()
}

// Tips returns the game tips; defaultsOnly limits them to those shown at start
func (s *Session) Tips(defaultsOnly bool) []domain.GameTip {
	if defaultsOnly {
		return s.catalog.DefaultTips()
	}
	return s.catalog.Tips()
}

func (s *Session) itemViews(ctx context.Context, items []*entity.Item) []crafting.ItemView {
	views := make([]crafting.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, s.resolver.ItemView(ctx, item))
	}
	return views
}

func (s *Session) recipeViews(ctx context.Context, recipes []*entity.Recipe) []crafting.RecipeView {
	views := make([]crafting.RecipeView, 0, len(recipes))
	for _, recipe := range recipes {
		views = append(views, s.resolver.RecipeView(ctx, recipe))
	}
	return views
}
