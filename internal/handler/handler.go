package handler

import (
	"context"

	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/session"
)

// Game is the session surface driven by the HTTP API
type Game interface {
	// Board
	Spawn(ctx context.Context, itemID string, at domain.Position) (domain.Handle, error)
	Move(ctx context.Context, handle domain.Handle, at domain.Position) error
	Remove(ctx context.Context, handle domain.Handle) error
	Combine(ctx context.Context, first, second domain.Handle) (crafting.CombineResult, error)
	MassClear(ctx context.Context) []domain.BoardElement
	Undo(ctx context.Context) []domain.BoardElement
	RecycleAction(ctx context.Context) []domain.BoardElement
	ClearUnusable(ctx context.Context) []domain.BoardElement
	Board() session.BoardView

	// Progress
	Reset(ctx context.Context)
	SetUnlockState(ctx context.Context, kind domain.EntityKind, id string, unlocked bool) error
	SetHintState(ctx context.Context, itemID string, hint bool) error
	RequestHint(ctx context.Context) (crafting.Hint, error)
	HintAvailable() bool
	Stats() crafting.Stats
	Tips(defaultsOnly bool) []domain.GameTip

	// Queries
	Items(ctx context.Context) []crafting.ItemView
	Item(ctx context.Context, id string) (crafting.ItemView, error)
	ItemsWithKeyword(ctx context.Context, k domain.Keyword) []crafting.ItemView
	ItemsByLockState(ctx context.Context, unlocked bool) []crafting.ItemView
	Recipes(ctx context.Context) []crafting.RecipeView
	Recipe(ctx context.Context, id string) (crafting.RecipeView, error)
	RecipesByLockState(ctx context.Context, unlocked bool) []crafting.RecipeView
	RecipesForItem(ctx context.Context, itemID string) (producing, using []crafting.RecipeView, err error)
}

var _ Game = (*session.Session)(nil)
