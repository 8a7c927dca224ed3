package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftboard/internal/catalog"
	"github.com/osse101/craftboard/internal/crafting"
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/session"
	"github.com/osse101/craftboard/internal/storage"
)

func newTestSession(t *testing.T) *session.Session {
	t.Helper()

	cat, err := catalog.New(catalog.Document{
		Items: []domain.ItemDefinition{
			{ID: "wood", DisplayName: "Wood", Keywords: []domain.Keyword{domain.KeywordBasic}},
			{ID: "stone", DisplayName: "Stone", Keywords: []domain.Keyword{domain.KeywordBasic}},
			{ID: "stick", DisplayName: "Stick"},
			{ID: "torch", DisplayName: "Torch"},
		},
		Recipes: []domain.RecipeDefinition{
			{
				ID:          "make_stick",
				Ingredients: []domain.RecipeRequirement{{ItemID: "wood", Count: 1}, {ItemID: "stone", Count: 1}},
				Products:    []string{"stick"},
			},
			{
				ID:          "make_torch",
				Ingredients: []domain.RecipeRequirement{{ItemID: "stick", Count: 1}, {ItemID: "wood", Count: 1}},
				Products:    []string{"torch"},
			},
		},
		Tips: []domain.GameTip{
			{ID: "drag", Title: "Drag", Tip: "Drop one item onto another", Default: true},
			{ID: "undo", Title: "Undo", Tip: "Press recycle again to undo"},
		},
	})
	require.NoError(t, err)

	s, err := session.New(context.Background(), session.Options{
		Catalog:  cat,
		Store:    storage.NewMemoryStore(),
		Host:     session.NewHeadlessHost(),
		Bus:      event.NewMemoryBus(),
		Resolver: crafting.Options{DepletionEnabled: true},
	})
	require.NoError(t, err)
	return s
}

// newTestRouter mounts the game handlers the way the server does
func newTestRouter(game Game) http.Handler {
	InitValidator()

	boards := NewBoardHandler(game)
	r := chi.NewRouter()
	r.Get("/items", HandleListItems(game))
	r.Get("/items/{id}", HandleGetItem(game))
	r.Get("/items/{id}/recipes", HandleGetItemRecipes(game))
	r.Get("/recipes", HandleListRecipes(game))
	r.Get("/recipes/{id}", HandleGetRecipe(game))
	r.Get("/board", boards.GetBoard)
	r.Post("/board/spawn", boards.Spawn)
	r.Post("/board/move", boards.Move)
	r.Post("/board/combine", boards.Combine)
	r.Post("/board/recycle", boards.Recycle)
	r.Delete("/board/{handle}", boards.Remove)
	r.Get("/hints", HandleGetHintStatus(game))
	r.Post("/hints", HandleRequestHint(game))
	r.Get("/stats", HandleGetStats(game))
	r.Get("/tips", HandleGetTips(game))
	r.Post("/admin/reset", HandleReset(game))
	r.Post("/admin/unlock", HandleSetUnlock(game))
	r.Post("/admin/hint", HandleSetHint(game))
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func spawn(t *testing.T, h http.Handler, itemID string, x, y float64) domain.Handle {
	t.Helper()
	w := doRequest(t, h, http.MethodPost, "/board/spawn", SpawnRequest{ItemID: itemID, X: x, Y: y})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[SpawnResponse](t, w).Handle
}
