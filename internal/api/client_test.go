package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pantrypal/internal/common"
	"pantrypal/internal/logging"
	"pantrypal/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// newRecordingServer captures every request and replies with the given JSON.
func newRecordingServer(t *testing.T, status int, reply string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.Method = r.Method
		rec.Path = r.URL.Path
		rec.Query = r.URL.RawQuery
		b, _ := io.ReadAll(r.Body)
		rec.Body = string(b)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newTestClient(baseURL string) *Client {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewClient(baseURL, time.Second, &staticTokens{token: "T1"}, nil, log)
}

func TestClient_ListIngredients(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `[{"id":1,"name":"milk","location":"fridge"}]`)
	c := newTestClient(srv.URL)

	items, err := c.ListIngredients(context.Background(), "fridge")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/ingredients/", rec.Path)
	assert.Equal(t, "location=fridge", rec.Query)
	require.Len(t, items, 1)
	assert.Equal(t, "milk", items[0].Name)
}

func TestClient_ListIngredients_NoFilter(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `[]`)
	c := newTestClient(srv.URL)

	_, err := c.ListIngredients(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, rec.Query)
}

func TestClient_CreateIngredient(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"id":5,"name":"eggs"}`)
	c := newTestClient(srv.URL)

	in := models.IngredientInput{Name: "eggs", Category: "dairy", Location: "fridge", Quantity: 12, Unit: "pcs"}
	got, err := c.CreateIngredient(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/ingredients/", rec.Path)
	assert.Equal(t, 5, got.ID)

	var sent models.IngredientInput
	require.NoError(t, json.Unmarshal([]byte(rec.Body), &sent))
	assert.Equal(t, in, sent)
}

func TestClient_UpdateAndDeleteIngredient(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"id":5,"name":"eggs"}`)
	c := newTestClient(srv.URL)

	_, err := c.UpdateIngredient(context.Background(), 5, models.IngredientInput{Name: "eggs"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/ingredients/5", rec.Path)

	require.NoError(t, c.DeleteIngredient(context.Background(), 5))
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/ingredients/5", rec.Path)
}

func TestClient_ExpiringSoon(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `[]`)
	c := newTestClient(srv.URL)

	_, err := c.ExpiringSoon(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "/ingredients/expiring/soon", rec.Path)
	assert.Equal(t, "days=3", rec.Query)
}

func TestClient_ShoppingListItems(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `{"id":9,"shopping_list_id":2,"item_name":"bread"}`)
	c := newTestClient(srv.URL)

	item, err := c.AddShoppingItem(context.Background(), 2, models.ShoppingItemInput{ItemName: "bread", Quantity: 1, Unit: "pcs"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/shopping-lists/2/items", rec.Path)
	assert.Equal(t, 9, item.ID)

	_, err = c.UpdateShoppingItem(context.Background(), 9, true)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, rec.Method)
	assert.Equal(t, "/shopping-lists/items/9", rec.Path)
	assert.Equal(t, "is_purchased=true", rec.Query)
	assert.Empty(t, rec.Body, "purchase flag travels as a query parameter")

	require.NoError(t, c.DeleteShoppingItem(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, rec.Method)
	assert.Equal(t, "/shopping-lists/items/9", rec.Path)
}

func TestClient_Recipes(t *testing.T) {
	srv, rec := newRecordingServer(t, http.StatusOK, `[]`)
	c := newTestClient(srv.URL)

	_, err := c.ListRecipes(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "/recipes/", rec.Path)
	assert.Equal(t, "healthy_only=true", rec.Query)

	_, err = c.MatchIngredients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/recipes/match/ingredients", rec.Path)

	require.NoError(t, c.SeedSample(context.Background()))
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/recipes/seed-sample", rec.Path)
}

func TestClient_NotFound(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusNotFound, `{"detail":"Ingredient not found"}`)
	c := newTestClient(srv.URL)

	_, err := c.GetIngredient(context.Background(), 99)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := newTestClient(srv.URL)

	_, err := c.ListIngredients(context.Background(), "")
	require.ErrorIs(t, err, common.ErrUnavailable)
}
