package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/pageza/larder/backend/internal/mocks"
	"github.com/pageza/larder/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListRecipesJSON(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	base := time.Now().Add(-time.Hour)
	testhelpers.SeedRecipes(t, db,
		testhelpers.NewRecipe("Older", base),
		testhelpers.NewRecipe("Newer", base.Add(time.Minute)),
	)
	router := setupRouter(t, db, "http://unused.invalid", "")

	w := get(router, "/api/v1/recipes")
	require.Equal(t, http.StatusOK, w.Code)

	recipes, ok := decodeBody(t, w)["recipes"].([]any)
	require.True(t, ok)
	require.Len(t, recipes, 2)
	first := recipes[0].(map[string]any)
	assert.Equal(t, "Newer", first["name"])
	assert.Equal(t, []any{"salt", "pepper"}, first["ingredients"])
}

func TestListRecipesJSONEmpty(t *testing.T) {
	router := setupRouter(t, testhelpers.NewSQLiteDB(t), "http://unused.invalid", "")
	w := get(router, "/api/v1/recipes")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipes":[]}`, w.Body.String())
}

func TestListRecipesJSONFailure(t *testing.T) {
	store := new(mocks.MockRecipeStore)
	store.On("ListRecipes", mock.Anything).Return(nil, assert.AnError)
	router := setupRouterWith(Dependencies{Recipes: store, Generator: new(mocks.MockGenerator)})

	w := get(router, "/api/v1/recipes")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to load recipes"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	router := setupRouter(t, testhelpers.NewSQLiteDB(t), "http://unused.invalid", "")
	w := get(router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "ok", body["database"])

	router = setupRouter(t, nil, "http://unused.invalid", "")
	assert.Equal(t, "not configured", decodeBody(t, get(router, "/health"))["database"])
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupRouter(t, nil, "http://unused.invalid", "")
	w := get(router, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "larder_")
}
