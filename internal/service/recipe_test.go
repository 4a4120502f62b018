package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeServiceNotConfigured(t *testing.T) {
	svc := service.NewRecipeService(nil)

	_, err := svc.FetchAllRecipes(context.Background())
	assert.ErrorIs(t, err, service.ErrStoreNotConfigured)

	_, err = svc.ListRecipes(context.Background())
	assert.ErrorIs(t, err, service.ErrStoreNotConfigured)
}

func TestListRecipesNewestFirst(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	testhelpers.SeedRecipes(t, db,
		testhelpers.NewRecipe("Middle", base.Add(time.Hour)),
		testhelpers.NewRecipe("Oldest", base),
		testhelpers.NewRecipe("Newest", base.Add(2*time.Hour)),
	)

	svc := service.NewRecipeService(db)
	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)

	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Newest", "Middle", "Oldest"}, names)
}

func TestListRecipesEmpty(t *testing.T) {
	svc := service.NewRecipeService(testhelpers.NewSQLiteDB(t))
	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestFetchAllRecipes(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	testhelpers.SeedRecipes(t, db,
		testhelpers.NewRecipe("One", time.Now()),
		testhelpers.NewRecipe("Two", time.Now()),
	)

	recipes, err := service.NewRecipeService(db).FetchAllRecipes(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, 2)
}

func TestFetchAllRecipesCancelled(t *testing.T) {
	svc := service.NewRecipeService(testhelpers.NewSQLiteDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchAllRecipes(ctx)
	assert.Error(t, err)
}
