package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig() *config.Config {
	return &config.Config{DBDriver: "sqlite", DatabaseURL: "file::memory:?cache=shared"}
}

func TestOpenWithoutURL(t *testing.T) {
	db, err := Open(context.Background(), &config.Config{DBDriver: "postgres"})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.NoError(t, Close(db))
	assert.Error(t, HealthCheck(context.Background(), db))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{DBDriver: "mysql", DatabaseURL: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestRunMigrationsSQLite(t *testing.T) {
	db, err := Open(context.Background(), sqliteConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, RunMigrations(db))
	// second run is a no-op
	require.NoError(t, RunMigrations(db))
	require.NoError(t, HealthCheck(context.Background(), db))

	var applied int64
	require.NoError(t, db.Table("migrations").Count(&applied).Error)
	assert.Equal(t, int64(1), applied)

	cuisine := "Italian"
	recipe := model.Recipe{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Name:        "Pesto Pasta",
		Cuisine:     &cuisine,
		Ingredients: pq.StringArray{"pasta", "basil", "pine nuts"},
		DietaryTags: pq.StringArray{"Vegetarian"},
		Difficulty:  model.DifficultyEasy,
		PrepTime:    10,
		CookTime:    12,
		Servings:    2,
		Calories:    540,
	}
	require.NoError(t, db.Create(&recipe).Error)

	var got model.Recipe
	require.NoError(t, db.First(&got, "id = ?", recipe.ID).Error)
	assert.Equal(t, recipe.Name, got.Name)
	assert.Equal(t, []string{"pasta", "basil", "pine nuts"}, []string(got.Ingredients))
	assert.Equal(t, "Italian", got.CuisineName())

	bad := recipe
	bad.ID = uuid.New()
	bad.Difficulty = "impossible"
	assert.Error(t, db.Create(&bad).Error)
}

func TestSplitStatements(t *testing.T) {
	stmts := splitStatements("CREATE TABLE a (x INT);\n\n  CREATE INDEX i ON a (x);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a (x)"}, stmts)
}

func TestNewRedisClientDisabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClientBadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), &config.Config{RedisURL: "://nope"})
	assert.Error(t, err)
}
