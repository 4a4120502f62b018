package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pageza/larder/backend/internal/model"
	"gorm.io/gorm"
)

// ErrStoreNotConfigured is returned when no database connection was configured.
var ErrStoreNotConfigured = errors.New("recipe store credentials are not configured")

// RecipeService reads the recipes table.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance. db may be nil, in
// which case every read fails with ErrStoreNotConfigured.
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// FetchAllRecipes returns every recipe row, unordered and unfiltered.
func (s *RecipeService) FetchAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}
	return recipes, nil
}

// ListRecipes returns every recipe, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	if s.db == nil {
		return nil, ErrStoreNotConfigured
	}
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}
