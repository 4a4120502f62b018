package mocks

import (
	"context"

	"github.com/pageza/larder/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockRecipeStore is a mock implementation of the recipe store reads
type MockRecipeStore struct {
	mock.Mock
}

// FetchAllRecipes mocks the FetchAllRecipes method
func (m *MockRecipeStore) FetchAllRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeStore) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}
