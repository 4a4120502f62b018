package service

import (
	"context"

	"github.com/pageza/larder/backend/internal/model"
	"github.com/pageza/larder/backend/internal/types"
)

// RecipeFetcher reads the whole catalog for prompt context.
type RecipeFetcher interface {
	FetchAllRecipes(ctx context.Context) ([]model.Recipe, error)
}

// RecipeLister reads the catalog in display order.
type RecipeLister interface {
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
}

// ChatCompleter sends one chat completion request and returns the reply text.
type ChatCompleter interface {
	CompleteChat(ctx context.Context, messages []Message) (string, error)
}

// Generator turns a generation request into model output.
type Generator interface {
	Generate(ctx context.Context, req types.GenerationRequest) (*GenerationResult, error)
}
