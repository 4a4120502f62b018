package service

import (
	"context"

	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/metrics"
	"github.com/pageza/larder/backend/internal/types"
	"go.uber.org/zap"
)

// GenerationResult is the outcome of one successful generation.
type GenerationResult struct {
	Recipes string
	// MatchedFromDatabase is the number of catalog rows sent as context,
	// not the number the model actually used.
	MatchedFromDatabase int
}

// GenerationService grounds a chat completion in the recipe catalog.
type GenerationService struct {
	recipes RecipeFetcher
	chat    ChatCompleter
}

// NewGenerationService creates a new GenerationService instance
func NewGenerationService(recipes RecipeFetcher, chat ChatCompleter) *GenerationService {
	return &GenerationService{recipes: recipes, chat: chat}
}

// Generate reads the whole catalog, builds the prompts and makes exactly one
// gateway call.
func (s *GenerationService) Generate(ctx context.Context, req types.GenerationRequest) (*GenerationResult, error) {
	logger.Info("Generating recipes",
		zap.Strings("ingredients", req.Ingredients),
		zap.Strings("dietary_preferences", req.DietaryPreferences),
		zap.Any("filters", req.Filters))

	catalog, err := s.recipes.FetchAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	metrics.CatalogSize.Set(float64(len(catalog)))

	messages := []Message{
		{Role: "system", Content: SystemPrompt(BuildContextBlock(catalog))},
		{Role: "user", Content: UserPrompt(req)},
	}

	text, err := s.chat.CompleteChat(ctx, messages)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Generated recipes", zap.Int("length", len(text)))
	return &GenerationResult{Recipes: text, MatchedFromDatabase: len(catalog)}, nil
}
