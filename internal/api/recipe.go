package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/model"
	"github.com/pageza/larder/backend/internal/service"
	"go.uber.org/zap"
)

// RecipeHandler serves the JSON recipe listing.
type RecipeHandler struct {
	recipes service.RecipeLister
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(recipes service.RecipeLister) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// ListRecipes handles GET /api/v1/recipes, newest first.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipes"})
		return
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}
