package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/internal/composer"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/views"
	"go.uber.org/zap"
)

const (
	msgNoIngredients    = "Please add at least one ingredient"
	msgLoadFailed       = "Failed to load recipes"
	msgGenerationFailed = "Failed to generate recipes. Please try again."
)

// ViewHandler renders the browse and generator pages.
type ViewHandler struct {
	recipes   service.RecipeLister
	generator service.Generator
	images    views.ImageResolver
}

// NewViewHandler creates a new ViewHandler instance. images may be nil.
func NewViewHandler(recipes service.RecipeLister, generator service.Generator, images views.ImageResolver) *ViewHandler {
	return &ViewHandler{recipes: recipes, generator: generator, images: images}
}

// Browse renders the recipe card grid, newest first.
func (h *ViewHandler) Browse(c *gin.Context) {
	ctx := c.Request.Context()
	recipes, err := h.recipes.ListRecipes(ctx)
	if err != nil {
		logger.Error("Error fetching recipes", zap.Error(err))
		page := views.NewBrowsePage(ctx, nil, nil)
		page.Error = msgLoadFailed
		c.HTML(http.StatusInternalServerError, "browse.html", page)
		return
	}
	c.HTML(http.StatusOK, "browse.html", views.NewBrowsePage(ctx, recipes, h.images))
}

// GeneratorForm renders the empty generator form.
func (h *ViewHandler) GeneratorForm(c *gin.Context) {
	c.HTML(http.StatusOK, "generator.html", views.NewGeneratorPage(nil))
}

// GeneratorSubmit applies one form action to the submitted draft: add an
// ingredient, remove one by index, or generate.
func (h *ViewHandler) GeneratorSubmit(c *gin.Context) {
	draft := draftFromForm(c)
	page := views.NewGeneratorPage(draft)

	if idx := c.PostForm("remove"); idx != "" {
		if i, err := strconv.Atoi(idx); err == nil {
			draft.RemoveIngredient(i)
		}
		c.HTML(http.StatusOK, "generator.html", page)
		return
	}

	switch c.PostForm("action") {
	case "add":
		draft.AddIngredient(c.PostForm("ingredient"))
	case "generate":
		status := h.generate(c, draft, &page)
		c.HTML(status, "generator.html", page)
		return
	}
	c.HTML(http.StatusOK, "generator.html", page)
}

func (h *ViewHandler) generate(c *gin.Context, draft *composer.Draft, page *views.GeneratorPage) int {
	req, err := draft.Request()
	if errors.Is(err, composer.ErrNoIngredients) {
		page.Notice, page.NoticeKind = msgNoIngredients, "error"
		return http.StatusOK
	}

	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		logger.Error("Error generating recipes", zap.Error(err))
		status, message := generationErrorStatus(err)
		page.NoticeKind = "error"
		if userFacing(err) {
			page.Notice = "Generation failed: " + message
		} else {
			page.Notice = msgGenerationFailed
		}
		return status
	}

	page.Result = result.Recipes
	page.Notice = fmt.Sprintf("Found %d recipes in database", result.MatchedFromDatabase)
	page.NoticeKind = "success"
	return http.StatusOK
}

// draftFromForm rebuilds the draft carried by the submitted form.
func draftFromForm(c *gin.Context) *composer.Draft {
	draft := &composer.Draft{}
	for _, ing := range c.PostFormArray("ingredients") {
		draft.AddIngredient(ing)
	}
	for _, label := range c.PostFormArray("dietary") {
		if !draft.HasDietary(label) {
			draft.ToggleDietary(label)
		}
	}
	draft.SetDifficulty(c.PostForm("difficulty"))
	draft.SetMaxTime(c.PostForm("maxTime"))
	return draft
}
