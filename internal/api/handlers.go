package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/internal/database"
	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/views"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the services the routes are wired to.
type Dependencies struct {
	DB        *gorm.DB
	Recipes   service.RecipeLister
	Generator service.Generator
	// Images may be nil, in which case image references are used verbatim.
	Images views.ImageResolver
	// Limiter may be nil to disable local rate limiting of generation.
	Limiter *middleware.RateLimiter
}

// RegisterRoutes registers all API and page routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	router.SetHTMLTemplate(views.Templates())

	health := &HealthHandler{db: deps.DB}
	router.GET("/health", health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := NewViewHandler(deps.Recipes, deps.Generator, deps.Images)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/browse")
	})
	router.GET("/browse", pages.Browse)
	router.GET("/generator", pages.GeneratorForm)
	router.POST("/generator", pages.GeneratorSubmit)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.CORS())

	generate := NewGenerateHandler(deps.Generator)
	v1.POST("/generate-recipes", deps.Limiter.Middleware(), generate.Generate)
	v1.OPTIONS("/generate-recipes", generate.Preflight)

	recipes := NewRecipeHandler(deps.Recipes)
	v1.GET("/recipes", recipes.ListRecipes)
	v1.OPTIONS("/recipes", generate.Preflight)
}

// HealthHandler reports process and store health.
type HealthHandler struct {
	db *gorm.DB
}

// Check returns the health status of the API. The store being unreachable or
// unconfigured is reported but does not fail the check.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "not configured"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		dbStatus = "ok"
		if err := database.HealthCheck(ctx, h.db); err != nil {
			dbStatus = "unavailable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Larder API is running",
		"version":  "v1.0.0",
		"database": dbStatus,
	})
}
