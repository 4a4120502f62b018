package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/metrics"
	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/types"
	"go.uber.org/zap"
)

const (
	msgUpstreamRateLimited = "Rate limit exceeded. Please try again in a moment."
	msgPaymentRequired     = "AI service requires payment. Please contact support."
)

// GenerateHandler serves the generation endpoint.
type GenerateHandler struct {
	generator service.Generator
}

// NewGenerateHandler creates a new GenerateHandler instance
func NewGenerateHandler(generator service.Generator) *GenerateHandler {
	return &GenerateHandler{generator: generator}
}

// Generate handles POST /api/v1/generate-recipes
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Ingredients == nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ingredients is required"})
		return
	}

	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		status, message := generationErrorStatus(err)
		metrics.GenerationsTotal.WithLabelValues(outcomeLabel(status)).Inc()
		logger.Error("Error in generate-recipes",
			zap.Error(err),
			zap.Int("status", status),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)))
		c.JSON(status, gin.H{"error": message})
		return
	}

	metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, types.GenerationResponse{
		Success:             true,
		Recipes:             result.Recipes,
		MatchedFromDatabase: result.MatchedFromDatabase,
	})
}

// Preflight answers CORS preflight requests with an empty body. Browsers
// always send Origin, in which case the CORS middleware has already answered.
func (h *GenerateHandler) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", strings.Join(middleware.CORSAllowedHeaders, ", "))
	c.Status(http.StatusNoContent)
}

// generationErrorStatus maps a generation failure to its response status and
// message. Only upstream 429 and 402 keep their status; everything else is a 500.
func generationErrorStatus(err error) (int, string) {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		switch upstream.StatusCode {
		case http.StatusTooManyRequests:
			return http.StatusTooManyRequests, msgUpstreamRateLimited
		case http.StatusPaymentRequired:
			return http.StatusPaymentRequired, msgPaymentRequired
		}
		return http.StatusInternalServerError, upstream.Error()
	}
	return http.StatusInternalServerError, err.Error()
}

// userFacing reports whether err carries a message meant for the user, as
// opposed to a transport or cancellation failure.
func userFacing(err error) bool {
	var upstream *service.UpstreamError
	return errors.As(err, &upstream) ||
		errors.Is(err, service.ErrMissingAPIKey) ||
		errors.Is(err, service.ErrStoreNotConfigured) ||
		errors.Is(err, service.ErrNoChoices)
}

func outcomeLabel(status int) string {
	switch status {
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusPaymentRequired:
		return "payment_required"
	}
	return "error"
}
