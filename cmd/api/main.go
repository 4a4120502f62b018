package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/api"
	"github.com/pageza/larder/backend/internal/database"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/middleware"
	"github.com/pageza/larder/backend/internal/server"
	"github.com/pageza/larder/backend/internal/service"
	"github.com/pageza/larder/backend/internal/views"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// logger is not configured yet
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	if err := logger.Init(cfg.LogLevel, cfg.Environment.IsProduction()); err != nil {
		logger.Warn("Invalid log configuration, using defaults", zap.Error(err))
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	redisClient, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		// rate limiting is optional
		logger.Warn("Failed to connect to Redis, generation rate limiting disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	var images views.ImageResolver
	if cfg.S3Bucket != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.S3Bucket, cfg.AWSRegion)
		if err != nil {
			logger.Warn("Failed to configure S3, image references used verbatim", zap.Error(err))
		} else {
			images = s3cfg
		}
	}

	recipes := service.NewRecipeService(db)
	chat := service.NewChatClient(cfg.Gateway)

	srv := server.New(cfg, api.Dependencies{
		DB:        db,
		Recipes:   recipes,
		Generator: service.NewGenerationService(recipes, chat),
		Images:    images,
		Limiter:   middleware.NewGenerationRateLimiter(redisClient, cfg.GenerationRateLimit),
	})

	if err := srv.Start(ctx); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
	logger.Info("Server stopped")
}
