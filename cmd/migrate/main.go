package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/database"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "migrate",
		Usage: "Apply the recipe store schema to DATABASE_URL",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(ctx, cfg)
			if err != nil {
				return err
			}
			if db == nil {
				return fmt.Errorf("DATABASE_URL environment variable is not set")
			}
			defer func() { _ = database.Close(db) }()

			if err := database.RunMigrations(db); err != nil {
				return err
			}
			logger.Info("Migrations complete", zap.String("driver", cfg.DBDriver))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
