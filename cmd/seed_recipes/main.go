package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pageza/larder/backend/config"
	"github.com/pageza/larder/backend/internal/database"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/seed"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	cmd := &cli.Command{
		Name:  "seed_recipes",
		Usage: "Load recipes from a JSON file into the recipe store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "data/recipes.json",
				Usage:   "Path to a JSON array of recipes",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Value: true,
				Usage: "Apply schema migrations before seeding",
			},
			&cli.BoolFlag{
				Name:  "skip-existing",
				Usage: "Skip records whose id is already present instead of failing",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.String("file")
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %q: %w", path, err)
			}
			defer f.Close()

			recipes, err := seed.Load(f)
			if err != nil {
				return err
			}

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

			if cmd.Bool("migrate") {
				if err := database.RunMigrations(db); err != nil {
					return err
				}
			}

			n, err := seed.Insert(ctx, db, recipes, cmd.Bool("skip-existing"))
			if err != nil {
				return err
			}
			logger.Info("Seeded recipes", zap.Int("inserted", n), zap.Int("total", len(recipes)))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
