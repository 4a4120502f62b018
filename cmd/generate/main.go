package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/pageza/larder/backend/internal/client"
	"github.com/pageza/larder/backend/internal/composer"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:      "generate",
		Usage:     "Suggest recipes for the ingredients you have",
		ArgsUsage: "[ingredient ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Value:   "http://localhost:8080",
				Usage:   "Base URL of the Larder API",
				Sources: cli.EnvVars("LARDER_URL"),
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "API key sent to the generation endpoint",
				Sources: cli.EnvVars("LARDER_API_KEY"),
			},
			&cli.StringSliceFlag{
				Name:    "ingredient",
				Aliases: []string{"i"},
				Usage:   "Ingredient you have (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "diet",
				Aliases: []string{"d"},
				Usage:   fmt.Sprintf("Dietary preference (repeatable, one of %v)", composer.DietaryOptions),
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Usage: "easy, medium or hard (default any)",
			},
			&cli.StringFlag{
				Name:  "max-time",
				Usage: "Maximum total time in minutes, e.g. \"30 min\"",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 2 * time.Minute,
				Usage: "Request timeout",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	var draft composer.Draft
	for _, ing := range append(cmd.StringSlice("ingredient"), cmd.Args().Slice()...) {
		draft.AddIngredient(ing)
	}
	for _, label := range cmd.StringSlice("diet") {
		if !composer.IsDietaryOption(label) {
			return fmt.Errorf("unknown dietary preference %q", label)
		}
		if !draft.HasDietary(label) {
			draft.ToggleDietary(label)
		}
	}
	draft.SetDifficulty(cmd.String("difficulty"))
	if d := cmd.String("difficulty"); d != "" && draft.Difficulty != d {
		return fmt.Errorf("invalid difficulty %q", d)
	}
	draft.SetMaxTime(cmd.String("max-time"))

	req, err := draft.Request()
	if errors.Is(err, composer.ErrNoIngredients) {
		return errors.New("Please add at least one ingredient")
	}

	c := client.New(cmd.String("url"), cmd.String("api-key"), &http.Client{Timeout: cmd.Duration("timeout")})
	resp, err := c.Generate(ctx, req)
	if err != nil {
		if client.IsAPIError(err) {
			return fmt.Errorf("Generation failed: %w", err)
		}
		return fmt.Errorf("Failed to generate recipes. Please try again. (%w)", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Found %d recipes in database\n\n%s\n", resp.MatchedFromDatabase, resp.Recipes)
	return nil
}
