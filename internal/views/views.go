// Package views renders the browse and generator pages.
package views

import (
	"context"
	"embed"
	"html/template"
	"strconv"

	"github.com/pageza/larder/backend/internal/composer"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/model"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFiles, "templates/*.html"))
}

// difficultyStyles maps each difficulty to its badge class.
var difficultyStyles = map[model.Difficulty]string{
	model.DifficultyEasy:   "badge-easy",
	model.DifficultyMedium: "badge-medium",
	model.DifficultyHard:   "badge-hard",
}

// DifficultyStyle returns the badge class for d, or the default style.
func DifficultyStyle(d model.Difficulty) string {
	if style, ok := difficultyStyles[d]; ok {
		return style
	}
	return "badge-default"
}

// maxCardTags is how many dietary tags a card shows.
const maxCardTags = 2

// ImageResolver turns a stored image reference into a browser-loadable URL.
type ImageResolver interface {
	ResolveImageURL(ctx context.Context, ref string) (string, error)
}

// Card is the display form of one recipe on the browse page.
type Card struct {
	Name            string
	Description     string
	Difficulty      string
	DifficultyClass string
	Cuisine         string
	Tags            []string
	TotalTime       int
	Servings        int
	Calories        string
	ImageURL        string
}

// NewCard builds the card for r. resolver may be nil.
func NewCard(ctx context.Context, r model.Recipe, resolver ImageResolver) Card {
	tags := []string(r.DietaryTags)
	if len(tags) > maxCardTags {
		tags = tags[:maxCardTags]
	}

	image := r.Image()
	if image != "" && resolver != nil {
		resolved, err := resolver.ResolveImageURL(ctx, image)
		if err != nil {
			logger.Warn("Failed to resolve recipe image", zap.String("recipe", r.Name), zap.Error(err))
			image = ""
		} else {
			image = resolved
		}
	}

	return Card{
		Name:            r.Name,
		Description:     r.Description,
		Difficulty:      r.Difficulty.String(),
		DifficultyClass: DifficultyStyle(r.Difficulty),
		Cuisine:         r.CuisineName(),
		Tags:            tags,
		TotalTime:       r.TotalTime(),
		Servings:        r.Servings,
		Calories:        strconv.FormatFloat(r.Calories, 'f', -1, 64),
		ImageURL:        image,
	}
}

// BrowsePage is the data for browse.html.
type BrowsePage struct {
	Title  string
	Active string
	Cards  []Card
	Error  string
}

// NewBrowsePage builds the page for recipes in the given order.
func NewBrowsePage(ctx context.Context, recipes []model.Recipe, resolver ImageResolver) BrowsePage {
	cards := make([]Card, len(recipes))
	for i, r := range recipes {
		cards[i] = NewCard(ctx, r, resolver)
	}
	return BrowsePage{Title: "Browse", Active: "browse", Cards: cards}
}

// GeneratorPage is the data for generator.html.
type GeneratorPage struct {
	Title        string
	Active       string
	Draft        *composer.Draft
	Options      []string
	Difficulties []model.Difficulty
	Notice       string
	// NoticeKind is "error" or "success".
	NoticeKind string
	Result     string
}

// NewGeneratorPage builds the form page for draft.
func NewGeneratorPage(draft *composer.Draft) GeneratorPage {
	if draft == nil {
		draft = &composer.Draft{}
	}
	return GeneratorPage{
		Title:        "Generator",
		Active:       "generator",
		Draft:        draft,
		Options:      composer.DietaryOptions,
		Difficulties: model.Difficulties,
	}
}
