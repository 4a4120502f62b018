// Package seed loads recipe records from JSON into the recipes table. It is
// the only write path to the catalog.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pageza/larder/backend/internal/model"
	"gorm.io/gorm"
)

// Record is one recipe in a seed file.
type Record struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Cuisine     string   `json:"cuisine,omitempty"`
	Ingredients []string `json:"ingredients"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	PrepTime    int      `json:"prep_time"`
	CookTime    int      `json:"cook_time"`
	Servings    int      `json:"servings"`
	Difficulty  string   `json:"difficulty"`
	Calories    float64  `json:"calories"`
	Protein     float64  `json:"protein"`
	Carbs       float64  `json:"carbs"`
	Fat         float64  `json:"fat"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// Load decodes a JSON array of records and validates each one.
func Load(r io.Reader) ([]model.Recipe, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	now := time.Now().UTC()
	recipes := make([]model.Recipe, 0, len(records))
	var errs []error
	for i, rec := range records {
		recipe, err := rec.toRecipe(now.Add(time.Duration(i) * time.Millisecond))
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d (%q): %w", i, rec.Name, err))
			continue
		}
		recipes = append(recipes, recipe)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return recipes, nil
}

func (rec Record) toRecipe(createdAt time.Time) (model.Recipe, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return model.Recipe{}, errors.New("name is required")
	}
	difficulty := model.Difficulty(strings.ToLower(rec.Difficulty))
	if !difficulty.IsValid() {
		return model.Recipe{}, fmt.Errorf("invalid difficulty %q", rec.Difficulty)
	}
	for field, v := range map[string]float64{
		"prep_time": float64(rec.PrepTime),
		"cook_time": float64(rec.CookTime),
		"servings":  float64(rec.Servings),
		"calories":  rec.Calories,
		"protein":   rec.Protein,
		"carbs":     rec.Carbs,
		"fat":       rec.Fat,
	} {
		if v < 0 {
			return model.Recipe{}, fmt.Errorf("%s must not be negative", field)
		}
	}

	id := uuid.New()
	if rec.ID != "" {
		parsed, err := uuid.Parse(rec.ID)
		if err != nil {
			return model.Recipe{}, fmt.Errorf("invalid id: %w", err)
		}
		id = parsed
	}

	recipe := model.Recipe{
		ID:          id,
		CreatedAt:   createdAt,
		Name:        rec.Name,
		Description: rec.Description,
		Ingredients: pq.StringArray(append([]string{}, rec.Ingredients...)),
		DietaryTags: pq.StringArray(append([]string{}, rec.DietaryTags...)),
		PrepTime:    rec.PrepTime,
		CookTime:    rec.CookTime,
		Servings:    rec.Servings,
		Difficulty:  difficulty,
		Calories:    rec.Calories,
		Protein:     rec.Protein,
		Carbs:       rec.Carbs,
		Fat:         rec.Fat,
	}
	if rec.Cuisine != "" {
		cuisine := rec.Cuisine
		recipe.Cuisine = &cuisine
	}
	if rec.ImageURL != "" {
		image := rec.ImageURL
		recipe.ImageURL = &image
	}
	return recipe, nil
}

// Insert writes recipes in one transaction. Existing IDs are skipped when
// skipExisting is set, otherwise they fail the whole batch.
func Insert(ctx context.Context, db *gorm.DB, recipes []model.Recipe, skipExisting bool) (int, error) {
	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recipes {
			if skipExisting {
				var count int64
				if err := tx.Model(&model.Recipe{}).Where("id = ?", recipes[i].ID).Count(&count).Error; err != nil {
					return err
				}
				if count > 0 {
					continue
				}
			}
			if err := tx.Create(&recipes[i]).Error; err != nil {
				return fmt.Errorf("failed to insert %q: %w", recipes[i].Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
