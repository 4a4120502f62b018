// Package composer holds the generator form state and turns it into a
// generation request.
package composer

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/pageza/larder/backend/internal/model"
	"github.com/pageza/larder/backend/internal/types"
)

// ErrNoIngredients is returned by Request when the ingredient list is empty.
var ErrNoIngredients = errors.New("at least one ingredient is required")

// DietaryOptions are the selectable dietary labels in display order.
var DietaryOptions = []string{
	"Vegetarian",
	"Vegan",
	"Gluten-Free",
	"Dairy-Free",
	"Keto",
	"Paleo",
	"Low-Carb",
	"Nut-Free",
}

// Draft is the in-progress generation request. The zero value is an empty form.
type Draft struct {
	Ingredients []string
	// Dietary holds the selected labels in selection order.
	Dietary    []string
	Difficulty string
	MaxTime    string
}

// AddIngredient appends the trimmed text. Blank input is ignored and
// duplicates are kept.
func (d *Draft) AddIngredient(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	d.Ingredients = append(d.Ingredients, text)
}

// RemoveIngredient drops the ingredient at index i. Out-of-range indexes are
// ignored.
func (d *Draft) RemoveIngredient(i int) {
	if i < 0 || i >= len(d.Ingredients) {
		return
	}
	d.Ingredients = append(d.Ingredients[:i:i], d.Ingredients[i+1:]...)
}

// ToggleDietary selects or deselects one of DietaryOptions.
func (d *Draft) ToggleDietary(label string) {
	if !IsDietaryOption(label) {
		return
	}
	for i, selected := range d.Dietary {
		if selected == label {
			d.Dietary = append(d.Dietary[:i:i], d.Dietary[i+1:]...)
			return
		}
	}
	d.Dietary = append(d.Dietary, label)
}

// HasDietary reports whether label is selected.
func (d *Draft) HasDietary(label string) bool {
	for _, selected := range d.Dietary {
		if selected == label {
			return true
		}
	}
	return false
}

// SetDifficulty accepts "" for any difficulty or one of the recipe levels.
// Other values are ignored.
func (d *Draft) SetDifficulty(level string) {
	if level == "" || model.Difficulty(level).IsValid() {
		d.Difficulty = level
	}
}

// SetMaxTime stores the raw max-time text.
func (d *Draft) SetMaxTime(text string) {
	d.MaxTime = text
}

// MaxTimeMinutes parses the leading integer of the max-time text. It returns
// false when there is none.
func (d *Draft) MaxTimeMinutes() (int, bool) {
	s := strings.TrimSpace(d.MaxTime)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || (end == 0 && (s[0] == '-' || s[0] == '+'))) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Request builds the generation request. Filters are always sent, matching the
// form which always shows them.
func (d *Draft) Request() (types.GenerationRequest, error) {
	if len(d.Ingredients) == 0 {
		return types.GenerationRequest{}, ErrNoIngredients
	}

	filters := &types.Filters{Difficulty: d.Difficulty}
	if n, ok := d.MaxTimeMinutes(); ok {
		minutes := float64(n)
		filters.MaxTime = &minutes
	}

	return types.GenerationRequest{
		Ingredients:        append([]string(nil), d.Ingredients...),
		DietaryPreferences: append([]string{}, d.Dietary...),
		Filters:            filters,
	}, nil
}

// IsDietaryOption reports whether label is one of DietaryOptions.
func IsDietaryOption(label string) bool {
	for _, opt := range DietaryOptions {
		if opt == label {
			return true
		}
	}
	return false
}
