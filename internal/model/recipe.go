package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Difficulty is the enumerated effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted difficulty levels in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// IsValid reports whether d is one of the three accepted levels.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func (d Difficulty) String() string {
	return string(d)
}

// Recipe is a row of the externally seeded recipes table. The application only
// reads it.
type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt   time.Time      `gorm:"not null;index" json:"created_at"`
	Name        string         `gorm:"type:text;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Cuisine     *string        `gorm:"type:text" json:"cuisine"`
	Ingredients pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"ingredients"`
	DietaryTags pq.StringArray `gorm:"type:text[];default:'{}'" json:"dietary_tags"`
	PrepTime    int            `gorm:"not null;default:0" json:"prep_time"`
	CookTime    int            `gorm:"not null;default:0" json:"cook_time"`
	Servings    int            `gorm:"not null;default:0" json:"servings"`
	Difficulty  Difficulty     `gorm:"type:text;not null" json:"difficulty"`
	Calories    float64        `gorm:"type:float" json:"calories"`
	Protein     float64        `gorm:"type:float" json:"protein"`
	Carbs       float64        `gorm:"type:float" json:"carbs"`
	Fat         float64        `gorm:"type:float" json:"fat"`
	ImageURL    *string        `gorm:"type:text" json:"image_url,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// TotalTime is prep plus cook time in minutes.
func (r Recipe) TotalTime() int {
	return r.PrepTime + r.CookTime
}

// CuisineName returns the cuisine or "" when unset.
func (r Recipe) CuisineName() string {
	if r.Cuisine == nil {
		return ""
	}
	return *r.Cuisine
}

// Image returns the image reference or "" when unset.
func (r Recipe) Image() string {
	if r.ImageURL == nil {
		return ""
	}
	return *r.ImageURL
}
