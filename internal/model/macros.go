package model

// Macros represents nutrition information for a recipe.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Macros returns the recipe's nutrition figures.
func (r Recipe) Macros() Macros {
	return Macros{
		Calories: r.Calories,
		Protein:  r.Protein,
		Carbs:    r.Carbs,
		Fat:      r.Fat,
	}
}
