package types

// GenerationRequest is the body of POST /api/v1/generate-recipes.
type GenerationRequest struct {
	Ingredients        []string `json:"ingredients"`
	DietaryPreferences []string `json:"dietaryPreferences,omitempty"`
	Filters            *Filters `json:"filters,omitempty"`
}

// Filters narrows the suggestions. Zero values mean "any".
type Filters struct {
	Difficulty string   `json:"difficulty,omitempty"`
	MaxTime    *float64 `json:"maxTime,omitempty"`
}

// GenerationResponse is the success body of the generation endpoint.
type GenerationResponse struct {
	Success             bool   `json:"success"`
	Recipes             string `json:"recipes"`
	MatchedFromDatabase int    `json:"matchedFromDatabase"`
}

// ErrorResponse is the failure body shared by every JSON endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
