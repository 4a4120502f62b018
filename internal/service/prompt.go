package service

import (
	"strconv"
	"strings"

	"github.com/pageza/larder/backend/internal/model"
	"github.com/pageza/larder/backend/internal/types"
)

const recordSeparator = "\n\n---\n\n"

const systemPromptTemplate = `You are a culinary AI assistant with access to a recipe database. Analyze the available ingredients and dietary preferences, then suggest suitable recipes from the database or create new recipes inspired by them.

Available recipes in database:
%CONTEXT%

When suggesting recipes:
1. Prioritize recipes from the database that match the ingredients
2. Consider dietary preferences and filters
3. If no exact match, suggest creative recipes inspired by the database
4. Always provide detailed nutritional information
5. Include clear step-by-step instructions`

const userPromptRequest = `Please suggest 3-5 recipes that I can make with these ingredients. For each recipe, provide:
- Name
- Brief description
- List of ingredients needed
- Step-by-step instructions
- Prep and cook time
- Difficulty level
- Nutritional information (calories, protein, carbs, fat)
- Cuisine type
- Relevant dietary tags`

// FormatRecipe renders one catalog record for the context block.
func FormatRecipe(r model.Recipe) string {
	cuisine := r.CuisineName()
	if cuisine == "" {
		cuisine = "not specified"
	}
	tags := "none"
	if len(r.DietaryTags) > 0 {
		tags = strings.Join(r.DietaryTags, ", ")
	}

	m := r.Macros()
	var b strings.Builder
	b.WriteString("Recipe: " + r.Name + "\n")
	b.WriteString("Ingredients: " + strings.Join(r.Ingredients, ", ") + "\n")
	b.WriteString("Difficulty: " + r.Difficulty.String() + "\n")
	b.WriteString("Cuisine: " + cuisine + "\n")
	b.WriteString("Dietary Tags: " + tags + "\n")
	b.WriteString("Prep Time: " + strconv.Itoa(r.PrepTime) + " minutes\n")
	b.WriteString("Cook Time: " + strconv.Itoa(r.CookTime) + " minutes\n")
	b.WriteString("Description: " + r.Description + "\n")
	b.WriteString("Calories: " + formatNumber(m.Calories) + "\n")
	b.WriteString("Protein: " + formatNumber(m.Protein) + "g\n")
	b.WriteString("Carbs: " + formatNumber(m.Carbs) + "g\n")
	b.WriteString("Fat: " + formatNumber(m.Fat) + "g")
	return b.String()
}

// BuildContextBlock renders every record and joins them with the record separator.
func BuildContextBlock(recipes []model.Recipe) string {
	parts := make([]string, len(recipes))
	for i, r := range recipes {
		parts[i] = FormatRecipe(r)
	}
	return strings.Join(parts, recordSeparator)
}

// SystemPrompt embeds the context block in the assistant instructions.
func SystemPrompt(contextBlock string) string {
	return strings.Replace(systemPromptTemplate, "%CONTEXT%", contextBlock, 1)
}

// UserPrompt states the user's ingredients, preferences and filters. The
// preference and filter lines are left blank when absent.
func UserPrompt(req types.GenerationRequest) string {
	var prefs, filters string
	if len(req.DietaryPreferences) > 0 {
		prefs = "Dietary preferences: " + strings.Join(req.DietaryPreferences, ", ")
	}
	if f := req.Filters; f != nil {
		difficulty := "any"
		if f.Difficulty != "" {
			difficulty = f.Difficulty
		}
		maxTime := "any"
		if f.MaxTime != nil && *f.MaxTime != 0 {
			maxTime = formatNumber(*f.MaxTime)
		}
		filters = "Filters: Difficulty=" + difficulty + ", Max Time=" + maxTime + " minutes"
	}

	return "I have these ingredients: " + strings.Join(req.Ingredients, ", ") + "\n" +
		prefs + "\n" +
		filters + "\n\n" +
		userPromptRequest
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
