package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipepairs/recipe"
	"recipepairs/session"
)

type RecipeSearch struct{ session *session.Session }

func NewRecipeSearch(s *session.Session) *RecipeSearch { return &RecipeSearch{session: s} }

func (t *RecipeSearch) Name() string  { return "recipe_search" }
func (t *RecipeSearch) Title() string { return "Search Recipes by Ingredient" }
func (t *RecipeSearch) Description() string {
	return "Returns recipes with an ingredient containing the given text. An empty ingredient returns every recipe."
}

func (t *RecipeSearch) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredient": {Type: "string"},
		},
	}
}

func (t *RecipeSearch) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"recipes": {
				Type:  "array",
				Items: recipeSchema(),
			},
		},
		Required: []string{"recipes"},
	}
}

func (t *RecipeSearch) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	recipes := t.session.SearchByIngredient(stringInput(input, "ingredient"))
	if recipes == nil {
		recipes = []recipe.Recipe{}
	}
	return toMap(struct {
		Recipes []recipe.Recipe `json:"recipes"`
	}{Recipes: recipes})
}
