package tools

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipepairs/recipe"
	"recipepairs/session"
)

type RecipeLookup struct{ session *session.Session }

func NewRecipeLookup(s *session.Session) *RecipeLookup { return &RecipeLookup{session: s} }

func (t *RecipeLookup) Name() string  { return "recipe_lookup" }
func (t *RecipeLookup) Title() string { return "Lookup Recipe by Name" }
func (t *RecipeLookup) Description() string {
	return "Returns the first recipe whose name contains the given text, with found=false when there is none."
}

func (t *RecipeLookup) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name": {Type: "string"},
		},
		Required: []string{"name"},
	}
}

func (t *RecipeLookup) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"found":  {Type: "boolean"},
			"recipe": recipeSchema(),
		},
		Required: []string{"found"},
	}
}

func (t *RecipeLookup) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	out := struct {
		Found  bool           `json:"found"`
		Recipe *recipe.Recipe `json:"recipe,omitempty"`
	}{}

	r, err := t.session.LookupByName(stringInput(input, "name"))
	switch {
	case errors.Is(err, recipe.ErrRecipeNotFound):
	case err != nil:
		return nil, err
	default:
		out.Found = true
		out.Recipe = &r
	}
	return toMap(out)
}
