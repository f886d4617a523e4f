package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipepairs/recipe"
	"recipepairs/session"
)

type PairingSearch struct{ session *session.Session }

func NewPairingSearch(s *session.Session) *PairingSearch { return &PairingSearch{session: s} }

func (t *PairingSearch) Name() string  { return "pairing_search" }
func (t *PairingSearch) Title() string { return "Search Ingredient Pairings" }
func (t *PairingSearch) Description() string {
	return "Returns the ingredients that recur alongside the given ingredient, most frequent first."
}

func (t *PairingSearch) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredient": {Type: "string"},
		},
		Required: []string{"ingredient"},
	}
}

func (t *PairingSearch) OutputSchema() *jsonschema.Schema {
	minCount := float64(recipe.MinPairCount)
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"pairings": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"ingredient": {Type: "string"},
						"count":      {Type: "integer", Minimum: &minCount},
						"pairs":      {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
					},
					Required: []string{"ingredient", "count", "pairs"},
				},
			},
		},
		Required: []string{"pairings"},
	}
}

func (t *PairingSearch) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	pairings := t.session.SearchPairings(stringInput(input, "ingredient"))
	if pairings == nil {
		// Initialize pairings slice to prevent nil when empty
		pairings = []recipe.PairingResult{}
	}
	return toMap(struct {
		Pairings []recipe.PairingResult `json:"pairings"`
	}{Pairings: pairings})
}
