package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

type Tool interface {
	Name() string
	Title() string
	Description() string
	InputSchema() *jsonschema.Schema
	OutputSchema() *jsonschema.Schema
	Run(ctx context.Context, input map[string]any) (output map[string]any, err error)
}

type Call struct {
	Name  string         `json:"name"`
	Input map[string]any `json:"input"`
}

// stringInput returns the trimmed string value of key, or "" when missing or not a string.
func stringInput(input map[string]any, key string) string {
	return strings.TrimSpace(rawStringInput(input, key))
}

// rawStringInput returns the string value of key exactly as given.
func rawStringInput(input map[string]any, key string) string {
	s, _ := input[key].(string)
	return s
}

// toMap marshals v -> map[string]any to keep outputs uniform
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func recipeSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"number":       {Type: "integer"},
			"name":         {Type: "string"},
			"ingredients":  {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
			"instructions": {Type: "string"},
		},
		Required: []string{"name", "ingredients"},
	}
}

func selectedIngredientsSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "array",
		Items: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"ingredient": {Type: "string"},
				"recipe":     {Type: "string"},
				"store":      {Type: "string"},
				"aisle":      {Type: "string"},
			},
			Required: []string{"ingredient", "recipe", "store", "aisle"},
		},
	}
}
