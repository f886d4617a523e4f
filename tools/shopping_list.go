package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"

	"recipepairs/session"
	"recipepairs/shopping"
	"recipepairs/tools/storage"
)

var errIngredientRequired = errors.New("ingredient is required")

type ShoppingListAdd struct{ session *session.Session }

func NewShoppingListAdd(s *session.Session) *ShoppingListAdd { return &ShoppingListAdd{session: s} }

func (t *ShoppingListAdd) Name() string  { return "shopping_list_add" }
func (t *ShoppingListAdd) Title() string { return "Add to Shopping List" }
func (t *ShoppingListAdd) Description() string {
	return "Adds an ingredient from a recipe to the shopping list with its store and aisle. The ingredient and recipe are kept exactly as given, so adding the same text for the same recipe twice is a no-op."
}

func (t *ShoppingListAdd) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredient": {Type: "string"},
			"recipe":     {Type: "string"},
		},
		Required: []string{"ingredient", "recipe"},
	}
}

func (t *ShoppingListAdd) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"added": {Type: "boolean"},
			"items": selectedIngredientsSchema(),
		},
		Required: []string{"added", "items"},
	}
}

func (t *ShoppingListAdd) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	ingredient := rawStringInput(input, "ingredient")
	if strings.TrimSpace(ingredient) == "" {
		return nil, errIngredientRequired
	}
	recipeName := rawStringInput(input, "recipe")

	added := t.session.List.Add(ingredient, recipeName)
	return toMap(struct {
		Added bool                          `json:"added"`
		Items []shopping.SelectedIngredient `json:"items"`
	}{Added: added, Items: t.session.List.Items()})
}

type ShoppingListRemove struct{ session *session.Session }

func NewShoppingListRemove(s *session.Session) *ShoppingListRemove {
	return &ShoppingListRemove{session: s}
}

func (t *ShoppingListRemove) Name() string  { return "shopping_list_remove" }
func (t *ShoppingListRemove) Title() string { return "Remove from Shopping List" }
func (t *ShoppingListRemove) Description() string {
	return "Removes an ingredient from the shopping list for every recipe that added it. The ingredient must match the added text exactly."
}

func (t *ShoppingListRemove) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"ingredient": {Type: "string"},
		},
		Required: []string{"ingredient"},
	}
}

func (t *ShoppingListRemove) OutputSchema() *jsonschema.Schema {
	minRemoved := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"removed": {Type: "integer", Minimum: &minRemoved},
			"items":   selectedIngredientsSchema(),
		},
		Required: []string{"removed", "items"},
	}
}

func (t *ShoppingListRemove) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	ingredient := rawStringInput(input, "ingredient")
	if strings.TrimSpace(ingredient) == "" {
		return nil, errIngredientRequired
	}

	removed := t.session.List.Remove(ingredient)
	return toMap(struct {
		Removed int                           `json:"removed"`
		Items   []shopping.SelectedIngredient `json:"items"`
	}{Removed: removed, Items: t.session.List.Items()})
}

type ShoppingListGet struct{ session *session.Session }

func NewShoppingListGet(s *session.Session) *ShoppingListGet { return &ShoppingListGet{session: s} }

func (t *ShoppingListGet) Name() string  { return "shopping_list_get" }
func (t *ShoppingListGet) Title() string { return "Get Shopping List" }
func (t *ShoppingListGet) Description() string {
	return "Returns the selected ingredients with their store and aisle."
}

func (t *ShoppingListGet) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func (t *ShoppingListGet) OutputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"items": selectedIngredientsSchema(),
		},
		Required: []string{"items"},
	}
}

func (t *ShoppingListGet) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	return toMap(struct {
		Items []shopping.SelectedIngredient `json:"items"`
	}{Items: t.session.List.Items()})
}

type ShoppingListExport struct {
	session *session.Session
	sink    storage.ListSink
}

// NewShoppingListExport creates the export tool. A nil sink only renders the text.
func NewShoppingListExport(s *session.Session, sink storage.ListSink) *ShoppingListExport {
	return &ShoppingListExport{session: s, sink: sink}
}

func (t *ShoppingListExport) Name() string  { return "shopping_list_export" }
func (t *ShoppingListExport) Title() string { return "Export Shopping List" }
func (t *ShoppingListExport) Description() string {
	return "Renders the shopping list one ingredient per line and saves it."
}

func (t *ShoppingListExport) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object"}
}

func (t *ShoppingListExport) OutputSchema() *jsonschema.Schema {
	minCount := 0.0
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text":  {Type: "string"},
			"count": {Type: "integer", Minimum: &minCount},
			"saved": {Type: "boolean"},
		},
		Required: []string{"text", "count", "saved"},
	}
}

func (t *ShoppingListExport) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	text := t.session.List.Export()

	saved := false
	if t.sink != nil {
		if err := t.sink.Save(ctx, []byte(text)); err != nil {
			return nil, fmt.Errorf("save shopping list: %w", err)
		}
		saved = true
		slog.Info("TOOLS: Shopping list saved", "session_id", t.session.ID, "items", t.session.List.Len())
	}

	return toMap(struct {
		Text  string `json:"text"`
		Count int    `json:"count"`
		Saved bool   `json:"saved"`
	}{Text: text, Count: t.session.List.Len(), Saved: saved})
}
