package shell

import (
	"encoding/json"
	"fmt"
	"strings"

	"recipepairs/recipe"
	"recipepairs/shopping"
)

// render formats a tool output for the terminal. Outputs are decoded back into typed values
// so the text never depends on map iteration order.
func render(toolName string, output map[string]any) (string, error) {
	switch toolName {
	case "recipe_search":
		var out struct {
			Recipes []recipe.Recipe `json:"recipes"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		return renderRecipes(out.Recipes), nil

	case "recipe_lookup":
		var out struct {
			Found  bool          `json:"found"`
			Recipe recipe.Recipe `json:"recipe"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		if !out.Found {
			return "Recipe not found", nil
		}
		return renderRecipe(out.Recipe), nil

	case "pairing_search":
		var out struct {
			Pairings []recipe.PairingResult `json:"pairings"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		return renderPairings(out.Pairings), nil

	case "shopping_list_add":
		var out struct {
			Added bool                          `json:"added"`
			Items []shopping.SelectedIngredient `json:"items"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		if !out.Added || len(out.Items) == 0 {
			return "Already on the shopping list", nil
		}
		last := out.Items[len(out.Items)-1]
		return fmt.Sprintf("Added %s (%s)", last, last.Recipe), nil

	case "shopping_list_remove":
		var out struct {
			Removed int `json:"removed"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		if out.Removed == 0 {
			return "Not on the shopping list", nil
		}
		return fmt.Sprintf("Removed %d %s", out.Removed, plural(out.Removed, "entry", "entries")), nil

	case "shopping_list_get":
		var out struct {
			Items []shopping.SelectedIngredient `json:"items"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		return renderItems(out.Items), nil

	case "shopping_list_export":
		var out struct {
			Text  string `json:"text"`
			Count int    `json:"count"`
			Saved bool   `json:"saved"`
		}
		if err := decode(output, &out); err != nil {
			return "", err
		}
		if out.Count == 0 {
			return "Shopping list is empty", nil
		}
		verb := "Exported"
		if out.Saved {
			verb = "Saved"
		}
		return fmt.Sprintf("%s %d %s\n%s", verb, out.Count, plural(out.Count, "item", "items"), out.Text), nil
	}
	return "", fmt.Errorf("no renderer for tool %q", toolName)
}

func decode(output map[string]any, v any) error {
	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func renderRecipes(recipes []recipe.Recipe) string {
	if len(recipes) == 0 {
		return "No recipes found for the ingredient."
	}
	lines := make([]string, len(recipes))
	for i, r := range recipes {
		lines[i] = fmt.Sprintf("Recipe %d: %s (%s)", r.Number, r.Name, strings.Join(r.Ingredients, ", "))
	}
	return strings.Join(lines, "\n")
}

func renderRecipe(r recipe.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recipe %d: %s\nIngredients:", r.Number, r.Name)
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "\n- %s", ing)
	}
	if r.Instructions != "" {
		fmt.Fprintf(&b, "\nInstructions:\n%s", r.Instructions)
	}
	return b.String()
}

func renderPairings(pairings []recipe.PairingResult) string {
	if len(pairings) == 0 {
		return "No pairings found"
	}
	var b strings.Builder
	for i, p := range pairings {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%d recipes)", p.Ingredient, p.Count)
		for _, pair := range p.Pairs {
			fmt.Fprintf(&b, "\n  %s", pair)
		}
	}
	return b.String()
}

func renderItems(items []shopping.SelectedIngredient) string {
	if len(items) == 0 {
		return "Shopping list is empty"
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s (%s)", i+1, it, it.Recipe)
	}
	return strings.Join(lines, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
