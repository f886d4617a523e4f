// Package shopping accumulates the ingredients a user picks from recipes and tags each
// one with where to buy it.
package shopping

import (
	"fmt"
	"strings"

	"recipepairs/recipe"
)

// Unknown is used for store and aisle when the store list has no entry for an ingredient.
const Unknown = "Unknown"

// SelectedIngredient is one line of the shopping list.
type SelectedIngredient struct {
	Ingredient string `json:"ingredient"`
	Recipe     string `json:"recipe"`
	Store      string `json:"store"`
	Aisle      string `json:"aisle"`
}

// String renders the entry with where to buy it.
func (s SelectedIngredient) String() string {
	return fmt.Sprintf("%s: %s, Aisle %s", s.Ingredient, s.Store, s.Aisle)
}

// List is an ordered shopping list. It is not safe for concurrent use.
type List struct {
	stores recipe.StoreList
	items  []SelectedIngredient
}

// NewList creates an empty list that resolves store metadata from stores.
func NewList(stores recipe.StoreList) *List {
	return &List{stores: stores, items: make([]SelectedIngredient, 0)}
}

// Add appends ingredient for recipeName. It reports false, and changes nothing, when the
// same ingredient was already added for the same recipe.
func (l *List) Add(ingredient, recipeName string) bool {
	for _, it := range l.items {
		if it.Ingredient == ingredient && it.Recipe == recipeName {
			return false
		}
	}

	entry := SelectedIngredient{
		Ingredient: ingredient,
		Recipe:     recipeName,
		Store:      Unknown,
		Aisle:      Unknown,
	}
	if se, ok := l.stores.Lookup(ingredient); ok {
		entry.Store = se.Store
		entry.Aisle = se.Aisle
	}
	l.items = append(l.items, entry)
	return true
}

// Remove drops every entry for ingredient, whichever recipe added it, and returns how
// many were removed.
func (l *List) Remove(ingredient string) int {
	kept := l.items[:0]
	for _, it := range l.items {
		if it.Ingredient != ingredient {
			kept = append(kept, it)
		}
	}
	removed := len(l.items) - len(kept)
	l.items = kept
	return removed
}

// Items returns a copy of the current entries in insertion order.
func (l *List) Items() []SelectedIngredient {
	out := make([]SelectedIngredient, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.items) }

// Export renders the list one raw ingredient per line, in insertion order.
func (l *List) Export() string {
	lines := make([]string, len(l.items))
	for i, it := range l.items {
		lines[i] = it.Ingredient
	}
	return strings.Join(lines, "\n")
}
