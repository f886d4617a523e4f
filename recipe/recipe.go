package recipe

import (
	"errors"
	"strings"
)

// ErrRecipeNotFound is returned by LookupByName when no recipe name matches.
var ErrRecipeNotFound = errors.New("recipe not found")

// MinPairCount is the number of co-occurrences a pair needs before it is reported.
const MinPairCount = 2

const pairSeparator = ", "

// Recipe is one header + ingredients block pair from the source text.
type Recipe struct {
	Number       int      `json:"number"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// StoreEntry says where an ingredient is bought.
type StoreEntry struct {
	Store string `json:"store"`
	Aisle string `json:"aisle"`
}

// StoreList maps a normalized ingredient name to its store entry.
type StoreList map[string]StoreEntry

// Lookup returns the entry for the normalized form of ingredient.
func (sl StoreList) Lookup(ingredient string) (StoreEntry, bool) {
	e, ok := sl[Normalize(ingredient)]
	return e, ok
}

// IngredientPair counts how often two normalized ingredients appear in the same recipe.
type IngredientPair struct {
	Pair  string `json:"pair"`
	Count int    `json:"count"`
}

// Members splits the pair label back into its two normalized ingredients.
func (p IngredientPair) Members() (string, string) {
	a, b, _ := strings.Cut(p.Pair, pairSeparator)
	return a, b
}

// PairingResult aggregates every pair that links a searched ingredient to Ingredient.
type PairingResult struct {
	Ingredient string   `json:"ingredient"`
	Count      int      `json:"count"`
	Pairs      []string `json:"pairs"`
}

// PairKey returns the canonical label for two normalized ingredients.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + pairSeparator + b
}
