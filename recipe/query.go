package recipe

import (
	"sort"
	"strings"
)

// SearchByIngredient returns the recipes with at least one raw ingredient containing
// term, case-insensitively. An empty term matches every recipe.
func SearchByIngredient(recipes []Recipe, term string) []Recipe {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return recipes
	}

	out := make([]Recipe, 0)
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), term) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// LookupByName returns the first recipe, in parse order, whose name contains term.
// It returns ErrRecipeNotFound when nothing matches.
func LookupByName(recipes []Recipe, term string) (Recipe, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, r := range recipes {
		if strings.Contains(strings.ToLower(r.Name), term) {
			return r, nil
		}
	}
	return Recipe{}, ErrRecipeNotFound
}

// SearchPairings finds the ingredients paired with term and sums the pair counts per
// partner ingredient. A blank term yields no results.
func SearchPairings(pairs []IngredientPair, term string) []PairingResult {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	target := Normalize(term)

	index := make(map[string]int)
	results := make([]PairingResult, 0)
	for _, p := range pairs {
		a, b := p.Members()
		if a != target && b != target {
			continue
		}
		for _, other := range [2]string{a, b} {
			if other == target {
				continue
			}
			i, ok := index[other]
			if !ok {
				i = len(results)
				index[other] = i
				results = append(results, PairingResult{Ingredient: other})
			}
			results[i].Count += p.Count
			results[i].Pairs = append(results[i].Pairs, p.Pair)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Count > results[j].Count })
	return results
}
