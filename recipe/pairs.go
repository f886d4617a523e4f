package recipe

import "sort"

// AnalyzePairs counts every pair of ingredient positions within each recipe and returns
// the pairs seen at least MinPairCount times, most frequent first. Repeats inside one
// recipe and repeats across recipes count the same way. Ties keep the order in which
// the pair was first produced.
func AnalyzePairs(recipes []Recipe) []IngredientPair {
	counts := make(map[string]int)
	var order []string

	for _, r := range recipes {
		if len(r.Ingredients) < 2 {
			continue
		}

		names := make([]string, len(r.Ingredients))
		for i, ing := range r.Ingredients {
			names[i] = Normalize(ing)
		}

		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				key := PairKey(names[i], names[j])
				if _, seen := counts[key]; !seen {
					order = append(order, key)
				}
				counts[key]++
			}
		}
	}

	pairs := make([]IngredientPair, 0)
	for _, key := range order {
		if n := counts[key]; n >= MinPairCount {
			pairs = append(pairs, IngredientPair{Pair: key, Count: n})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Count > pairs[j].Count })
	return pairs
}
