package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRecipes = []Recipe{
	{Number: 1, Name: "Tomato Soup", Ingredients: []string{"tomatoes (2 lbs)", "salt", "black pepper"}},
	{Number: 2, Name: "Fruit Salad", Ingredients: []string{"apples", "grapes"}},
	{Number: 3, Name: "Tomato Salad", Ingredients: []string{"tomatoes", "olive oil", "sea salt"}},
}

func TestSearchByIngredient(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		wantNames []string
	}{
		{
			name:      "empty term returns every recipe",
			term:      "",
			wantNames: []string{"Tomato Soup", "Fruit Salad", "Tomato Salad"},
		},
		{
			name:      "whitespace term returns every recipe",
			term:      "   ",
			wantNames: []string{"Tomato Soup", "Fruit Salad", "Tomato Salad"},
		},
		{
			name:      "substring match on raw ingredient",
			term:      "salt",
			wantNames: []string{"Tomato Soup", "Tomato Salad"},
		},
		{
			name:      "case insensitive",
			term:      "GRAPES",
			wantNames: []string{"Fruit Salad"},
		},
		{
			name:      "matches raw text including parenthesized quantities",
			term:      "2 lbs",
			wantNames: []string{"Tomato Soup"},
		},
		{
			name:      "no match",
			term:      "saffron",
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchByIngredient(testRecipes, tt.term)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}

	t.Run("only the matching recipe of two", func(t *testing.T) {
		recipes := []Recipe{
			{Name: "Soup", Ingredients: []string{"salt", "water"}},
			{Name: "Juice", Ingredients: []string{"oranges"}},
		}
		got := SearchByIngredient(recipes, "salt")
		require.Len(t, got, 1)
		assert.Equal(t, "Soup", got[0].Name)
	})
}

func TestLookupByName(t *testing.T) {
	t.Run("returns the first match in parse order", func(t *testing.T) {
		r, err := LookupByName(testRecipes, "tomato")
		require.NoError(t, err)
		assert.Equal(t, "Tomato Soup", r.Name)
	})

	t.Run("case insensitive and trimmed", func(t *testing.T) {
		r, err := LookupByName(testRecipes, "  fruit SALAD ")
		require.NoError(t, err)
		assert.Equal(t, 2, r.Number)
	})

	t.Run("no match signals not found", func(t *testing.T) {
		r, err := LookupByName(testRecipes, "lasagna")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
		assert.Equal(t, Recipe{}, r)
	})

	t.Run("no recipes", func(t *testing.T) {
		_, err := LookupByName(nil, "soup")
		assert.ErrorIs(t, err, ErrRecipeNotFound)
	})
}

func TestSearchPairings(t *testing.T) {
	pairs := []IngredientPair{
		{Pair: "pepper, salt", Count: 3},
		{Pair: "garlic, salt", Count: 2},
		{Pair: "garlic, pepper", Count: 2},
	}

	t.Run("aggregates by partner ingredient ordered by count", func(t *testing.T) {
		got := SearchPairings(pairs, "salt")
		assert.Equal(t, []PairingResult{
			{Ingredient: "pepper", Count: 3, Pairs: []string{"pepper, salt"}},
			{Ingredient: "garlic", Count: 2, Pairs: []string{"garlic, salt"}},
		}, got)
	})

	t.Run("term is normalized", func(t *testing.T) {
		got := SearchPairings(pairs, " Garlic (2 cloves) ")
		require.Len(t, got, 2)
		assert.Equal(t, "salt", got[0].Ingredient)
		assert.Equal(t, "pepper", got[1].Ingredient)
	})

	t.Run("counts are summed across pairs for the same partner", func(t *testing.T) {
		got := SearchPairings([]IngredientPair{
			{Pair: "basil, tomatoes", Count: 2},
			{Pair: "garlic, tomatoes", Count: 4},
			{Pair: "basil, tomatoes", Count: 3},
		}, "tomatoes")
		assert.Equal(t, []PairingResult{
			{Ingredient: "basil", Count: 5, Pairs: []string{"basil, tomatoes", "basil, tomatoes"}},
			{Ingredient: "garlic", Count: 4, Pairs: []string{"garlic, tomatoes"}},
		}, got)
	})

	t.Run("self pair contributes nothing", func(t *testing.T) {
		got := SearchPairings([]IngredientPair{{Pair: "salt, salt", Count: 4}}, "salt")
		assert.Empty(t, got)
	})

	t.Run("blank term yields no results", func(t *testing.T) {
		assert.Nil(t, SearchPairings(pairs, ""))
		assert.Nil(t, SearchPairings(pairs, "  \t"))
	})

	t.Run("unknown ingredient yields empty results", func(t *testing.T) {
		assert.Empty(t, SearchPairings(pairs, "saffron"))
	})
}
