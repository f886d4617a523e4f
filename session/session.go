// Package session holds the in-memory state produced by one recipe file: the parsed
// recipes, the store list, the pair index and the shopping list being assembled.
package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"recipepairs/recipe"
	"recipepairs/shopping"
)

// TextSource supplies the raw recipe file.
type TextSource interface {
	Load(ctx context.Context) ([]byte, error)
}

// Session is owned by a single caller and is not safe for concurrent use.
// Recipes, Stores and Pairs are never modified after construction; only List changes.
type Session struct {
	ID      string
	Recipes []recipe.Recipe
	Stores  recipe.StoreList
	Pairs   []recipe.IngredientPair
	Skipped int
	List    *shopping.List
}

// New parses text and analyzes its ingredient pairs.
func New(text string) *Session {
	parsed := recipe.Parse(text)
	return &Session{
		ID:      uuid.NewString(),
		Recipes: parsed.Recipes,
		Stores:  parsed.StoreList,
		Pairs:   recipe.AnalyzePairs(parsed.Recipes),
		Skipped: parsed.Skipped,
		List:    shopping.NewList(parsed.StoreList),
	}
}

// Load reads the recipe file from src and builds a session from it.
func Load(ctx context.Context, src TextSource) (*Session, error) {
	b, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("read recipes: %w", err)
	}

	s := New(string(b))
	slog.Info("SESSION: Recipe file parsed",
		"session_id", s.ID,
		"bytes", len(b),
		"recipes", len(s.Recipes),
		"stores", len(s.Stores),
		"pairs", len(s.Pairs),
	)
	if s.Skipped > 0 {
		slog.Debug("SESSION: Dropped malformed blocks", "session_id", s.ID, "skipped", s.Skipped)
	}
	return s, nil
}

// SearchByIngredient returns the recipes using an ingredient containing term.
func (s *Session) SearchByIngredient(term string) []recipe.Recipe {
	return recipe.SearchByIngredient(s.Recipes, term)
}

// LookupByName returns the first recipe whose name contains term.
func (s *Session) LookupByName(term string) (recipe.Recipe, error) {
	return recipe.LookupByName(s.Recipes, term)
}

// SearchPairings returns the ingredients most often paired with term.
func (s *Session) SearchPairings(term string) []recipe.PairingResult {
	return recipe.SearchPairings(s.Pairs, term)
}
