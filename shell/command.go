// Package shell turns command lines typed by a user into tool calls against a recipe session
// and renders the results as text.
package shell

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	ErrEmptyCommand    = errors.New("empty command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

// Verbs understood by ParseCommand.
const (
	VerbSearch = "search"
	VerbLookup = "lookup"
	VerbPairs  = "pairs"
	VerbAdd    = "add"
	VerbRemove = "remove"
	VerbList   = "list"
	VerbExport = "export"
	VerbHelp   = "help"
)

const helpText = `Commands:
  search [ingredient]          recipes using an ingredient (all recipes when empty)
  lookup <name>                show the first recipe whose name matches
  pairs <ingredient>           ingredients most often used together with an ingredient
  add <ingredient> [| recipe]  add an ingredient to the shopping list (defaults to the last lookup)
  remove <ingredient>          remove an ingredient from the shopping list
  list                         show the shopping list
  export                       save the shopping list
  help                         show this help`

// Command is one parsed command line.
type Command struct {
	Verb   string
	Arg    string
	Recipe string
}

// ParseCommand splits line into a verb and its argument. The verb is case-insensitive.
// For add, the argument may carry a recipe name after a '|' separator.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	verb, arg := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		verb, arg = line[:i], line[i:]
	}
	cmd := Command{Verb: strings.ToLower(verb), Arg: strings.TrimSpace(arg)}

	switch cmd.Verb {
	case VerbSearch, VerbList, VerbExport, VerbHelp:
	case VerbLookup, VerbPairs, VerbRemove:
		if cmd.Arg == "" {
			return Command{}, fmt.Errorf("%w: %s needs a value", ErrMissingArgument, cmd.Verb)
		}
	case VerbAdd:
		ingredient, recipeName, _ := strings.Cut(cmd.Arg, "|")
		cmd.Arg = strings.TrimSpace(ingredient)
		cmd.Recipe = strings.TrimSpace(recipeName)
		if cmd.Arg == "" {
			return Command{}, fmt.Errorf("%w: add needs an ingredient", ErrMissingArgument)
		}
	default:
		return Command{}, fmt.Errorf("%w %q, type help for a list of commands", ErrUnknownCommand, verb)
	}
	return cmd, nil
}
