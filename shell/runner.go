package shell

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"recipepairs"
	"recipepairs/tools"
)

var errNoRecipeSelected = errors.New("no recipe selected, use add <ingredient> | <recipe> or lookup a recipe first")

// Runner executes command lines against the tools of one session.
type Runner struct {
	sessionID    string
	toolProvider recipepairs.ToolProvider
	logger       recipepairs.CommandLogger
	sequence     int
	lastRecipe   string
}

// NewRunner initializes a runner. log may be nil.
func NewRunner(sessionID string, tp recipepairs.ToolProvider, log recipepairs.CommandLogger) *Runner {
	return &Runner{
		sessionID:    sessionID,
		toolProvider: tp,
		logger:       log,
	}
}

// LastRecipe returns the name of the recipe found by the most recent successful lookup.
func (r *Runner) LastRecipe() string { return r.lastRecipe }

// Run parses line, calls the matching tool and renders its output.
func (r *Runner) Run(ctx context.Context, line string) (string, error) {
	r.sequence++
	entry := recipepairs.CommandLog{
		Sequence:  r.sequence,
		Timestamp: time.Now(),
		SessionID: r.sessionID,
		Line:      line,
	}

	out, err := r.run(ctx, line, &entry)
	if err != nil {
		entry.Error = err.Error()
		slog.Info("SHELL: Command failed", "sequence", entry.Sequence, "line", line, "error", err)
	} else {
		entry.Output = out
	}
	r.logCommand(entry)
	return out, err
}

func (r *Runner) run(ctx context.Context, line string, entry *recipepairs.CommandLog) (string, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return "", err
	}
	if cmd.Verb == VerbHelp {
		return helpText, nil
	}

	call, err := r.toolCall(cmd)
	if err != nil {
		return "", err
	}

	slog.Info("SHELL: Handling tool call", "name", call.Name, "sequence", entry.Sequence)

	toolLog := &recipepairs.ToolCallLog{Name: call.Name, Input: call.Input}
	entry.ToolCall = toolLog

	tool, err := r.toolProvider.GetTool(call.Name)
	if err != nil {
		toolLog.Error = err.Error()
		return "", fmt.Errorf("failed to get tool %q: %w", call.Name, err)
	}

	result, err := tool.Run(ctx, call.Input)
	if err != nil {
		toolLog.Error = err.Error()
		return "", fmt.Errorf("failed to run tool %q: %w", call.Name, err)
	}
	toolLog.Output = result

	out, err := render(call.Name, result)
	if err != nil {
		return "", fmt.Errorf("failed to render %q output: %w", call.Name, err)
	}

	if cmd.Verb == VerbLookup {
		if name, ok := lookedUpRecipe(result); ok {
			r.lastRecipe = name
		}
	}
	return out, nil
}

func (r *Runner) toolCall(cmd Command) (tools.Call, error) {
	switch cmd.Verb {
	case VerbSearch:
		return tools.Call{Name: "recipe_search", Input: map[string]any{"ingredient": cmd.Arg}}, nil
	case VerbLookup:
		return tools.Call{Name: "recipe_lookup", Input: map[string]any{"name": cmd.Arg}}, nil
	case VerbPairs:
		return tools.Call{Name: "pairing_search", Input: map[string]any{"ingredient": cmd.Arg}}, nil
	case VerbAdd:
		recipeName := cmd.Recipe
		if recipeName == "" {
			recipeName = r.lastRecipe
		}
		if recipeName == "" {
			return tools.Call{}, errNoRecipeSelected
		}
		return tools.Call{Name: "shopping_list_add", Input: map[string]any{"ingredient": cmd.Arg, "recipe": recipeName}}, nil
	case VerbRemove:
		return tools.Call{Name: "shopping_list_remove", Input: map[string]any{"ingredient": cmd.Arg}}, nil
	case VerbList:
		return tools.Call{Name: "shopping_list_get", Input: map[string]any{}}, nil
	case VerbExport:
		return tools.Call{Name: "shopping_list_export", Input: map[string]any{}}, nil
	}
	return tools.Call{}, fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Verb)
}

func lookedUpRecipe(result map[string]any) (string, bool) {
	if found, _ := result["found"].(bool); !found {
		return "", false
	}
	rec, _ := result["recipe"].(map[string]any)
	name, ok := rec["name"].(string)
	return name, ok
}

// logCommand logs a command using the configured logger, handling errors gracefully
func (r *Runner) logCommand(entry recipepairs.CommandLog) {
	if r.logger != nil {
		if err := r.logger.LogCommand(entry); err != nil {
			slog.Error("Failed to log command", "error", err, "sequence", entry.Sequence)
		}
	}
}
