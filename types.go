package recipepairs

import (
	"context"

	"recipepairs/tools"
)

type ToolProvider interface {
	GetTools() []tools.Tool
	GetTool(name string) (tools.Tool, error)
}

// Runner executes one command line against a session and returns the rendered result.
type Runner interface {
	Run(ctx context.Context, line string) (string, error)
}
