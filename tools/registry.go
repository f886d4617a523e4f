package tools

import (
	"fmt"
	"sort"

	"recipepairs/session"
	"recipepairs/tools/storage"
)

// Registry maps tool names to implementations
type Registry map[string]Tool

// NewRegistry creates a new tool registry over the given session. Exports are saved to sink
// when it is not nil.
func NewRegistry(s *session.Session, sink storage.ListSink) (*Registry, error) {
	if s == nil {
		return nil, fmt.Errorf("session is required")
	}

	registry := Registry{}
	for _, tool := range []Tool{
		NewRecipeSearch(s),
		NewRecipeLookup(s),
		NewPairingSearch(s),
		NewShoppingListAdd(s),
		NewShoppingListRemove(s),
		NewShoppingListGet(s),
		NewShoppingListExport(s, sink),
	} {
		registry[tool.Name()] = tool
	}
	return &registry, nil
}

// GetTools returns all tools in the registry sorted by name
func (r *Registry) GetTools() []Tool {
	tools := make([]Tool, 0, len(*r))
	for _, tool := range *r {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// GetTool retrieves a tool by name from the registry
func (r Registry) GetTool(name string) (Tool, error) {
	tool, exists := r[name]
	if !exists {
		return nil, fmt.Errorf("tool %q not found in registry", name)
	}
	return tool, nil
}
