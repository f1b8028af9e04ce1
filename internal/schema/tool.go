// Package schema contains the core contracts shared across findata-mcp packages.
// Concrete implementations live in their respective packages; this package is the
// single canonical source of truth for every shared type.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every callable tool must satisfy.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's arguments.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// ToolInfo is the advertised form of a tool: name, description, and the
// verbatim JSON Schema of its arguments, exactly as registered.
type ToolInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// ToolService is what transports need from the tools layer: a stable catalog
// and a dispatch entry point that reports failures inside the result rather
// than failing the transport.
type ToolService interface {
	Tools() []ToolInfo
	Dispatch(ctx context.Context, name string, args map[string]any) ToolResult
}
