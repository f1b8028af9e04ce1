package tools

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
	"github.com/CinderZhang/financialdatasets-docs/internal/shared/stringutils"
)

// Dispatcher routes tool invocations to their handlers and converts every
// failure into a result envelope. It is the single place where Go errors
// become the wire-level isError flag; nothing downstream of it may surface
// a raw error to a caller.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over an immutable registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Tools returns the advertised catalog.
func (d *Dispatcher) Tools() []schema.ToolInfo {
	return d.registry.Tools()
}

// Dispatch looks up the named tool, validates and defaults its arguments
// against the declared schema, and runs it. Unknown names, argument
// violations and handler failures all come back as error-flagged results.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args map[string]any) schema.ToolResult {
	tool, err := d.registry.Lookup(name)
	if errors.Is(err, ErrUnknownTool) {
		return schema.ErrorResult("Unknown tool: " + name)
	}

	normalized, err := normalizeArguments(tool.Parameters(), args)
	if err != nil {
		return schema.ErrorResult("Error: " + err.Error())
	}

	argsJSON, _ := json.Marshal(normalized)
	slog.Debug("dispatching tool", "tool", name, "args", stringutils.Truncate(string(argsJSON), 200))
	text, err := tool.Execute(ctx, normalized)
	if err != nil {
		slog.Debug("tool failed", "tool", name, "err", err)
		return schema.ErrorResult("Error: " + err.Error())
	}
	return schema.TextResult(text)
}

// Ensure Dispatcher satisfies the transport-facing contract at compile time.
var _ schema.ToolService = (*Dispatcher)(nil)
