package tools

import (
	"errors"
	"fmt"

	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
)

// ErrUnknownTool indicates a lookup of a name no tool was registered under.
var ErrUnknownTool = errors.New("unknown tool")

// ToolName is the canonical name of a registered tool.
type ToolName string

const (
	ToolStockPrice             ToolName = "get_stock_price"
	ToolFinancialStatements    ToolName = "get_financial_statements"
	ToolSearchStocks           ToolName = "search_stocks_by_filters"
	ToolEarningsPressReleases  ToolName = "get_earnings_press_releases"
	ToolFinancialMetrics       ToolName = "get_financial_metrics"
	ToolInstitutionalOwnership ToolName = "get_institutional_ownership"
	ToolCompanyFacts           ToolName = "get_company_facts"
	ToolCompanyNews            ToolName = "get_company_news"
)

// Registry holds the fixed set of named tools and exposes them for dispatch.
// It is immutable after Build(); the advertised catalog keeps registration
// order so tools/list is stable across calls.
type Registry struct {
	order []string
	tools map[string]schema.Tool
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) schema.Tool {
	return r.tools[name]
}

// Lookup returns the tool with the given name, or an error wrapping
// ErrUnknownTool.
func (r *Registry) Lookup(name string) (schema.Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return t, nil
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.order)
}

// Tools returns the advertised catalog in registration order. Each entry
// carries the tool's input schema verbatim, exactly as registered.
func (r *Registry) Tools() []schema.ToolInfo {
	out := make([]schema.ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		out = append(out, schema.ToolInfo{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Parameters(),
		})
	}
	return out
}
