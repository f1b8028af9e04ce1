package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

// SearchStocksTool screens companies by financial criteria via the
// financials search endpoint. It is the only POST-backed tool.
type SearchStocksTool struct {
	api *fdapi.Client
}

// NewSearchStocksTool creates a SearchStocksTool backed by the given API client.
func NewSearchStocksTool(api *fdapi.Client) *SearchStocksTool {
	return &SearchStocksTool{api: api}
}

func (t *SearchStocksTool) Name() string { return string(ToolSearchStocks) }
func (t *SearchStocksTool) Description() string {
	return "Search for stocks matching financial criteria, e.g. revenue above a threshold or net income below one."
}
func (t *SearchStocksTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"filters": {
				"type": "array",
				"description": "Filter conditions. Each filter needs a field (e.g. revenue, net_income, total_assets), an operator and a numeric value.",
				"items": {
					"type": "object",
					"properties": {
						"field": {"type": "string"},
						"operator": {"type": "string", "enum": ["eq", "gt", "gte", "lt", "lte"]},
						"value": {"type": "number"}
					},
					"required": ["field", "operator", "value"]
				}
			},
			"period": {
				"type": "string",
				"enum": ["annual", "quarterly", "ttm"],
				"default": "ttm",
				"description": "Reporting period to search over"
			},
			"limit": {
				"type": "integer",
				"default": 5,
				"description": "Maximum number of results"
			}
		},
		"required": ["filters"]
	}`)
}

func (t *SearchStocksTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	filters, _ := args["filters"].([]any)
	if len(filters) == 0 {
		// Expected outcome, not a failure: tell the caller how to retry
		// without touching the network.
		return `At least one filter is required to search stocks. Example: {"field": "revenue", "operator": "gt", "value": 100000000}`, nil
	}

	// Filter items pass through unvalidated; the API reports unknown
	// fields and operators itself.
	body := map[string]any{
		"period":  args["period"],
		"limit":   args["limit"],
		"filters": filters,
	}
	var resp struct {
		SearchResults []map[string]any `json:"search_results"`
	}
	if err := t.api.PostJSON(ctx, "/financials/search", body, &resp); err != nil {
		return "", err
	}
	if len(resp.SearchResults) == 0 {
		return "No stocks found matching the given filters", nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock Search Results (%d found)\n", len(resp.SearchResults))
	for i, row := range resp.SearchResults {
		ticker, _ := row["ticker"].(string)
		reportPeriod, _ := row["report_period"].(string)
		fmt.Fprintf(&sb, "\n%d. %s (%s)\n", i+1, ticker, reportPeriod)

		for _, key := range searchRowKeys(row) {
			fmt.Fprintf(&sb, "   %s: %s\n", key, formatSearchValue(row[key]))
		}
	}
	return sb.String(), nil
}

// searchRowKeys returns the metric keys of one search row in sorted order,
// excluding the identity fields rendered in the row header.
func searchRowKeys(row map[string]any) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		switch k {
		case "ticker", "report_period", "period", "currency":
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
