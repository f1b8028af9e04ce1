package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

// InstitutionalOwnershipTool lists the institutional holders of a ticker and
// totals their positions.
type InstitutionalOwnershipTool struct {
	api *fdapi.Client
}

// NewInstitutionalOwnershipTool creates an InstitutionalOwnershipTool backed
// by the given API client.
func NewInstitutionalOwnershipTool(api *fdapi.Client) *InstitutionalOwnershipTool {
	return &InstitutionalOwnershipTool{api: api}
}

func (t *InstitutionalOwnershipTool) Name() string { return string(ToolInstitutionalOwnership) }
func (t *InstitutionalOwnershipTool) Description() string {
	return "Get institutional ownership data for a ticker symbol: who holds it, their share counts and position values."
}
func (t *InstitutionalOwnershipTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"ticker": {
				"type": "string",
				"description": "Stock ticker symbol (e.g. AAPL, MSFT)"
			},
			"limit": {
				"type": "integer",
				"default": 10,
				"description": "Maximum number of holders to return"
			}
		},
		"required": ["ticker"]
	}`)
}

// institutionalOwner is one holder row. The API reports investor names in
// underscore form (BERKSHIRE_HATHAWAY_INC).
type institutionalOwner struct {
	Investor     string   `json:"investor"`
	Shares       *float64 `json:"shares"`
	MarketValue  *float64 `json:"market_value"`
	ReportPeriod string   `json:"report_period"`
}

func (t *InstitutionalOwnershipTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)
	limit, _ := args["limit"].(int)

	var resp struct {
		InstitutionalOwnership []institutionalOwner `json:"institutional_ownership"`
	}
	params := url.Values{
		"ticker": {ticker},
		"limit":  {strconv.Itoa(limit)},
	}
	if err := t.api.Get(ctx, "/institutional-ownership", params, fdapi.AuthQuery, &resp); err != nil {
		return "", err
	}
	if len(resp.InstitutionalOwnership) == 0 {
		return fmt.Sprintf("No institutional ownership data found for %s", ticker), nil
	}

	var totalShares, totalValue float64
	var sb strings.Builder
	fmt.Fprintf(&sb, "Institutional Ownership for %s\n", ticker)
	for i, owner := range resp.InstitutionalOwnership {
		name := strings.ReplaceAll(owner.Investor, "_", " ")
		if owner.ReportPeriod != "" {
			fmt.Fprintf(&sb, "\n%d. %s (%s)\n", i+1, name, owner.ReportPeriod)
		} else {
			fmt.Fprintf(&sb, "\n%d. %s\n", i+1, name)
		}

		shares := "N/A"
		if owner.Shares != nil {
			shares = groupDigits(*owner.Shares)
			totalShares += *owner.Shares
		}
		value := "N/A"
		if owner.MarketValue != nil {
			value = formatMillions(*owner.MarketValue)
			totalValue += *owner.MarketValue
		}
		fmt.Fprintf(&sb, "   Shares: %s\n", shares)
		fmt.Fprintf(&sb, "   Market Value: %s\n", value)
	}

	sb.WriteString("\nSummary:\n")
	fmt.Fprintf(&sb, "Total Shares: %s\n", groupDigits(totalShares))
	fmt.Fprintf(&sb, "Total Market Value: %s\n", formatBillions(totalValue))
	return sb.String(), nil
}
