package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

// FinancialMetricsTool returns the current valuation, profitability and
// growth metrics snapshot for a ticker.
type FinancialMetricsTool struct {
	api *fdapi.Client
}

// NewFinancialMetricsTool creates a FinancialMetricsTool backed by the given
// API client.
func NewFinancialMetricsTool(api *fdapi.Client) *FinancialMetricsTool {
	return &FinancialMetricsTool{api: api}
}

func (t *FinancialMetricsTool) Name() string { return string(ToolFinancialMetrics) }
func (t *FinancialMetricsTool) Description() string {
	return "Get current financial metrics for a ticker symbol: valuation ratios, margins, returns and growth."
}
func (t *FinancialMetricsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"ticker": {
				"type": "string",
				"description": "Stock ticker symbol (e.g. AAPL, MSFT)"
			}
		},
		"required": ["ticker"]
	}`)
}

// metricsSnapshot is the /financial-metrics/snapshot payload. Ratios the API
// reports as fractions (margins, returns, growth) render as percentages;
// valuation and liquidity ratios render raw.
type metricsSnapshot struct {
	Ticker               string   `json:"ticker"`
	MarketCap            *float64 `json:"market_cap"`
	PriceToEarningsRatio *float64 `json:"price_to_earnings_ratio"`
	PriceToBookRatio     *float64 `json:"price_to_book_ratio"`
	PriceToSalesRatio    *float64 `json:"price_to_sales_ratio"`
	GrossMargin          *float64 `json:"gross_margin"`
	OperatingMargin      *float64 `json:"operating_margin"`
	NetMargin            *float64 `json:"net_margin"`
	ReturnOnEquity       *float64 `json:"return_on_equity"`
	ReturnOnAssets       *float64 `json:"return_on_assets"`
	RevenueGrowth        *float64 `json:"revenue_growth"`
	EarningsGrowth       *float64 `json:"earnings_growth"`
	CurrentRatio         *float64 `json:"current_ratio"`
	DebtToEquity         *float64 `json:"debt_to_equity"`
}

func (t *FinancialMetricsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)

	var resp struct {
		Snapshot *metricsSnapshot `json:"snapshot"`
	}
	params := url.Values{"ticker": {ticker}}
	if err := t.api.Get(ctx, "/financial-metrics/snapshot", params, fdapi.AuthQuery, &resp); err != nil {
		return "", err
	}
	if resp.Snapshot == nil {
		return fmt.Sprintf("No financial metrics found for %s", ticker), nil
	}

	s := resp.Snapshot
	marketCap := "N/A"
	if s.MarketCap != nil {
		marketCap = formatBillions(*s.MarketCap)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Financial Metrics for %s\n", s.Ticker)
	sb.WriteString("\nValuation:\n")
	fmt.Fprintf(&sb, "  Market Cap: %s\n", marketCap)
	fmt.Fprintf(&sb, "  P/E Ratio: %s\n", ratioOrNA(s.PriceToEarningsRatio))
	fmt.Fprintf(&sb, "  Price/Book: %s\n", ratioOrNA(s.PriceToBookRatio))
	fmt.Fprintf(&sb, "  Price/Sales: %s\n", ratioOrNA(s.PriceToSalesRatio))
	sb.WriteString("\nMargins:\n")
	fmt.Fprintf(&sb, "  Gross Margin: %s\n", percentOrNA(s.GrossMargin))
	fmt.Fprintf(&sb, "  Operating Margin: %s\n", percentOrNA(s.OperatingMargin))
	fmt.Fprintf(&sb, "  Net Margin: %s\n", percentOrNA(s.NetMargin))
	sb.WriteString("\nReturns:\n")
	fmt.Fprintf(&sb, "  Return on Equity: %s\n", percentOrNA(s.ReturnOnEquity))
	fmt.Fprintf(&sb, "  Return on Assets: %s\n", percentOrNA(s.ReturnOnAssets))
	sb.WriteString("\nGrowth:\n")
	fmt.Fprintf(&sb, "  Revenue Growth: %s\n", percentOrNA(s.RevenueGrowth))
	fmt.Fprintf(&sb, "  Earnings Growth: %s\n", percentOrNA(s.EarningsGrowth))
	sb.WriteString("\nLiquidity:\n")
	fmt.Fprintf(&sb, "  Current Ratio: %s\n", ratioOrNA(s.CurrentRatio))
	fmt.Fprintf(&sb, "  Debt to Equity: %s\n", ratioOrNA(s.DebtToEquity))
	return sb.String(), nil
}
