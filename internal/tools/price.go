package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

// StockPriceTool returns the latest price snapshot for a ticker.
type StockPriceTool struct {
	api *fdapi.Client
}

// NewStockPriceTool creates a StockPriceTool backed by the given API client.
func NewStockPriceTool(api *fdapi.Client) *StockPriceTool {
	return &StockPriceTool{api: api}
}

func (t *StockPriceTool) Name() string { return string(ToolStockPrice) }
func (t *StockPriceTool) Description() string {
	return "Get the current stock price, daily change, volume and market cap for a ticker symbol."
}
func (t *StockPriceTool) Parameters() json.RawMessage {
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

// priceSnapshot is the /prices/snapshot payload. Optional fields are
// pointers: the API omits them for thinly traded symbols and absence
// renders as N/A rather than zero.
type priceSnapshot struct {
	Ticker           string   `json:"ticker"`
	Price            float64  `json:"price"`
	DayChange        float64  `json:"day_change"`
	DayChangePercent float64  `json:"day_change_percent"`
	Volume           *float64 `json:"volume"`
	MarketCap        *float64 `json:"market_cap"`
	Time             string   `json:"time"`
}

func (t *StockPriceTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)

	var resp struct {
		Snapshot *priceSnapshot `json:"snapshot"`
	}
	params := url.Values{"ticker": {ticker}}
	if err := t.api.Get(ctx, "/prices/snapshot", params, fdapi.AuthQuery, &resp); err != nil {
		return "", err
	}
	if resp.Snapshot == nil {
		return fmt.Sprintf("No price snapshot found for %s", ticker), nil
	}

	s := resp.Snapshot
	volume := "N/A"
	if s.Volume != nil {
		volume = groupDigits(*s.Volume)
	}
	marketCap := "N/A"
	if s.MarketCap != nil {
		marketCap = formatBillions(*s.MarketCap)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Stock Price for %s\n\n", s.Ticker)
	fmt.Fprintf(&sb, "Price: $%.2f\n", s.Price)
	fmt.Fprintf(&sb, "Change: %s (%s%%)\n", formatSigned(s.DayChange), formatSigned(s.DayChangePercent))
	fmt.Fprintf(&sb, "Volume: %s\n", volume)
	fmt.Fprintf(&sb, "Market Cap: %s\n", marketCap)
	fmt.Fprintf(&sb, "Time: %s\n", formatTime(s.Time))
	return sb.String(), nil
}
