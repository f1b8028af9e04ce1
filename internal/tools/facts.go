package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
)

// CompanyFactsTool returns the company profile for a ticker.
type CompanyFactsTool struct {
	api *fdapi.Client
}

// NewCompanyFactsTool creates a CompanyFactsTool backed by the given API client.
func NewCompanyFactsTool(api *fdapi.Client) *CompanyFactsTool {
	return &CompanyFactsTool{api: api}
}

func (t *CompanyFactsTool) Name() string { return string(ToolCompanyFacts) }
func (t *CompanyFactsTool) Description() string {
	return "Get company profile facts for a ticker symbol: name, industry, sector, exchange, employees and listing date."
}
func (t *CompanyFactsTool) Parameters() json.RawMessage {
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

type companyFacts struct {
	Ticker            string   `json:"ticker"`
	Name              string   `json:"name"`
	CIK               string   `json:"cik"`
	Industry          string   `json:"industry"`
	Sector            string   `json:"sector"`
	Exchange          string   `json:"exchange"`
	Location          string   `json:"location"`
	NumberOfEmployees *float64 `json:"number_of_employees"`
	MarketCap         *float64 `json:"market_cap"`
	WebsiteURL        string   `json:"website_url"`
	ListingDate       string   `json:"listing_date"`
}

func (t *CompanyFactsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)

	var resp struct {
		CompanyFacts *companyFacts `json:"company_facts"`
	}
	params := url.Values{"ticker": {ticker}}
	if err := t.api.Get(ctx, "/company/facts", params, fdapi.AuthQuery, &resp); err != nil {
		return "", err
	}
	if resp.CompanyFacts == nil {
		return fmt.Sprintf("No company facts found for %s", ticker), nil
	}

	f := resp.CompanyFacts
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company Facts for %s\n\n", f.Ticker)
	writeFact(&sb, "Name", f.Name)
	writeFact(&sb, "CIK", f.CIK)
	writeFact(&sb, "Industry", f.Industry)
	writeFact(&sb, "Sector", f.Sector)
	writeFact(&sb, "Exchange", f.Exchange)
	writeFact(&sb, "Location", f.Location)
	if f.NumberOfEmployees != nil {
		fmt.Fprintf(&sb, "Employees: %s\n", groupDigits(*f.NumberOfEmployees))
	}
	if f.MarketCap != nil {
		fmt.Fprintf(&sb, "Market Cap: %s\n", formatBillions(*f.MarketCap))
	}
	writeFact(&sb, "Website", f.WebsiteURL)
	writeFact(&sb, "Listed", f.ListingDate)
	return sb.String(), nil
}

// writeFact prints one labelled line, skipping fields the API left empty.
func writeFact(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%s: %s\n", label, value)
}
