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

// statementEndpoint binds one statement_type value to its API path and the
// payload key the entries arrive under.
type statementEndpoint struct {
	path string
	key  string
}

var statementEndpoints = map[string]statementEndpoint{
	"all":       {path: "/financials", key: "financials"},
	"income":    {path: "/financials/income-statements", key: "income_statements"},
	"balance":   {path: "/financials/balance-sheets", key: "balance_sheets"},
	"cash-flow": {path: "/financials/cash-flow-statements", key: "cash_flow_statements"},
}

// FinancialStatementsTool returns income statement, balance sheet and cash
// flow data for a ticker, one block per reporting period.
type FinancialStatementsTool struct {
	api *fdapi.Client
}

// NewFinancialStatementsTool creates a FinancialStatementsTool backed by the
// given API client.
func NewFinancialStatementsTool(api *fdapi.Client) *FinancialStatementsTool {
	return &FinancialStatementsTool{api: api}
}

func (t *FinancialStatementsTool) Name() string { return string(ToolFinancialStatements) }
func (t *FinancialStatementsTool) Description() string {
	return "Get financial statements (income statement, balance sheet, cash flow) for a ticker symbol."
}
func (t *FinancialStatementsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"ticker": {
				"type": "string",
				"description": "Stock ticker symbol (e.g. AAPL, MSFT)"
			},
			"statement_type": {
				"type": "string",
				"enum": ["all", "income", "balance", "cash-flow"],
				"default": "all",
				"description": "Which statement to fetch"
			},
			"period": {
				"type": "string",
				"enum": ["annual", "quarterly", "ttm"],
				"default": "ttm",
				"description": "Reporting period"
			},
			"limit": {
				"type": "integer",
				"default": 4,
				"description": "Number of reporting periods to return"
			}
		},
		"required": ["ticker"]
	}`)
}

// financialStatement is one reporting period from any of the financials
// endpoints. All monetary fields are pointers: the combined endpoint
// populates every section, the dedicated endpoints only theirs, and which
// subsections render is decided purely by field presence.
type financialStatement struct {
	ReportPeriod string `json:"report_period"`
	Period       string `json:"period"`

	// Income statement, keyed on revenue.
	Revenue          *float64 `json:"revenue"`
	GrossProfit      *float64 `json:"gross_profit"`
	OperatingIncome  *float64 `json:"operating_income"`
	NetIncome        *float64 `json:"net_income"`
	EarningsPerShare *float64 `json:"earnings_per_share"`

	// Balance sheet, keyed on total_assets.
	TotalAssets        *float64 `json:"total_assets"`
	TotalLiabilities   *float64 `json:"total_liabilities"`
	ShareholdersEquity *float64 `json:"shareholders_equity"`

	// Cash flow, keyed on net_cash_flow_from_operations.
	NetCashFlowFromOperations *float64 `json:"net_cash_flow_from_operations"`
	CapitalExpenditure        *float64 `json:"capital_expenditure"`
	FreeCashFlow              *float64 `json:"free_cash_flow"`
}

func (t *FinancialStatementsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)
	statementType, _ := args["statement_type"].(string)
	period, _ := args["period"].(string)
	limit, _ := args["limit"].(int)

	ep, ok := statementEndpoints[statementType]
	if !ok {
		return "", fmt.Errorf("unsupported statement_type %q", statementType)
	}

	params := url.Values{
		"ticker": {ticker},
		"period": {period},
		"limit":  {strconv.Itoa(limit)},
	}
	var payload map[string]json.RawMessage
	if err := t.api.Get(ctx, ep.path, params, fdapi.AuthQuery, &payload); err != nil {
		return "", err
	}

	var entries []financialStatement
	if raw, ok := payload[ep.key]; ok {
		if err := json.Unmarshal(raw, &entries); err != nil {
			return "", fmt.Errorf("parse %s: %w", ep.key, err)
		}
	}
	if len(entries) == 0 {
		return fmt.Sprintf("No financial statements found for %s", ticker), nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Financial Statements for %s (%s)\n", ticker, period)
	for _, e := range entries {
		sb.WriteString("\n")
		sb.WriteString(formatStatement(e))
	}
	return sb.String(), nil
}

// formatStatement renders one reporting period. Each subsection appears only
// when its diagnostic field is present: revenue for the income statement,
// total_assets for the balance sheet, net_cash_flow_from_operations for cash
// flow. Monetary values print in millions except EPS, which stays raw.
func formatStatement(e financialStatement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Period: %s\n", e.ReportPeriod)

	if e.Revenue != nil {
		sb.WriteString("\nIncome Statement:\n")
		fmt.Fprintf(&sb, "  Revenue: %s\n", formatMillions(*e.Revenue))
		if e.GrossProfit != nil {
			fmt.Fprintf(&sb, "  Gross Profit: %s\n", formatMillions(*e.GrossProfit))
		}
		if e.OperatingIncome != nil {
			fmt.Fprintf(&sb, "  Operating Income: %s\n", formatMillions(*e.OperatingIncome))
		}
		if e.NetIncome != nil {
			fmt.Fprintf(&sb, "  Net Income: %s\n", formatMillions(*e.NetIncome))
		}
		if e.EarningsPerShare != nil {
			fmt.Fprintf(&sb, "  EPS: $%.2f\n", *e.EarningsPerShare)
		}
	}

	if e.TotalAssets != nil {
		sb.WriteString("\nBalance Sheet:\n")
		fmt.Fprintf(&sb, "  Total Assets: %s\n", formatMillions(*e.TotalAssets))
		if e.TotalLiabilities != nil {
			fmt.Fprintf(&sb, "  Total Liabilities: %s\n", formatMillions(*e.TotalLiabilities))
		}
		if e.ShareholdersEquity != nil {
			fmt.Fprintf(&sb, "  Shareholders Equity: %s\n", formatMillions(*e.ShareholdersEquity))
		}
	}

	if e.NetCashFlowFromOperations != nil {
		sb.WriteString("\nCash Flow:\n")
		fmt.Fprintf(&sb, "  Operating Cash Flow: %s\n", formatMillions(*e.NetCashFlowFromOperations))
		if e.CapitalExpenditure != nil {
			fmt.Fprintf(&sb, "  Capital Expenditure: %s\n", formatMillions(*e.CapitalExpenditure))
		}
		if e.FreeCashFlow != nil {
			fmt.Fprintf(&sb, "  Free Cash Flow: %s\n", formatMillions(*e.FreeCashFlow))
		}
	}
	return sb.String()
}
