package tools

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestSearchStocks_PostsFiltersAndRendersRows(t *testing.T) {
	var gotMethod, gotPath, gotHeader string
	var gotBody map[string]any
	client := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotHeader = r.Header.Get("X-API-KEY")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		jsonHandler(`{
			"search_results": [
				{
					"ticker": "AAPL",
					"report_period": "2024-09-28",
					"period": "ttm",
					"currency": "USD",
					"revenue": 391035000000,
					"net_income": 93736000000
				},
				{"ticker": "MSFT", "report_period": "2024-06-30", "revenue": 245122000000}
			]
		}`)(w, r)
	})

	result := runTool(t, NewSearchStocksTool(client), map[string]any{
		"filters": []any{
			map[string]any{"field": "revenue", "operator": "gt", "value": float64(100_000_000_000)},
		},
	})

	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotPath != "/financials/search" {
		t.Errorf("expected /financials/search, got %s", gotPath)
	}
	if gotHeader != "test-key" {
		t.Errorf("expected X-API-KEY header, got %q", gotHeader)
	}
	if gotBody["period"] != "ttm" {
		t.Errorf("expected default period ttm in body, got %v", gotBody["period"])
	}
	if gotBody["limit"] != float64(5) {
		t.Errorf("expected default limit 5 in body, got %v", gotBody["limit"])
	}
	filters, _ := gotBody["filters"].([]any)
	if len(filters) != 1 {
		t.Fatalf("expected 1 filter in body, got %v", gotBody["filters"])
	}
	assertText(t, result,
		"Stock Search Results (2 found)",
		"1. AAPL (2024-09-28)",
		"   net_income: $93736.0M",
		"   revenue: $391035.0M",
		"2. MSFT (2024-06-30)",
	)
	// Identity fields stay in the header, not the metric list.
	if strings.Contains(result.Text(), "currency") {
		t.Errorf("currency should not render as a metric:\n%s", result.Text())
	}
}

func TestSearchStocks_MetricsSortedByKey(t *testing.T) {
	client := fixtureClient(t, jsonHandler(`{
		"search_results": [
			{"ticker": "NVDA", "report_period": "2024-10-27", "total_assets": 96013000000, "net_income": 63074000000, "revenue": 113269000000}
		]
	}`))

	result := runTool(t, NewSearchStocksTool(client), map[string]any{
		"filters": []any{map[string]any{"field": "revenue", "operator": "gt", "value": float64(1)}},
	})

	text := result.Text()
	ni := strings.Index(text, "net_income")
	rev := strings.Index(text, "revenue")
	ta := strings.Index(text, "total_assets")
	if ni == -1 || rev == -1 || ta == -1 {
		t.Fatalf("missing metric rows:\n%s", text)
	}
	if !(ni < rev && rev < ta) {
		t.Errorf("metrics not sorted by key:\n%s", text)
	}
}

func TestSearchStocks_EmptyFiltersSkipsNetwork(t *testing.T) {
	calls := 0
	client := fixtureClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		jsonHandler(`{}`)(w, r)
	})

	result := runTool(t, NewSearchStocksTool(client), map[string]any{"filters": []any{}})

	if calls != 0 {
		t.Errorf("expected no API call for empty filters, got %d", calls)
	}
	if result.IsError {
		t.Fatalf("guidance should be a success result: %s", result.Text())
	}
	want := `At least one filter is required to search stocks. Example: {"field": "revenue", "operator": "gt", "value": 100000000}`
	if result.Text() != want {
		t.Errorf("unexpected guidance text:\n%s", result.Text())
	}
}

func TestSearchStocks_MissingFiltersRejected(t *testing.T) {
	client := fixtureClient(t, jsonHandler(`{}`))

	result := runTool(t, NewSearchStocksTool(client), map[string]any{})

	if !result.IsError {
		t.Fatal("expected error result")
	}
	if result.Text() != `Error: missing required argument "filters"` {
		t.Errorf("unexpected error text: %s", result.Text())
	}
}

func TestSearchStocks_NoMatches(t *testing.T) {
	client := fixtureClient(t, jsonHandler(`{"search_results": []}`))

	result := runTool(t, NewSearchStocksTool(client), map[string]any{
		"filters": []any{map[string]any{"field": "revenue", "operator": "gt", "value": float64(1e15)}},
	})

	assertText(t, result, "No stocks found matching the given filters")
}
