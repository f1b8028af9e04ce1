package container

import (
	"testing"

	"github.com/CinderZhang/financialdatasets-docs/internal/config"
)

func TestNew_WiresEverything(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.API.APIKey = "fd-test-key"

	c, err := New(&cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if c.Client() == nil {
		t.Error("expected a client")
	}
	if c.Dispatcher() == nil {
		t.Error("expected a dispatcher")
	}
	if c.Server() == nil {
		t.Error("expected a server")
	}
	if got := c.Registry().Len(); got != 8 {
		t.Errorf("expected 8 registered tools, got %d", got)
	}
}

func TestNew_CatalogOrder(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.API.APIKey = "fd-test-key"

	c, err := New(&cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	infos := c.Registry().Tools()
	want := []string{
		"get_stock_price",
		"get_financial_statements",
		"search_stocks_by_filters",
		"get_earnings_press_releases",
		"get_financial_metrics",
		"get_institutional_ownership",
		"get_company_facts",
		"get_company_news",
	}
	if len(infos) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(infos))
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("catalog position %d: expected %q, got %q", i, name, infos[i].Name)
		}
	}
}
