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

// CompanyNewsTool returns recent news headlines for a ticker.
type CompanyNewsTool struct {
	api *fdapi.Client
}

// NewCompanyNewsTool creates a CompanyNewsTool backed by the given API client.
func NewCompanyNewsTool(api *fdapi.Client) *CompanyNewsTool {
	return &CompanyNewsTool{api: api}
}

func (t *CompanyNewsTool) Name() string { return string(ToolCompanyNews) }
func (t *CompanyNewsTool) Description() string {
	return "Get recent news articles for a ticker symbol with source, date and sentiment."
}
func (t *CompanyNewsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"ticker": {
				"type": "string",
				"description": "Stock ticker symbol (e.g. AAPL, MSFT)"
			},
			"limit": {
				"type": "integer",
				"default": 5,
				"description": "Maximum number of articles to return"
			}
		},
		"required": ["ticker"]
	}`)
}

type newsArticle struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	URL       string `json:"url"`
	Sentiment string `json:"sentiment"`
}

func (t *CompanyNewsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)
	limit, _ := args["limit"].(int)

	var resp struct {
		News []newsArticle `json:"news"`
	}
	params := url.Values{
		"ticker": {ticker},
		"limit":  {strconv.Itoa(limit)},
	}
	if err := t.api.Get(ctx, "/news", params, fdapi.AuthQuery, &resp); err != nil {
		return "", err
	}
	if len(resp.News) == 0 {
		return fmt.Sprintf("No news found for %s", ticker), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "News for %s\n", ticker)
	for i, article := range resp.News {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, article.Title)
		meta := make([]string, 0, 3)
		if article.Source != "" {
			meta = append(meta, "Source: "+article.Source)
		}
		if article.Date != "" {
			meta = append(meta, "Date: "+article.Date)
		}
		if article.Sentiment != "" {
			meta = append(meta, "Sentiment: "+article.Sentiment)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&sb, "   %s\n", strings.Join(meta, " | "))
		}
		if article.URL != "" {
			fmt.Fprintf(&sb, "   %s\n", article.URL)
		}
	}
	return sb.String(), nil
}
