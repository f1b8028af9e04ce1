package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
	"github.com/CinderZhang/financialdatasets-docs/internal/shared/stringutils"
)

// pressReleasePreviewChars is how much of the release text each entry shows.
const pressReleasePreviewChars = 500

// EarningsPressReleasesTool lists recent earnings press releases for a
// ticker. The endpoint only accepts header authentication.
type EarningsPressReleasesTool struct {
	api *fdapi.Client
}

// NewEarningsPressReleasesTool creates an EarningsPressReleasesTool backed by
// the given API client.
func NewEarningsPressReleasesTool(api *fdapi.Client) *EarningsPressReleasesTool {
	return &EarningsPressReleasesTool{api: api}
}

func (t *EarningsPressReleasesTool) Name() string { return string(ToolEarningsPressReleases) }
func (t *EarningsPressReleasesTool) Description() string {
	return "Get recent earnings press releases for a ticker symbol, with a preview of each release."
}
func (t *EarningsPressReleasesTool) Parameters() json.RawMessage {
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

type pressRelease struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}

func (t *EarningsPressReleasesTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	ticker, _ := args["ticker"].(string)

	var resp struct {
		PressReleases []pressRelease `json:"press_releases"`
	}
	params := url.Values{"ticker": {ticker}}
	if err := t.api.Get(ctx, "/earnings/press-releases", params, fdapi.AuthHeader, &resp); err != nil {
		return "", err
	}
	if len(resp.PressReleases) == 0 {
		return fmt.Sprintf("No earnings press releases found for %s", ticker), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Earnings Press Releases for %s\n", ticker)
	for i, pr := range resp.PressReleases {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, pr.Title)
		fmt.Fprintf(&sb, "   Date: %s\n", pr.Date)
		fmt.Fprintf(&sb, "   URL: %s\n", pr.URL)
		fmt.Fprintf(&sb, "   Preview: %s\n", stringutils.Preview(pr.Text, pressReleasePreviewChars))
	}
	return sb.String(), nil
}
