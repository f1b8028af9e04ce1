package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/CinderZhang/financialdatasets-docs/internal/fdapi"
	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
)

// fixtureClient backs a tool with a local HTTP server so tests can script
// API responses and inspect the requests the tool makes.
func fixtureClient(t *testing.T, handler http.HandlerFunc) *fdapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return fdapi.NewClient("test-key", srv.URL, time.Second)
}

// jsonHandler replies 200 with a fixed JSON body.
func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

// runTool invokes a tool through the dispatcher so schema defaults and
// validation apply, exactly as they would for a real tools/call.
func runTool(t *testing.T, tool schema.Tool, args map[string]any) schema.ToolResult {
	t.Helper()
	d := NewDispatcher(NewRegistryBuilder().WithTool(tool).Build())
	return d.Dispatch(context.Background(), tool.Name(), args)
}

// assertText fails unless the result is a success whose text contains every
// wanted fragment.
func assertText(t *testing.T, result schema.ToolResult, wants ...string) {
	t.Helper()
	if result.IsError {
		t.Fatalf("unexpected error result: %s", result.Text())
	}
	for _, want := range wants {
		if !strings.Contains(result.Text(), want) {
			t.Errorf("output missing %q\ngot:\n%s", want, result.Text())
		}
	}
}
