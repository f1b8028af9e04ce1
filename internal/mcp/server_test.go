package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
)

// fakeService is a canned ToolService recording dispatches.
type fakeService struct {
	tools    []schema.ToolInfo
	lastName string
	lastArgs map[string]any
}

func (f *fakeService) Tools() []schema.ToolInfo { return f.tools }

func (f *fakeService) Dispatch(ctx context.Context, name string, args map[string]any) schema.ToolResult {
	f.lastName = name
	f.lastArgs = args
	if name == "broken" {
		return schema.ErrorResult("Error: broken")
	}
	return schema.TextResult("ran " + name)
}

func newTestServer(service *fakeService) *Server {
	return NewServer("findata-mcp", "0.1.0", service)
}

func handle(t *testing.T, s *Server, raw string) *Response {
	t.Helper()
	return s.HandleMessage(context.Background(), []byte(raw))
}

func TestHandleMessage_Initialize(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2024-11-05"}}`)
	if resp == nil {
		t.Fatal("expected a response for initialize")
	}
	if resp.Error != nil {
		t.Fatalf("unexpected error: %v", resp.Error)
	}
	if string(resp.ID) != "1" {
		t.Errorf("expected id 1 echoed, got %s", resp.ID)
	}
	result, ok := resp.Result.(initializeResult)
	if !ok {
		t.Fatalf("expected initializeResult, got %T", resp.Result)
	}
	if result.ProtocolVersion != ProtocolVersion {
		t.Errorf("expected protocol version %q, got %q", ProtocolVersion, result.ProtocolVersion)
	}
	if result.ServerInfo.Name != "findata-mcp" || result.ServerInfo.Version != "0.1.0" {
		t.Errorf("unexpected server info: %+v", result.ServerInfo)
	}

	// The tools capability must survive marshalling as an object.
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded struct {
		Result struct {
			Capabilities map[string]json.RawMessage `json:"capabilities"`
		} `json:"result"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if _, ok := decoded.Result.Capabilities["tools"]; !ok {
		t.Error("expected tools capability in initialize result")
	}
}

func TestHandleMessage_InitializedNotification(t *testing.T) {
	s := newTestServer(&fakeService{})
	if resp := handle(t, s, `{"jsonrpc":"2.0","method":"notifications/initialized"}`); resp != nil {
		t.Fatalf("expected no response for a notification, got %+v", resp)
	}
}

func TestHandleMessage_Ping(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":7,"method":"ping"}`)
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected successful ping, got %+v", resp)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if string(decoded.Result) != "{}" {
		t.Errorf("expected empty object result, got %s", decoded.Result)
	}
}

func TestHandleMessage_ToolsList(t *testing.T) {
	service := &fakeService{tools: []schema.ToolInfo{
		{Name: "get_stock_price", Description: "prices", InputSchema: json.RawMessage(`{"type":"object"}`)},
		{Name: "get_company_facts", Description: "facts", InputSchema: json.RawMessage(`{"type":"object"}`)},
	}}
	s := newTestServer(service)
	resp := handle(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected successful tools/list, got %+v", resp)
	}
	result, ok := resp.Result.(toolsListResult)
	if !ok {
		t.Fatalf("expected toolsListResult, got %T", resp.Result)
	}
	if len(result.Tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(result.Tools))
	}
	if result.Tools[0].Name != "get_stock_price" || result.Tools[1].Name != "get_company_facts" {
		t.Errorf("catalog order not preserved: %+v", result.Tools)
	}
}

func TestHandleMessage_ToolsCall(t *testing.T) {
	service := &fakeService{}
	s := newTestServer(service)
	resp := handle(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_stock_price","arguments":{"ticker":"AAPL"}}}`)
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected successful tools/call, got %+v", resp)
	}
	if service.lastName != "get_stock_price" {
		t.Errorf("expected dispatch of get_stock_price, got %q", service.lastName)
	}
	if service.lastArgs["ticker"] != "AAPL" {
		t.Errorf("expected ticker argument AAPL, got %v", service.lastArgs)
	}
	result, ok := resp.Result.(schema.ToolResult)
	if !ok {
		t.Fatalf("expected ToolResult, got %T", resp.Result)
	}
	if result.IsError {
		t.Error("expected isError false")
	}
	if result.Text() != "ran get_stock_price" {
		t.Errorf("unexpected result text: %q", result.Text())
	}
}

func TestHandleMessage_ToolsCallNoArguments(t *testing.T) {
	service := &fakeService{}
	s := newTestServer(service)
	resp := handle(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_stock_price"}}`)
	if resp == nil || resp.Error != nil {
		t.Fatalf("expected successful tools/call, got %+v", resp)
	}
	if service.lastArgs == nil {
		t.Fatal("expected an empty argument map, got nil")
	}
	if len(service.lastArgs) != 0 {
		t.Errorf("expected no arguments, got %v", service.lastArgs)
	}
}

func TestHandleMessage_ToolsCallErrorResult(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"broken"}}`)
	if resp == nil || resp.Error != nil {
		t.Fatalf("tool failures must ride in the result, got %+v", resp)
	}
	result, ok := resp.Result.(schema.ToolResult)
	if !ok {
		t.Fatalf("expected ToolResult, got %T", resp.Result)
	}
	if !result.IsError {
		t.Error("expected isError true")
	}
	if result.Text() != "Error: broken" {
		t.Errorf("unexpected result text: %q", result.Text())
	}
}

func TestHandleMessage_ToolsCallMissingName(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"arguments":{}}}`)
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected invalid params error, got %+v", resp)
	}
	if resp.Error.Code != CodeInvalidParams {
		t.Errorf("expected code %d, got %d", CodeInvalidParams, resp.Error.Code)
	}
}

func TestHandleMessage_UnknownMethod(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":8,"method":"resources/list"}`)
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected method not found error, got %+v", resp)
	}
	if resp.Error.Code != CodeMethodNotFound {
		t.Errorf("expected code %d, got %d", CodeMethodNotFound, resp.Error.Code)
	}
}

func TestHandleMessage_UnknownNotificationIgnored(t *testing.T) {
	s := newTestServer(&fakeService{})
	if resp := handle(t, s, `{"jsonrpc":"2.0","method":"notifications/cancelled"}`); resp != nil {
		t.Fatalf("expected unknown notifications to be ignored, got %+v", resp)
	}
}

func TestHandleMessage_ParseError(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{not json`)
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected parse error, got %+v", resp)
	}
	if resp.Error.Code != CodeParseError {
		t.Errorf("expected code %d, got %d", CodeParseError, resp.Error.Code)
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if string(decoded["id"]) != "null" {
		t.Errorf("expected null id on parse error, got %s", decoded["id"])
	}
}

func TestHandleMessage_WrongJSONRPCVersion(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"1.0","id":9,"method":"ping"}`)
	if resp == nil || resp.Error == nil {
		t.Fatalf("expected invalid request error, got %+v", resp)
	}
	if resp.Error.Code != CodeInvalidRequest {
		t.Errorf("expected code %d, got %d", CodeInvalidRequest, resp.Error.Code)
	}
}

func TestHandleMessage_StringIDEchoed(t *testing.T) {
	s := newTestServer(&fakeService{})
	resp := handle(t, s, `{"jsonrpc":"2.0","id":"abc-1","method":"ping"}`)
	if resp == nil {
		t.Fatal("expected a response")
	}
	if string(resp.ID) != `"abc-1"` {
		t.Errorf("expected string id echoed verbatim, got %s", resp.ID)
	}
}
