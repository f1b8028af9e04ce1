package mcp

import (
	"encoding/json"

	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
)

// ProtocolVersion is the MCP revision this server speaks.
const ProtocolVersion = "2024-11-05"

// Methods the server understands.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "notifications/initialized"
	MethodPing        = "ping"
	MethodToolsList   = "tools/list"
	MethodToolsCall   = "tools/call"
)

// serverInfo identifies the server in the initialize handshake.
type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// toolsCapability advertises tool support. The empty object is meaningful
// on the wire, so it is always emitted.
type toolsCapability struct{}

type capabilities struct {
	Tools toolsCapability `json:"tools"`
}

// initializeResult is the response payload for the initialize method.
type initializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    capabilities `json:"capabilities"`
	ServerInfo      serverInfo   `json:"serverInfo"`
}

// toolsListResult is the response payload for tools/list.
type toolsListResult struct {
	Tools []schema.ToolInfo `json:"tools"`
}

// callParams are the parameters of a tools/call request. Arguments stay
// raw until the dispatcher validates them against the tool's schema.
type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}
