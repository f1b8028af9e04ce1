// Package mcp implements the server side of the Model Context Protocol:
// JSON-RPC 2.0 message handling plus stdio and HTTP transports. The server
// exposes exactly two capabilities to clients, tools/list and tools/call,
// against a schema.ToolService.
package mcp

import (
	"encoding/json"
	"fmt"
)

// Version is the JSON-RPC protocol version carried by every message.
const Version = "2.0"

// Standard JSON-RPC 2.0 error codes.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is one incoming JSON-RPC message. The ID is kept raw so responses
// echo it byte for byte; notifications arrive with no ID at all.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no ID and therefore
// must not receive a response.
func (r *Request) IsNotification() bool {
	return len(r.ID) == 0
}

// Response is one outgoing JSON-RPC message. A nil ID marshals as null,
// which is what parse errors answer with.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error member of a failed response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("JSON-RPC error %d: %s", e.Code, e.Message)
}

// newResponse builds a successful response echoing the request ID.
func newResponse(id json.RawMessage, result any) *Response {
	return &Response{JSONRPC: Version, ID: id, Result: result}
}

// newErrorResponse builds a failed response echoing the request ID.
func newErrorResponse(id json.RawMessage, code int, message string) *Response {
	return &Response{
		JSONRPC: Version,
		ID:      id,
		Error:   &RPCError{Code: code, Message: message},
	}
}
