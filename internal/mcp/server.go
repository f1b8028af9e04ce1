package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/CinderZhang/financialdatasets-docs/internal/schema"
)

// Server handles MCP requests against a tool service. It is transport
// agnostic: stdio and HTTP both funnel raw messages through HandleMessage.
type Server struct {
	name    string
	version string
	service schema.ToolService
}

// NewServer creates a Server advertising the given name and version in the
// initialize handshake.
func NewServer(name, version string, service schema.ToolService) *Server {
	return &Server{name: name, version: version, service: service}
}

// HandleMessage decodes one JSON-RPC message and routes it. It returns nil
// when the message is a notification, which must never be answered.
func (s *Server) HandleMessage(ctx context.Context, data []byte) *Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return newErrorResponse(nil, CodeParseError, fmt.Sprintf("parse error: %v", err))
	}
	if req.JSONRPC != Version {
		if req.IsNotification() {
			return nil
		}
		return newErrorResponse(req.ID, CodeInvalidRequest, "unsupported jsonrpc version")
	}

	slog.Debug("handling request", "method", req.Method)

	switch req.Method {
	case MethodInitialize:
		return newResponse(req.ID, s.initializeResult())
	case MethodInitialized:
		return nil
	case MethodPing:
		return newResponse(req.ID, struct{}{})
	case MethodToolsList:
		return newResponse(req.ID, toolsListResult{Tools: s.service.Tools()})
	case MethodToolsCall:
		return s.handleToolsCall(ctx, &req)
	default:
		if req.IsNotification() {
			return nil
		}
		return newErrorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method not found: %s", req.Method))
	}
}

func (s *Server) initializeResult() initializeResult {
	return initializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities:    capabilities{Tools: toolsCapability{}},
		ServerInfo:      serverInfo{Name: s.name, Version: s.version},
	}
}

func (s *Server) handleToolsCall(ctx context.Context, req *Request) *Response {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return newErrorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("invalid params: %v", err))
	}
	if params.Name == "" {
		return newErrorResponse(req.ID, CodeInvalidParams, "invalid params: missing tool name")
	}

	args := map[string]any{}
	if len(params.Arguments) > 0 {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return newErrorResponse(req.ID, CodeInvalidParams, fmt.Sprintf("invalid params: %v", err))
		}
	}

	result := s.service.Dispatch(ctx, params.Name, args)
	return newResponse(req.ID, result)
}
