// ABOUTME: JSON-RPC dispatcher for the MCP server, independent of transport.
// ABOUTME: Requests get exactly one response; notifications never get one.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cloudfree/mcp-gateway/internal/ai"
	"github.com/cloudfree/mcp-gateway/internal/models"
)

// ProtocolVersion is the MCP protocol version advertised by initialize.
const ProtocolVersion = "2025-03-26"

// Server identity advertised by initialize.
const (
	serverName    = "cloudfree-mcp"
	serverVersion = "0.1.0"
)

// handlerFunc processes the params of one method and returns its result.
type handlerFunc func(ctx context.Context, params json.RawMessage) (any, error)

// Server dispatches MCP method calls against the model catalog and the
// inference bridge. It holds no per-call state and is safe for concurrent
// use.
type Server struct {
	catalog  *models.Catalog
	bridge   *ai.Bridge
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// Config holds configuration for the MCP server.
type Config struct {
	Catalog *models.Catalog
	Bridge  *ai.Bridge
	Logger  *slog.Logger
}

// NewServer creates a new MCP server with the given configuration.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg.Bridge == nil {
		return nil, errors.New("bridge is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		catalog: cfg.Catalog,
		bridge:  cfg.Bridge,
		logger:  logger,
	}

	// Method routing table; a miss is the -32601 path
	s.handlers = map[string]handlerFunc{
		"initialize":     s.handleInitialize,
		"ping":           s.handlePing,
		"tools/list":     s.handleToolsList,
		"tools/call":     s.handleToolsCall,
		"resources/list": s.handleResourcesList,
		"resources/read": s.handleResourcesRead,
	}

	return s, nil
}

// HandleMessage processes a single JSON-RPC envelope. It returns nil for
// notifications and a response for every request, success or failure. The
// transport maps nil to HTTP 202.
func (s *Server) HandleMessage(ctx context.Context, req *Request) *Response {
	if req.IsNotification() {
		switch req.Method {
		case "notifications/initialized", "notifications/cancelled":
			s.logger.Debug("accepted notification", "method", req.Method)
		default:
			s.logger.Warn("unhandled notification", "method", req.Method)
		}
		return nil
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		return NewError(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}

	result, err := handler(ctx, req.Params)
	if err != nil {
		return NewError(req.ID, CodeInternalError, err.Error())
	}
	return NewResult(req.ID, result)
}

// handleInitialize returns the fixed capability document. No negotiation
// happens with the caller's declared capabilities.
func (s *Server) handleInitialize(_ context.Context, _ json.RawMessage) (any, error) {
	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Tools:     ToolsCapability{ListChanged: false},
			Resources: ResourcesCapability{ListChanged: false},
		},
		ServerInfo: ServerInfo{
			Name:    serverName,
			Version: serverVersion,
		},
	}, nil
}

func (s *Server) handlePing(_ context.Context, _ json.RawMessage) (any, error) {
	return struct{}{}, nil
}

func (s *Server) handleToolsList(_ context.Context, _ json.RawMessage) (any, error) {
	result := listTools(s.catalog)
	s.logger.Debug("tools/list", "count", len(result.Tools))
	return result, nil
}

func (s *Server) handleToolsCall(ctx context.Context, raw json.RawMessage) (any, error) {
	var params CallToolParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("invalid params: %w", err)
		}
	}
	if params.Name == "" {
		return nil, errors.New("tool name is required")
	}

	args := map[string]any{}
	if len(params.Arguments) > 0 && string(params.Arguments) != "null" {
		if err := json.Unmarshal(params.Arguments, &args); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}

	// Correlation ID for log tracing
	requestID := uuid.New().String()

	s.logger.Debug("tools/call",
		"tool_name", params.Name,
		"request_id", requestID,
	)

	resp, err := s.bridge.RunInference(ctx, params.Name, args)
	if err != nil {
		s.logger.Warn("inference failed",
			"tool_name", params.Name,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("AI inference failed: %w", err)
	}

	result := createToolResult(resp.Result, false)
	if len(result.Content) > 0 && result.Content[0].Type == "text" {
		result.Content[0].Text = fmt.Sprintf("%s\n\n[Neurons used: %d]", result.Content[0].Text, resp.NeuronsUsed)
	}

	s.logger.Debug("tools/call complete",
		"tool_name", params.Name,
		"request_id", requestID,
		"neurons_used", resp.NeuronsUsed,
	)

	return result, nil
}

func (s *Server) handleResourcesList(_ context.Context, _ json.RawMessage) (any, error) {
	return listResources(s.catalog), nil
}

func (s *Server) handleResourcesRead(_ context.Context, raw json.RawMessage) (any, error) {
	var params ReadResourceParams
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &params); err != nil {
			return nil, fmt.Errorf("invalid params: %w", err)
		}
	}
	return readResource(s.catalog, params.URI)
}
