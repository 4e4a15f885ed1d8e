// ABOUTME: HTTP transport for the MCP dispatcher: /mcp endpoint plus /health.
// ABOUTME: Owns CORS, auth, body limits, and the notification-to-202 mapping.

package mcp

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cloudfree/mcp-gateway/internal/auth"
)

// MaxRequestBodySize is the maximum allowed size for request bodies (1MB).
const MaxRequestBodySize = 1 << 20

// Transport serves the MCP dispatcher over HTTP.
type Transport struct {
	server   *Server
	verifier auth.TokenVerifier
	logger   *slog.Logger
}

// TransportConfig holds configuration for the HTTP transport.
type TransportConfig struct {
	Server *Server
	Logger *slog.Logger

	// Verifier enables bearer auth on /mcp when non-nil.
	Verifier auth.TokenVerifier
}

// NewTransport creates an HTTP transport for the given server.
func NewTransport(cfg TransportConfig) (*Transport, error) {
	if cfg.Server == nil {
		return nil, errors.New("server is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Transport{
		server:   cfg.Server,
		verifier: cfg.Verifier,
		logger:   logger,
	}, nil
}

// RegisterRoutes registers the MCP and health endpoints on the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/mcp", t.handleMCP)
	mux.HandleFunc("/health", t.handleHealth)
}

// setCORSHeaders adds the permissive CORS headers every response carries.
func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Mcp-Session-Id, Mcp-Protocol-Version")
}

func (t *Transport) handleHealth(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("OK"))
}

func (t *Transport) handleMCP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodPost:
		t.handlePost(w, r)
	default:
		// GET and DELETE on /mcp: no SSE streams, no sessions
		w.Header().Set("Allow", "POST, OPTIONS")
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

// handlePost processes one JSON-RPC message. Malformed envelopes are
// rejected here and never reach the dispatcher.
func (t *Transport) handlePost(w http.ResponseWriter, r *http.Request) {
	if !t.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxRequestBodySize+1))
	if err != nil {
		http.Error(w, "Bad Request: failed to read body", http.StatusBadRequest)
		return
	}
	if int64(len(body)) > MaxRequestBodySize {
		http.Error(w, "Bad Request: request body too large", http.StatusBadRequest)
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		t.logger.Debug("failed to parse request", "error", err)
		http.Error(w, "Invalid JSON-RPC request", http.StatusBadRequest)
		return
	}
	if req.JSONRPC != "2.0" {
		http.Error(w, "Invalid JSON-RPC request", http.StatusBadRequest)
		return
	}

	resp := t.server.HandleMessage(r.Context(), &req)
	if resp == nil {
		// Notifications get HTTP 202 with no body
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		t.logger.Warn("failed to encode response", "error", err)
	}
}

// authorized checks the bearer token when a verifier is configured.
func (t *Transport) authorized(r *http.Request) bool {
	if t.verifier == nil {
		return true
	}

	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return false
	}

	principal, err := t.verifier.Verify(token)
	if err != nil {
		t.logger.Debug("rejected bearer token", "error", err)
		return false
	}

	t.logger.Debug("authorized request", "principal", principal)
	return true
}
