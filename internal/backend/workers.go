// ABOUTME: Workers AI REST implementation of the inference backend.
// ABOUTME: Invokes models over HTTP and extracts reported neuron usage.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cloudfree/mcp-gateway/internal/ai"
)

// DefaultBaseURL is the Cloudflare API root used when none is configured.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// defaultTimeout bounds a single inference call end to end.
const defaultTimeout = 60 * time.Second

// maxErrorBodySize limits how much of an error response body is read.
const maxErrorBodySize = 4 << 10

// WorkersAI calls the Workers AI REST API. It implements ai.Backend.
type WorkersAI struct {
	accountID string
	apiToken  string
	baseURL   string
	client    *http.Client
	logger    *slog.Logger
}

// Config holds configuration for the Workers AI client.
type Config struct {
	AccountID  string
	APIToken   string
	BaseURL    string       // defaults to DefaultBaseURL
	HTTPClient *http.Client // defaults to a client with a 60s timeout
	Logger     *slog.Logger
}

// NewWorkersAI creates a Workers AI client with the given configuration.
func NewWorkersAI(cfg Config) (*WorkersAI, error) {
	if cfg.AccountID == "" {
		return nil, errors.New("account ID is required")
	}
	if cfg.APIToken == "" {
		return nil, errors.New("API token is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &WorkersAI{
		accountID: cfg.AccountID,
		apiToken:  cfg.APIToken,
		baseURL:   baseURL,
		client:    client,
		logger:    logger,
	}, nil
}

// apiEnvelope is the Workers AI response wrapper.
type apiEnvelope struct {
	Result  json.RawMessage `json:"result"`
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Invoke runs a model with the given input and returns its raw result.
// Neuron usage is extracted from the result when the API reports it.
func (w *WorkersAI) Invoke(ctx context.Context, modelID string, input map[string]any) (*ai.InvokeResult, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("encoding input: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/ai/run/%s", w.baseURL, w.accountID, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+w.apiToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling Workers AI: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		w.logger.Warn("Workers AI request failed",
			"model_id", modelID,
			"status", resp.StatusCode,
		)
		return nil, fmt.Errorf("Workers AI returned status %d: %s", resp.StatusCode, snippet)
	}

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if !envelope.Success {
		msg := "unknown error"
		if len(envelope.Errors) > 0 {
			msg = envelope.Errors[0].Message
		}
		return nil, fmt.Errorf("Workers AI error: %s", msg)
	}

	return &ai.InvokeResult{
		Result:  envelope.Result,
		Neurons: extractNeurons(envelope.Result),
	}, nil
}

// extractNeurons pulls the reported neuron count out of a result document.
// Returns nil when the result isn't an object or omits the field.
func extractNeurons(result json.RawMessage) *uint32 {
	var probe struct {
		NeuronsUsed *uint32 `json:"neurons_used"`
	}
	if err := json.Unmarshal(result, &probe); err != nil {
		return nil
	}
	return probe.NeuronsUsed
}
