// ABOUTME: Orchestrates a single inference: format input, invoke the backend,
// ABOUTME: and attach a neuron cost (backend-reported, or estimated as fallback).

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cloudfree/mcp-gateway/internal/models"
)

// Response is the outcome of a completed inference.
type Response struct {
	// Result is the backend's response, forwarded verbatim.
	Result json.RawMessage

	// NeuronsUsed is the backend-reported cost when available, otherwise
	// the category-based estimate.
	NeuronsUsed uint32
}

// Bridge runs inference requests against an injected backend.
type Bridge struct {
	catalog *models.Catalog
	backend Backend
	logger  *slog.Logger
}

// BridgeConfig contains configuration options for the Bridge.
type BridgeConfig struct {
	Catalog *models.Catalog
	Backend Backend
	Logger  *slog.Logger
}

// NewBridge creates a new Bridge with the given configuration.
func NewBridge(cfg BridgeConfig) *Bridge {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		catalog: cfg.Catalog,
		backend: cfg.Backend,
		logger:  logger,
	}
}

// RunInference resolves the model, reshapes the input, and invokes the
// backend. The model lookup never fails; malformed input or a backend
// failure surfaces as an error.
func (b *Bridge) RunInference(ctx context.Context, modelID string, input map[string]any) (*Response, error) {
	model := b.catalog.Get(modelID)
	estimate := model.EstimateNeurons(input)

	formatted, err := FormatInput(modelID, input)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("invoking backend",
		"model_id", modelID,
		"category", model.Category,
		"estimated_neurons", estimate,
	)

	res, err := b.backend.Invoke(ctx, modelID, formatted)
	if err != nil {
		return nil, fmt.Errorf("invoking model %s: %w", modelID, err)
	}

	neurons := estimate
	if res.Neurons != nil {
		neurons = *res.Neurons
	}

	b.logger.Debug("backend responded",
		"model_id", modelID,
		"neurons_used", neurons,
		"reported", res.Neurons != nil,
	)

	return &Response{
		Result:      res.Result,
		NeuronsUsed: neurons,
	}, nil
}
