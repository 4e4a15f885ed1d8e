// ABOUTME: Inference backend abstraction consumed by the bridge.
// ABOUTME: Concrete implementations live outside the core (see internal/backend).

package ai

import (
	"context"
	"encoding/json"
)

// Backend executes inference against an external AI service. The bridge
// treats an invocation as a single outstanding call: no retries, no
// internal parallelism. Cancellation policy belongs to the caller's
// context and the backend client.
type Backend interface {
	Invoke(ctx context.Context, modelID string, input map[string]any) (*InvokeResult, error)
}

// InvokeResult is the raw outcome of a backend invocation.
type InvokeResult struct {
	// Result is the backend's response body, forwarded verbatim.
	Result json.RawMessage

	// Neurons is the backend-reported cost, nil when the backend
	// doesn't report usage.
	Neurons *uint32
}
