// ABOUTME: Tests for the inference bridge using a fake backend.
// ABOUTME: Validates input reshaping, cost fallback, and error propagation.

package ai

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudfree/mcp-gateway/internal/models"
)

// fakeBackend records the last invocation and returns canned results.
type fakeBackend struct {
	lastModelID string
	lastInput   map[string]any
	result      json.RawMessage
	neurons     *uint32
	err         error
}

func (f *fakeBackend) Invoke(_ context.Context, modelID string, input map[string]any) (*InvokeResult, error) {
	f.lastModelID = modelID
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &InvokeResult{Result: f.result, Neurons: f.neurons}, nil
}

func newTestBridge(backend Backend) *Bridge {
	return NewBridge(BridgeConfig{
		Catalog: models.NewCatalog(),
		Backend: backend,
	})
}

func TestRunInference_UsesBackendNeurons(t *testing.T) {
	reported := uint32(42)
	backend := &fakeBackend{
		result:  json.RawMessage(`{"response":"hi there"}`),
		neurons: &reported,
	}
	bridge := newTestBridge(backend)

	resp, err := bridge.RunInference(context.Background(), "@cf/meta/llama-3.1-8b-instruct", map[string]any{
		"prompt": "hello world",
	})
	require.NoError(t, err)

	assert.Equal(t, uint32(42), resp.NeuronsUsed)
	assert.JSONEq(t, `{"response":"hi there"}`, string(resp.Result))
	assert.Equal(t, "@cf/meta/llama-3.1-8b-instruct", backend.lastModelID)
	assert.Equal(t, map[string]any{"prompt": "hello world"}, backend.lastInput)
}

func TestRunInference_FallsBackToEstimate(t *testing.T) {
	backend := &fakeBackend{result: json.RawMessage(`{"data":[[0.1,0.2]]}`)}
	bridge := newTestBridge(backend)

	// Embedding, 2-byte text: estimate truncates to 0
	resp, err := bridge.RunInference(context.Background(), "@cf/baai/bge-base-en-v1.5", map[string]any{
		"text": "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), resp.NeuronsUsed)
}

func TestRunInference_EstimateForLLMPrompt(t *testing.T) {
	backend := &fakeBackend{result: json.RawMessage(`{"response":"ok"}`)}
	bridge := newTestBridge(backend)

	// 11-byte prompt: 11/4 = 2 tokens, + 100
	resp, err := bridge.RunInference(context.Background(), "@cf/meta/llama-3.2-1b-instruct", map[string]any{
		"prompt": "hello world",
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(102), resp.NeuronsUsed)
}

func TestRunInference_FormatError(t *testing.T) {
	backend := &fakeBackend{result: json.RawMessage(`{}`)}
	bridge := newTestBridge(backend)

	_, err := bridge.RunInference(context.Background(), "@cf/meta/llama-3.1-8b-instruct", map[string]any{})
	assert.ErrorIs(t, err, ErrMissingPrompt)
	assert.Empty(t, backend.lastModelID, "backend must not be invoked on format failure")
}

func TestRunInference_BackendError(t *testing.T) {
	backendErr := errors.New("upstream unavailable")
	bridge := newTestBridge(&fakeBackend{err: backendErr})

	_, err := bridge.RunInference(context.Background(), "@cf/openai/whisper", map[string]any{"audio": "abc"})
	assert.ErrorIs(t, err, backendErr)
}

func TestRunInference_UnknownModelNeverFailsLookup(t *testing.T) {
	backend := &fakeBackend{result: json.RawMessage(`{"response":"ok"}`)}
	bridge := newTestBridge(backend)

	// Unrecognized id degrades to LLM category but passes input through
	// unchanged since no formatter keyword matched
	in := map[string]any{"whatever": true}
	resp, err := bridge.RunInference(context.Background(), "totally-unrecognized-xyz", in)
	require.NoError(t, err)
	assert.Equal(t, in, backend.lastInput)
	assert.Equal(t, uint32(101), resp.NeuronsUsed)
}
