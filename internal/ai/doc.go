// Package ai bridges MCP tool calls to an inference backend.
//
// The Bridge owns the call pipeline: estimate the neuron cost from the
// raw arguments, reshape the input into what the model category
// expects, invoke the backend, and prefer the backend's reported usage
// over the estimate. Backend is the single seam for transport; the
// production implementation lives in internal/backend.
package ai
