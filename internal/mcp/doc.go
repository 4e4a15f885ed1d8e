// Package mcp implements the Model Context Protocol server for the gateway.
//
// # Overview
//
// MCP (Model Context Protocol) is a JSON-RPC 2.0 convention for exposing
// "tools" and "resources" to AI-agent hosts. This package projects the
// model catalog into both shapes: every model is a callable tool named by
// its id, and a readable model:// resource carrying its descriptor.
//
// # Protocol
//
// Supported methods:
//
//   - initialize      - fixed capability document, no negotiation
//   - ping            - empty object
//   - tools/list      - one tool per catalog entry
//   - tools/call      - run inference through the bridge
//   - resources/list  - one model:// resource per catalog entry
//   - resources/read  - descriptor JSON for a model:// URI
//
// Envelopes with an absent or null id are notifications and never receive
// a response. Unknown methods on a request produce error -32601; handler
// failures produce -32603.
//
// # Architecture
//
// Components:
//
//   - Server: transport-independent JSON-RPC dispatcher
//   - Transport: HTTP framing (POST /mcp, CORS, auth, 202 for notifications)
//   - Projections: tools.go and resources.go map catalog entries to MCP shapes
//
// # Usage
//
// Create the dispatcher and serve it:
//
//	server, _ := mcp.NewServer(mcp.Config{Catalog: catalog, Bridge: bridge})
//	transport, _ := mcp.NewTransport(mcp.TransportConfig{Server: server})
//	transport.RegisterRoutes(mux)
//
// # Tool Execution
//
// A tools/call names a model id and passes its arguments:
//
//	{
//	  "jsonrpc": "2.0",
//	  "method": "tools/call",
//	  "params": {
//	    "name": "@cf/meta/llama-3.1-8b-instruct",
//	    "arguments": {"prompt": "Hello"}
//	  },
//	  "id": 2
//	}
//
// The result text is the backend's JSON response with a trailing
// "[Neurons used: N]" line, where N is backend-reported when available
// and estimated otherwise.
package mcp
