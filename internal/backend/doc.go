// Package backend implements the Workers AI REST client used as the
// inference backend behind the MCP bridge.
package backend
