// ABOUTME: Projects model descriptors into MCP tool listings and results.
// ABOUTME: Tool names are the model ids; schemas are forwarded verbatim.

package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cloudfree/mcp-gateway/internal/models"
)

// listTools maps every catalog entry to an MCP tool.
func listTools(catalog *models.Catalog) ListToolsResult {
	all := catalog.All()
	result := ListToolsResult{Tools: make([]ToolInfo, len(all))}
	for i, m := range all {
		result.Tools[i] = ToolInfo{
			Name:        m.ID,
			Description: fmt.Sprintf("%s - %s", m.Name, m.Description),
			InputSchema: m.InputSchema,
		}
	}
	return result
}

// createToolResult wraps a backend result as a single text content block.
// Successful results are pretty-printed JSON; error results carry the
// message verbatim.
func createToolResult(result json.RawMessage, isError bool) ToolResult {
	var text string
	if isError {
		if err := json.Unmarshal(result, &text); err != nil {
			text = "Unknown error"
		}
	} else {
		var buf bytes.Buffer
		if err := json.Indent(&buf, result, "", "  "); err == nil {
			text = buf.String()
		} else {
			text = string(result)
		}
	}

	return ToolResult{
		Content: []Content{{Type: "text", Text: text}},
		IsError: isError,
	}
}
