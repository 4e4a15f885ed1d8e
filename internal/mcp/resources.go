// ABOUTME: Projects model descriptors into MCP resource listings.
// ABOUTME: Resources use model:// URIs and serve descriptor JSON documents.

package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudfree/mcp-gateway/internal/models"
)

// resourceScheme prefixes every model resource URI.
const resourceScheme = "model://"

// listResources maps every catalog entry to an MCP resource.
func listResources(catalog *models.Catalog) ListResourcesResult {
	all := catalog.All()
	result := ListResourcesResult{Resources: make([]Resource, len(all))}
	for i, m := range all {
		result.Resources[i] = Resource{
			URI:         resourceScheme + m.ID,
			Name:        m.Name,
			Description: m.Description,
			MimeType:    "application/json",
		}
	}
	return result
}

// readResource resolves a model:// URI to its descriptor document. The
// catalog lookup is total, so only URIs outside the scheme fail.
func readResource(catalog *models.Catalog, uri string) (*ResourceContents, error) {
	modelID, ok := strings.CutPrefix(uri, resourceScheme)
	if !ok {
		return nil, fmt.Errorf("Resource not found: %s", uri)
	}

	model := catalog.Get(modelID)
	text, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding model info: %w", err)
	}

	return &ResourceContents{
		Contents: []ResourceContent{{
			URI:      uri,
			MimeType: "application/json",
			Text:     string(text),
		}},
	}, nil
}
