// ABOUTME: Reshapes caller-supplied tool arguments into backend input payloads.
// ABOUTME: Branches on the category inferred from the model id's keywords.

package ai

import (
	"errors"

	"github.com/cloudfree/mcp-gateway/internal/models"
)

// Formatter errors for missing required input fields.
var (
	ErrMissingPrompt = errors.New("missing 'prompt' field")
	ErrMissingText   = errors.New("missing 'text' field")
)

// FormatInput reshapes input into the payload the backend expects for the
// given model. Text and image models require a string prompt, embedding
// models require a text field (string or array). Audio models and ids
// matching no category keyword pass through unchanged.
func FormatInput(modelID string, input map[string]any) (map[string]any, error) {
	category, matched := models.InferCategory(modelID)
	if !matched {
		return input, nil
	}

	switch category {
	case models.CategoryLLM:
		prompt, ok := input["prompt"].(string)
		if !ok {
			return nil, ErrMissingPrompt
		}
		return map[string]any{"prompt": prompt}, nil
	case models.CategoryEmbedding:
		text, ok := input["text"]
		if !ok {
			return nil, ErrMissingText
		}
		return map[string]any{"text": text}, nil
	case models.CategoryImage:
		prompt, ok := input["prompt"].(string)
		if !ok {
			return nil, ErrMissingPrompt
		}
		return map[string]any{"prompt": prompt}, nil
	default:
		// Audio payloads are backend-native; forward as-is
		return input, nil
	}
}
