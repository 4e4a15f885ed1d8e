// ABOUTME: Static catalog of Workers AI model descriptors with lookup by id.
// ABOUTME: Unknown ids are synthesized on demand via keyword-based inference.

package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ModelInfo describes a single model exposed through the gateway.
// Instances are immutable once constructed.
type ModelInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	BaseNeurons uint32          `json:"base_neurons"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// Catalog holds the curated model set. It is read-only after construction
// and safe for concurrent use without locking.
type Catalog struct {
	models []ModelInfo
	byID   map[string]int
}

// NewCatalog creates a catalog populated with the curated model set.
func NewCatalog() *Catalog {
	models := curatedModels()
	byID := make(map[string]int, len(models))
	for i, m := range models {
		byID[m.ID] = i
	}
	return &Catalog{models: models, byID: byID}
}

// All returns the curated models in their fixed catalog order.
func (c *Catalog) All() []ModelInfo {
	out := make([]ModelInfo, len(c.models))
	copy(out, c.models)
	return out
}

// Len returns the number of curated models.
func (c *Catalog) Len() int {
	return len(c.models)
}

// Get returns the descriptor for the given model id. Ids outside the
// curated set are synthesized from the id's keywords and never fail;
// unmatched ids default to the LLM category.
func (c *Catalog) Get(id string) ModelInfo {
	if i, ok := c.byID[id]; ok {
		return c.models[i]
	}
	return synthesize(id)
}

// synthesize builds a descriptor for a model outside the curated set.
func synthesize(id string) ModelInfo {
	category, _ := InferCategory(id)

	var baseNeurons uint32
	var schema json.RawMessage
	switch category {
	case CategoryEmbedding:
		baseNeurons = 10
		schema = json.RawMessage(`{
			"type": "object",
			"properties": {
				"text": {"type": "string", "description": "Text to embed"}
			},
			"required": ["text"]
		}`)
	case CategoryImage:
		baseNeurons = 5000
		schema = json.RawMessage(`{
			"type": "object",
			"properties": {
				"prompt": {"type": "string", "description": "Image description"}
			},
			"required": ["prompt"]
		}`)
	case CategoryAudio:
		baseNeurons = 100
		schema = json.RawMessage(`{
			"type": "object",
			"properties": {
				"audio": {"type": "string", "description": "Base64 audio"}
			},
			"required": ["audio"]
		}`)
	default:
		baseNeurons = 100
		schema = json.RawMessage(`{
			"type": "object",
			"properties": {
				"prompt": {"type": "string", "description": "Text prompt"}
			},
			"required": ["prompt"]
		}`)
	}

	// Display name is the last path segment with hyphens spaced out
	name := id
	if i := strings.LastIndex(id, "/"); i >= 0 {
		name = id[i+1:]
	}
	name = strings.ReplaceAll(name, "-", " ")

	return ModelInfo{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("Auto-detected model: %s", id),
		Category:    category,
		BaseNeurons: baseNeurons,
		InputSchema: schema,
	}
}

// curatedModels returns the fixed model set advertised by the gateway.
func curatedModels() []ModelInfo {
	return []ModelInfo{
		{
			ID:          "@cf/meta/llama-3.1-8b-instruct",
			Name:        "Llama 3.1 8B Instruct",
			Description: "Meta's Llama 3.1 8B instruction-tuned model for text generation",
			Category:    CategoryLLM,
			BaseNeurons: 100,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The text prompt to generate from"},
					"max_tokens": {"type": "integer", "description": "Maximum tokens to generate", "default": 256}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/mistral/mistral-7b-instruct-v0.1",
			Name:        "Mistral 7B Instruct",
			Description: "Mistral's 7B instruction-tuned model for text generation",
			Category:    CategoryLLM,
			BaseNeurons: 90,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The text prompt to generate from"},
					"max_tokens": {"type": "integer", "description": "Maximum tokens to generate", "default": 256}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/baai/bge-base-en-v1.5",
			Name:        "BGE Base English v1.5",
			Description: "BAAI's text embedding model for semantic search and similarity",
			Category:    CategoryEmbedding,
			BaseNeurons: 10,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string", "description": "The text to generate embeddings for"}
				},
				"required": ["text"]
			}`),
		},
		{
			ID:          "@cf/stabilityai/stable-diffusion-xl-base-1.0",
			Name:        "Stable Diffusion XL",
			Description: "Stability AI's SDXL model for high-quality image generation",
			Category:    CategoryImage,
			BaseNeurons: 5000,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The text prompt describing the image to generate"},
					"num_steps": {"type": "integer", "description": "Number of denoising steps", "default": 20}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/openai/whisper",
			Name:        "Whisper",
			Description: "OpenAI's Whisper model for speech recognition and transcription",
			Category:    CategoryAudio,
			BaseNeurons: 100,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"audio": {"type": "string", "description": "Base64-encoded audio data"},
					"language": {"type": "string", "description": "Language code (e.g., 'en' for English)"}
				},
				"required": ["audio"]
			}`),
		},
		{
			ID:          "@cf/meta/llama-3.1-70b-instruct",
			Name:        "Llama 3.1 70B Instruct",
			Description: "Meta's Llama 3.1 70B large-scale multilingual instruction model",
			Category:    CategoryLLM,
			BaseNeurons: 300,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The text prompt"},
					"max_tokens": {"type": "integer", "default": 256}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/meta/llama-3.2-1b-instruct",
			Name:        "Llama 3.2 1B Instruct",
			Description: "Meta's Llama 3.2 1B small multilingual dialogue model",
			Category:    CategoryLLM,
			BaseNeurons: 50,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The text prompt"},
					"max_tokens": {"type": "integer", "default": 256}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/qwen/qwen2.5-coder-32b-instruct",
			Name:        "Qwen 2.5 Coder 32B",
			Description: "Qwen's code-specific model for programming tasks",
			Category:    CategoryLLM,
			BaseNeurons: 200,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "The code prompt"},
					"max_tokens": {"type": "integer", "default": 512}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/baai/bge-large-en-v1.5",
			Name:        "BGE Large English v1.5",
			Description: "BAAI's large 1024-dimensional English embeddings",
			Category:    CategoryEmbedding,
			BaseNeurons: 15,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string", "description": "Text to embed"}
				},
				"required": ["text"]
			}`),
		},
		{
			ID:          "@cf/baai/bge-m3",
			Name:        "BGE M3",
			Description: "BAAI's multi-functional, multilingual, multi-granular embeddings",
			Category:    CategoryEmbedding,
			BaseNeurons: 20,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string", "description": "Text to embed"}
				},
				"required": ["text"]
			}`),
		},
		{
			ID:          "@cf/black-forest-labs/flux-1-schnell",
			Name:        "Flux 1 Schnell",
			Description: "Black Forest Labs' fast 12B parameter image generation model",
			Category:    CategoryImage,
			BaseNeurons: 4000,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "Image description"},
					"num_steps": {"type": "integer", "default": 4}
				},
				"required": ["prompt"]
			}`),
		},
		{
			ID:          "@cf/bytedance/stable-diffusion-xl-lightning",
			Name:        "Stable Diffusion XL Lightning",
			Description: "ByteDance's high-quality 1024px image generation in few steps",
			Category:    CategoryImage,
			BaseNeurons: 3500,
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"prompt": {"type": "string", "description": "Image description"},
					"num_steps": {"type": "integer", "default": 8}
				},
				"required": ["prompt"]
			}`),
		},
	}
}
