// ABOUTME: Tests for the model catalog, category inference, and synthesis.
// ABOUTME: Validates curated lookups and the keyword fallback for unknown ids.

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_All(t *testing.T) {
	catalog := NewCatalog()

	all := catalog.All()
	assert.Len(t, all, 12)

	// Catalog order is fixed
	assert.Equal(t, "@cf/meta/llama-3.1-8b-instruct", all[0].ID)
	assert.Equal(t, "@cf/bytedance/stable-diffusion-xl-lightning", all[11].ID)

	// Every schema must be valid JSON since it is forwarded verbatim
	for _, m := range all {
		var doc map[string]any
		require.NoError(t, json.Unmarshal(m.InputSchema, &doc), "schema for %s", m.ID)
	}
}

func TestCatalog_Get_Curated(t *testing.T) {
	catalog := NewCatalog()

	m := catalog.Get("@cf/baai/bge-base-en-v1.5")
	assert.Equal(t, "BGE Base English v1.5", m.Name)
	assert.Equal(t, CategoryEmbedding, m.Category)
	assert.Equal(t, uint32(10), m.BaseNeurons)
}

func TestCatalog_Get_SynthesizesUnknown(t *testing.T) {
	catalog := NewCatalog()

	t.Run("embedding by substring", func(t *testing.T) {
		m := catalog.Get("unknown-vendor/foo-embed-v2")
		assert.Equal(t, CategoryEmbedding, m.Category)
		assert.Equal(t, "foo embed v2", m.Name)
		assert.Equal(t, "Auto-detected model: unknown-vendor/foo-embed-v2", m.Description)
	})

	t.Run("defaults to llm when nothing matches", func(t *testing.T) {
		m := catalog.Get("totally-unrecognized-xyz")
		assert.Equal(t, CategoryLLM, m.Category)

		var schema struct {
			Required []string `json:"required"`
		}
		require.NoError(t, json.Unmarshal(m.InputSchema, &schema))
		assert.Equal(t, []string{"prompt"}, schema.Required)
	})

	t.Run("name without path separator", func(t *testing.T) {
		m := catalog.Get("whisper-tiny")
		assert.Equal(t, CategoryAudio, m.Category)
		assert.Equal(t, "whisper tiny", m.Name)
	})
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		id       string
		category Category
		matched  bool
	}{
		{"@cf/meta/llama-3.1-8b-instruct", CategoryLLM, true},
		{"some/gemma-thing", CategoryLLM, true},
		{"@cf/baai/bge-m3", CategoryEmbedding, true},
		{"vendor/text-embedding-3", CategoryEmbedding, true},
		{"@cf/lykon/dreamshaper-8-lcm", CategoryImage, true},
		{"@cf/black-forest-labs/flux-1-schnell", CategoryImage, true},
		{"@cf/openai/whisper", CategoryAudio, true},
		{"@cf/deepgram/nova-3", CategoryAudio, true},
		{"mystery-model", CategoryLLM, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			cat, ok := InferCategory(tt.id)
			assert.Equal(t, tt.category, cat)
			assert.Equal(t, tt.matched, ok)
		})
	}
}

func TestInferCategory_LLMKeywordsWinTies(t *testing.T) {
	// "neural-chat-embed" contains both an LLM and an embedding keyword;
	// LLM is checked first
	cat, ok := InferCategory("vendor/neural-chat-embed")
	assert.True(t, ok)
	assert.Equal(t, CategoryLLM, cat)
}
