// ABOUTME: Model category definitions and keyword-based category inference.
// ABOUTME: Shared by the catalog's dynamic fallback and the input formatter.

package models

import "strings"

// Category classifies a model by the kind of inference it performs.
type Category string

// Model categories. The JSON representation is the lowercase name.
const (
	CategoryLLM       Category = "llm"
	CategoryEmbedding Category = "embedding"
	CategoryImage     Category = "image"
	CategoryAudio     Category = "audio"
)

// Keyword lists for category inference, checked in order. The first
// category with a matching keyword wins.
var (
	llmKeywords = []string{
		"llama", "mistral", "qwen", "gemma", "deepseek", "gpt", "phi",
		"falcon", "hermes", "openchat", "sqlcoder", "neural-chat",
		"openhermes", "zephyr", "starling", "cybertron", "chat",
		"instruct", "granite",
	}
	embeddingKeywords = []string{"bge", "embedding", "embed"}
	imageKeywords     = []string{"stable-diffusion", "flux", "dreamshaper", "lucid", "phoenix"}
	audioKeywords     = []string{"whisper", "nova", "asr"}
)

// InferCategory infers a model's category from substrings of its id.
// The second return value reports whether any keyword matched; callers
// decide their own fallback (the catalog defaults to LLM, the input
// formatter passes unmatched ids through unchanged).
func InferCategory(id string) (Category, bool) {
	switch {
	case containsAny(id, llmKeywords):
		return CategoryLLM, true
	case containsAny(id, embeddingKeywords):
		return CategoryEmbedding, true
	case containsAny(id, imageKeywords):
		return CategoryImage, true
	case containsAny(id, audioKeywords):
		return CategoryAudio, true
	default:
		return CategoryLLM, false
	}
}

func containsAny(id string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(id, kw) {
			return true
		}
	}
	return false
}
