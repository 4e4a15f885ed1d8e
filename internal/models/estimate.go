// ABOUTME: Heuristic neuron cost estimation keyed on a model's category.
// ABOUTME: Used as the fallback when the backend doesn't report actual usage.

package models

// EstimateNeurons estimates the neuron cost of running this model on the
// given input. The estimate is advisory; the backend-reported figure wins
// when present. Integer division truncates, so a short embedding input can
// legitimately estimate to zero.
func (m ModelInfo) EstimateNeurons(input map[string]any) uint32 {
	switch m.Category {
	case CategoryEmbedding:
		text, _ := input["text"].(string)
		return tokensFor(text) / 10
	case CategoryImage:
		return 5000
	case CategoryAudio:
		if audio, ok := input["audio"].(string); ok {
			n := uint32(len(audio) / 1000)
			if n < 1 {
				n = 1
			}
			return n * 10
		}
		return 100
	default:
		prompt, _ := input["prompt"].(string)
		return tokensFor(prompt) + 100
	}
}

// tokensFor approximates token count as one token per four bytes, floored
// at one.
func tokensFor(s string) uint32 {
	n := uint32(len(s) / 4)
	if n < 1 {
		n = 1
	}
	return n
}
