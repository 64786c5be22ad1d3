// Package embedding provides semantic text embeddings for the coarse
// similarity subscore. Embeddings may come from a remote service or from a
// deterministic in-process fallback; scoring treats a failed or degenerate
// embedding as a neutral signal, never as an error.
package embedding

import (
	"context"
	"math"
)

// Embedder produces a fixed-dimension vector for a text. Implementations
// must be deterministic: the same text yields the same vector.
type Embedder interface {
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// Close releases any resources held by the embedder.
	Close() error
}

// Cosine returns the cosine similarity of two vectors clamped to [0, 1].
// Mismatched lengths and degenerate (all-zero) vectors yield 0; callers
// that need the neutral-0.5 semantics should check IsZero first.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(0, math.Min(1, sim))
}

// IsZero reports whether the vector is empty or all-zero. Such vectors are
// degenerate and must not be compared for similarity.
func IsZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
