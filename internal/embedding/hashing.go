package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// DefaultDimensions is the vector size of the hashing embedder.
const DefaultDimensions = 256

// HashingEmbedder is a deterministic, in-process embedder that projects a
// bag of word tokens into a fixed-dimension vector via feature hashing.
// It is a coarse signal only, suitable for offline runs and tests where no
// embedding service is available; same text always yields the same vector.
type HashingEmbedder struct {
	dimensions int
}

// NewHashingEmbedder creates a hashing embedder. A non-positive dimension
// selects DefaultDimensions.
func NewHashingEmbedder(dimensions int) *HashingEmbedder {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &HashingEmbedder{dimensions: dimensions}
}

// Embed returns the hashed bag-of-words vector for the text, L2-normalized.
// Empty or token-free text yields the zero vector, which scoring treats as
// degenerate.
func (e *HashingEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vector := make([]float32, e.dimensions)

	for _, token := range tokenize(text) {
		h := fnv.New64a()
		_, _ = h.Write([]byte(token))
		sum := h.Sum64()
		bucket := int(sum % uint64(e.dimensions))
		// Use one hash bit as the sign so common tokens do not
		// systematically inflate similarity.
		if sum&(1<<63) != 0 {
			vector[bucket]--
		} else {
			vector[bucket]++
		}
	}

	normalize(vector)
	return vector, nil
}

// Close is a no-op; the hashing embedder holds no resources.
func (e *HashingEmbedder) Close() error { return nil }

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return
	}
	scale := 1 / math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) * scale)
	}
}
