package embedding

import (
	"context"
	"math"
	"strings"
)

// HashEmbedder is a deterministic embedder used as the fallback when no ONNX
// model is configured, and in tests. Vectors are derived from word hashes so
// the same text always embeds identically and texts sharing words land near
// each other, which is enough for similarity ranking to be stable.
type HashEmbedder struct {
	dimensions int
}

// NewHashEmbedder returns a deterministic embedder of the given dimensions.
func NewHashEmbedder(dimensions int) *HashEmbedder {
	if dimensions <= 0 {
		dimensions = 384
	}
	return &HashEmbedder{dimensions: dimensions}
}

// Embed returns a unit-length vector built from per-word hash features.
func (e *HashEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	emb := make([]float32, e.dimensions)
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		emb[0] = 1
		return emb, nil
	}
	for _, w := range words {
		h := HashString(w)
		for i := 0; i < 4; i++ {
			idx := int((h >> (i * 8)) % uint64(e.dimensions))
			emb[idx] += float32(math.Sin(float64(h)+float64(i)))*0.5 + 1
		}
	}
	normalize(emb)
	return emb, nil
}

// EmbedBatch calls Embed for each text.
func (e *HashEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		emb, err := e.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = emb
	}
	return out, nil
}

// Dimensions returns the embedding dimension.
func (e *HashEmbedder) Dimensions() int { return e.dimensions }

// Close is a no-op.
func (e *HashEmbedder) Close() error { return nil }

// HashString returns a stable FNV-1a hash of s.
func HashString(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// normalize scales v in place to unit L2 norm; zero vectors are unchanged.
func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x * x)
	}
	if sum == 0 {
		return
	}
	inv := float32(1 / math.Sqrt(sum))
	for i := range v {
		v[i] *= inv
	}
}
