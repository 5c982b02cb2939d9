package pipeline

import (
	"context"
	"sort"
	"strings"
	"unicode"
)

// extractTop ranks sentences by similarity centrality and returns the top-k
// joined by spaces, in descending score order (not document order). Each
// sentence's score is the row sum of its cosine similarities against every
// sentence, self included: a sentence similar to many others ranks higher.
// Ties keep the earlier sentence first (stable sort).
func (p *Pipeline) extractTop(ctx context.Context, sentences []string, k int) (string, error) {
	embs, err := p.embedder.EmbedBatch(ctx, sentences)
	if err != nil {
		return "", err
	}
	n := len(sentences)
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scores[i] += cosine(embs[i], embs[j])
		}
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	if k > n {
		k = n
	}
	picked := make([]string, k)
	for i := 0; i < k; i++ {
		picked[i] = sentences[order[i]]
	}
	return strings.Join(picked, " "), nil
}

// cosine returns the inner product of two unit-length vectors.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i] * b[i])
	}
	return dot
}

// filterPunctuation drops punctuation characters except '.', ',' and ';'
// before the text is handed to the generator.
func filterPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) && r != '.' && r != ',' && r != ';' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
