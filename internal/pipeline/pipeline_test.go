package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/hyperjump/youyaku/internal/embedding"
	"github.com/hyperjump/youyaku/internal/generate"
)

// stubEmbedder returns fixed vectors in call order, for deterministic ranking.
type stubEmbedder struct {
	vectors [][]float32
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) { return s.vectors[0], nil }
func (s *stubEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	return s.vectors[:len(texts)], nil
}
func (s *stubEmbedder) Dimensions() int { return len(s.vectors[0]) }
func (s *stubEmbedder) Close() error    { return nil }

func TestSummarizeShortTextUnchanged(t *testing.T) {
	p := New(embedding.NewHashEmbedder(64), generate.Noop{}, 3, generate.DefaultParams())
	in := "A single sentence, with punctuation! and (parentheses)."
	got, err := p.Summarize(context.Background(), in)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got != in {
		t.Errorf("short text must pass through unchanged: got %q", got)
	}
}

func TestExtractTopRanking(t *testing.T) {
	// Vector 0 is similar to everything; vector 3 is orthogonal to all.
	emb := &stubEmbedder{vectors: [][]float32{
		{0.7, 0.7, 0, 0},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}}
	p := New(emb, generate.Noop{}, 3, generate.DefaultParams())
	sentences := []string{"central", "left", "right", "outlier"}
	got, err := p.extractTop(context.Background(), sentences, 3)
	if err != nil {
		t.Fatalf("extractTop: %v", err)
	}
	if !strings.HasPrefix(got, "central ") {
		t.Errorf("highest centrality must come first: got %q", got)
	}
	if strings.Contains(got, "outlier") {
		t.Errorf("lowest-scoring sentence must be dropped: got %q", got)
	}
}

func TestExtractTopKLargerThanInput(t *testing.T) {
	emb := &stubEmbedder{vectors: [][]float32{{1, 0}, {0, 1}}}
	p := New(emb, generate.Noop{}, 5, generate.DefaultParams())
	got, err := p.extractTop(context.Background(), []string{"one.", "two."}, 5)
	if err != nil {
		t.Fatalf("extractTop: %v", err)
	}
	if len(strings.Fields(got)) != 2 {
		t.Errorf("k beyond input size: got %q", got)
	}
}

func TestSummarizeDeterministic(t *testing.T) {
	p := New(embedding.NewHashEmbedder(128), generate.Noop{}, 3, generate.DefaultParams())
	text := "The court ruled for the plaintiff. The defendant appealed the ruling. " +
		"The appeal was denied by the panel. Costs were assigned to the defendant."
	a, err := p.Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	b, err := p.Summarize(context.Background(), text)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if a != b {
		t.Errorf("pipeline output must be deterministic:\n%q\n%q", a, b)
	}
	if len(strings.Split(a, ". ")) > 4 {
		t.Errorf("expected at most three extracted sentences: %q", a)
	}
}

func TestFilterPunctuation(t *testing.T) {
	in := "Keep periods. commas, semicolons; drop (these) [brackets] and! marks?"
	got := filterPunctuation(in)
	for _, r := range []string{".", ",", ";"} {
		if !strings.Contains(got, r) {
			t.Errorf("%q should survive: %q", r, got)
		}
	}
	for _, r := range []string{"(", ")", "[", "]", "!", "?"} {
		if strings.Contains(got, r) {
			t.Errorf("%q should be removed: %q", r, got)
		}
	}
}
