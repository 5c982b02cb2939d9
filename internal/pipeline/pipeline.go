// Package pipeline implements the extractive+abstractive summary pipeline:
// sentence ranking by similarity centrality followed by a generative rewrite.
package pipeline

import (
	"context"

	"github.com/hyperjump/youyaku/internal/embedding"
	"github.com/hyperjump/youyaku/internal/generate"
	"github.com/hyperjump/youyaku/internal/sentence"
)

// DefaultTopK is the number of extracted sentences fed to the generator.
const DefaultTopK = 3

// Pipeline runs extractive ranking and hands the result to a generator.
type Pipeline struct {
	embedder  embedding.Embedder
	generator generate.Generator
	topK      int
	params    generate.Params
}

// New creates a pipeline. topK <= 0 uses DefaultTopK.
func New(embedder embedding.Embedder, generator generate.Generator, topK int, params generate.Params) *Pipeline {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Pipeline{embedder: embedder, generator: generator, topK: topK, params: params}
}

// Summarize produces the combined summary for text. Texts with fewer than
// two sentences are returned unchanged. Generator errors propagate to the
// caller; there is no retry at this level.
func (p *Pipeline) Summarize(ctx context.Context, text string) (string, error) {
	sentences := sentence.Texts(sentence.Split(text))
	if len(sentences) < 2 {
		return text, nil
	}
	extracted, err := p.extractTop(ctx, sentences, p.topK)
	if err != nil {
		return "", err
	}
	return p.generator.Generate(ctx, filterPunctuation(extracted), p.params)
}
