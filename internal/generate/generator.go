// Package generate provides abstractive summary generation behind a small
// Generator interface, with a Gemini-backed implementation and an offline
// no-op fallback.
package generate

import "context"

// Params holds the fixed decoding parameters for a generation request.
// Backends map what they support and treat the rest as advisory.
type Params struct {
	MaxLength     int
	MinLength     int
	NumBeams      int
	LengthPenalty float64
	EarlyStopping bool
}

// DefaultParams returns the decoding defaults used by the summary pipeline.
func DefaultParams() Params {
	return Params{
		MaxLength:     150,
		MinLength:     50,
		NumBeams:      4,
		LengthPenalty: 2.0,
		EarlyStopping: true,
	}
}

// Generator rewrites input text into an abstractive summary.
type Generator interface {
	Generate(ctx context.Context, text string, params Params) (string, error)
}

// Noop is a Generator that returns its input unchanged. Used when no API key
// is configured and in tests, keeping the pipeline fully deterministic.
type Noop struct{}

// Generate returns text unchanged.
func (Noop) Generate(_ context.Context, text string, _ Params) (string, error) {
	return text, nil
}
