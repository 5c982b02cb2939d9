package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	defaultGeminiModel = "gemini-1.5-flash"
	maxRetries         = 3
	initialBackoff     = time.Second
)

// ErrNoAPIKey is returned when GEMINI_API_KEY is not set.
var ErrNoAPIKey = errors.New("GEMINI_API_KEY not set")

// Gemini generates abstractive summaries with the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini generator. The API key is read from the
// GEMINI_API_KEY environment variable; model may be empty to use the default.
func NewGemini(ctx context.Context, model string) (*Gemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate asks the model for a summary of text. MaxLength maps to the
// output token cap; min/max lengths also constrain the prompt. Beam count,
// length penalty, and early stopping have no Gemini equivalent and shape the
// instruction only. Transient failures are retried with exponential backoff.
func (g *Gemini) Generate(ctx context.Context, text string, params Params) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetMaxOutputTokens(int32(params.MaxLength))

	prompt := fmt.Sprintf(
		"Summarize the following commercial-legal case text in %d to %d words. "+
			"Keep party names, monetary amounts, and the court's decision. "+
			"Respond with the summary only.\n\n%s",
		params.MinLength, params.MaxLength, text)

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff *= 2
		}
		resp, err := model.GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			lastErr = err
			continue
		}
		out, err := responseText(resp)
		if err != nil {
			lastErr = err
			continue
		}
		return out, nil
	}
	return "", fmt.Errorf("generation failed after %d attempts: %w", maxRetries, lastErr)
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}

// responseText extracts the concatenated text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}
	cand := resp.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return "", fmt.Errorf("candidate has no content (finish reason: %v)", cand.FinishReason)
	}
	var b strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("candidate contained no text parts")
	}
	return out, nil
}
