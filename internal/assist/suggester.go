// Package assist proposes machine translations for UI string lines that
// have not been localized yet, using the OpenAI API. Suggestions are a
// starting point for a human translator, never applied automatically.
package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"codeberg.org/talvik/gamestrings/internal/localize"
)

// Suggester translates UI string values via the OpenAI chat API. API
// calls run behind a circuit breaker so a flapping endpoint fails fast
// instead of stalling a whole batch.
type Suggester struct {
	apiKey  string
	client  *openai.Client
	breaker *gobreaker.CircuitBreaker
}

// NewSuggester creates a new suggester instance.
func NewSuggester(apiKey string) *Suggester {
	return &Suggester{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai",
			Timeout: 30 * time.Second,
		}),
	}
}

// SuggestValue translates a single UI string value to the target language.
func (s *Suggester) SuggestValue(ctx context.Context, value, targetLang string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	result, err := s.breaker.Execute(func() (interface{}, error) {
		req := openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Translate the user interface label '%s' to %s. Respond with only the translation, nothing else.",
						value, targetLang),
				},
			},
			MaxTokens:   50,
			Temperature: 0.3,
		}

		resp, err := s.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no translation returned")
		}
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// SuggestLines returns a copy of lines where every well-formed
// "name = value" line gets a suggested translation of its value. Lines
// without the separator pass through untouched; the first API failure
// aborts the batch so a dead endpoint is not hammered once per line.
func (s *Suggester) SuggestLines(ctx context.Context, lines []string, targetLang string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		name, value, ok := strings.Cut(line, localize.Separator)
		if !ok || value == "" {
			continue
		}
		suggestion, err := s.SuggestValue(ctx, value, targetLang)
		if err != nil {
			return nil, fmt.Errorf("failed to suggest %s: %w", name, err)
		}
		out[i] = name + localize.Separator + suggestion
	}
	return out, nil
}
