package era

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	model     = "gpt-4o-mini"
	maxTokens = 300
	// Low temperature favors deterministic, concise phrasing over creative
	// variation.
	temperature = 0.3

	// A hung upstream call must not hold the handler slot indefinitely.
	upstreamTimeout = 30 * time.Second
)

const systemPrompt = "You are ERA, a professional resume description generator. " +
	"Create concise, impactful bullet points for resumes. " +
	"Use action verbs and quantify achievements when possible."

// ErrUnauthorized marks an upstream authorization failure (bad or expired key).
var ErrUnauthorized = errors.New("era: upstream rejected credentials")

// Generator is the adapter over the external text-generation endpoint.
type Generator struct {
	client *openai.Client
}

// NewGenerator creates a generator bound to the given API key.
func NewGenerator(apiKey string) *Generator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &Generator{client: &client}
}

// Generate sends a single synchronous completion request and returns the
// trimmed output text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Model:       model,
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403) {
			return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("no response from upstream")
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
