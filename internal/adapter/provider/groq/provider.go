// Package groq adapts the Groq chat-completion API through its
// OpenAI-compatible endpoint.
package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const (
	// Name is the provider identifier used in requests and responses.
	Name = "groq"

	DefaultModel   = "llama-3.3-70b-versatile"
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultTimeout = 60 * time.Second
)

// Options configures a Provider. Zero values fall back to defaults.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Provider sends chat completions to Groq.
type Provider struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider. The API key must be non-empty; callers
// check configuration before constructing.
func NewProvider(logger *slog.Logger, opts Options) *Provider {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	config := openai.DefaultConfig(opts.APIKey)
	config.BaseURL = opts.BaseURL
	config.HTTPClient = &http.Client{Timeout: opts.Timeout, Transport: opts.Transport}

	return &Provider{
		client: openai.NewClientWithConfig(config),
		model:  opts.Model,
		log:    logger.With("adapter", Name),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return Name }

// Complete sends the conversation and returns the first choice.
// An empty req.Model uses the configured default.
func (p *Provider) Complete(ctx context.Context, req provider.ChatRequest) (*provider.ChatResult, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	p.log.DebugContext(ctx, "groq request",
		slog.String("model", model),
		slog.Int("messages", len(messages)),
	)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		TopP:        float32(req.TopP),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("groq: api error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("groq: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("groq: empty response")
	}

	p.log.DebugContext(ctx, "groq response",
		slog.String("model", resp.Model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return &provider.ChatResult{
		Model:   model,
		Message: resp.Choices[0].Message.Content,
		Usage: provider.Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}, nil
}
