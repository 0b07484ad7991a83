// Package claude adapts the Anthropic Messages API as a chat provider.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const (
	// Name is the provider identifier used in requests and responses.
	Name = "claude"

	DefaultModel     = "claude-sonnet-4-20250514"
	defaultTimeout   = 60 * time.Second
	defaultMaxTokens = 2000
)

// Options configures a Provider. Zero values fall back to defaults.
type Options struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// Provider sends chat completions to Claude.
type Provider struct {
	client anthropic.Client
	model  string
	log    *slog.Logger
}

// NewProvider creates a Provider. Requests are sent once; the SDK's
// automatic retries are disabled.
func NewProvider(logger *slog.Logger, opts Options) *Provider {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: opts.Timeout, Transport: opts.Transport}),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &Provider{
		client: anthropic.NewClient(reqOpts...),
		model:  opts.Model,
		log:    logger.With("adapter", Name),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return Name }

// Complete sends the conversation. System messages are lifted out of the
// list into the system prompt; top_p is not sent.
func (p *Provider) Complete(ctx context.Context, req provider.ChatRequest) (*provider.ChatResult, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	system, messages := splitSystem(req.Messages)
	if len(messages) == 0 {
		return nil, fmt.Errorf("claude: no user or assistant messages")
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(maxTokens),
		Messages:  messages,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}

	p.log.DebugContext(ctx, "claude request",
		slog.String("model", model),
		slog.Int("messages", len(messages)),
	)

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("claude: api error (status %d): %w", apiErr.StatusCode, err)
		}
		return nil, fmt.Errorf("claude: messages: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("claude: empty response")
	}

	p.log.DebugContext(ctx, "claude response",
		slog.String("model", string(msg.Model)),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return &provider.ChatResult{
		Model:   model,
		Message: text.String(),
		Usage: provider.Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// splitSystem separates system messages (joined by blank lines) from the
// user/assistant turns.
func splitSystem(in []provider.ChatMessage) (string, []anthropic.MessageParam) {
	var system []string
	messages := make([]anthropic.MessageParam, 0, len(in))
	for _, m := range in {
		switch m.Role {
		case provider.RoleSystem:
			system = append(system, m.Content)
		case provider.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return strings.Join(system, "\n\n"), messages
}
