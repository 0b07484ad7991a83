package assistant

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

// Known chat providers. A known provider may still be unconfigured.
const (
	ProviderGroq   = "groq"
	ProviderClaude = "claude"
)

// DefaultProvider serves requests that name no provider.
const DefaultProvider = ProviderGroq

// Sampling parameters shared by every assistant feature.
const (
	temperature       = 0.7
	topP              = 0.9
	chatMaxTokens     = 2000
	longFormMaxTokens = 4000
)

// ChatProvider is a chat-completion backend such as Groq or Claude.
type ChatProvider interface {
	Name() string
	Complete(ctx context.Context, req provider.ChatRequest) (*provider.ChatResult, error)
}

// Service implements the chat, X-ray and study-plan features on top of
// chat-completion providers.
type Service struct {
	log       *slog.Logger
	providers map[string]ChatProvider
}

// NewService creates a new assistant service. Only configured providers
// should be passed; nil entries are ignored.
func NewService(logger *slog.Logger, providers ...ChatProvider) *Service {
	m := make(map[string]ChatProvider, len(providers))
	for _, p := range providers {
		if p != nil {
			m[p.Name()] = p
		}
	}
	return &Service{
		log:       logger.With("service", "assistant"),
		providers: m,
	}
}

// Providers returns the names of the configured providers.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for _, n := range []string{ProviderGroq, ProviderClaude} {
		if _, ok := s.providers[n]; ok {
			names = append(names, n)
		}
	}
	return names
}

func isKnownProvider(name string) bool {
	return name == ProviderGroq || name == ProviderClaude
}

// provider returns the named provider or ErrProviderNotConfigured.
// The name must already be validated as known.
func (s *Service) provider(name string) (ChatProvider, error) {
	p, ok := s.providers[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrProviderNotConfigured)
	}
	return p, nil
}

// complete runs one completion and marks provider failures as upstream errors.
func (s *Service) complete(ctx context.Context, p ChatProvider, req provider.ChatRequest) (*provider.ChatResult, error) {
	res, err := p.Complete(ctx, req)
	if err != nil {
		s.log.WarnContext(ctx, "chat provider failed",
			"provider", p.Name(),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}
	s.log.DebugContext(ctx, "chat completion",
		"provider", p.Name(),
		"model", res.Model,
		"input_tokens", res.Usage.InputTokens,
		"output_tokens", res.Usage.OutputTokens,
	)
	return res, nil
}
