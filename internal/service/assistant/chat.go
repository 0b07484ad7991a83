package assistant

import (
	"context"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

// ChatResult is the assistant's reply to a conversation.
type ChatResult struct {
	Provider string         `json:"provider"`
	Model    string         `json:"model"`
	Message  string         `json:"message"`
	Usage    provider.Usage `json:"usage"`
}

// Chat continues a conversation with the requested provider. An empty model
// selects the provider's default.
func (s *Service) Chat(ctx context.Context, input ChatInput) (*ChatResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.provider(providerOrDefault(input.Provider))
	if err != nil {
		return nil, err
	}

	messages := make([]provider.ChatMessage, len(input.Messages))
	copy(messages, input.Messages)

	res, err := s.complete(ctx, p, provider.ChatRequest{
		Model:       input.Model,
		Messages:    messages,
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   chatMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Provider: p.Name(),
		Model:    res.Model,
		Message:  res.Message,
		Usage:    res.Usage,
	}, nil
}
