package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockChatProvider struct {
	name         string
	CompleteFunc func(ctx context.Context, req provider.ChatRequest) (*provider.ChatResult, error)
	requests     []provider.ChatRequest
}

func (m *mockChatProvider) Name() string { return m.name }

func (m *mockChatProvider) Complete(ctx context.Context, req provider.ChatRequest) (*provider.ChatResult, error) {
	m.requests = append(m.requests, req)
	return m.CompleteFunc(ctx, req)
}

func replying(name, message string) *mockChatProvider {
	return &mockChatProvider{
		name: name,
		CompleteFunc: func(_ context.Context, req provider.ChatRequest) (*provider.ChatResult, error) {
			model := req.Model
			if model == "" {
				model = name + "-default"
			}
			return &provider.ChatResult{
				Model:   model,
				Message: message,
				Usage:   provider.Usage{InputTokens: 12, OutputTokens: 34},
			}, nil
		},
	}
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func userMessages(content string) []provider.ChatMessage {
	return []provider.ChatMessage{{Role: provider.RoleUser, Content: content}}
}

// ---------------------------------------------------------------------------
// NewService / Providers
// ---------------------------------------------------------------------------

func TestProviders_OnlyConfigured(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestLogger(), nil, replying(ProviderClaude, "hi"))
	assert.Equal(t, []string{ProviderClaude}, svc.Providers())

	svc = NewService(newTestLogger(), replying(ProviderClaude, ""), replying(ProviderGroq, ""))
	assert.Equal(t, []string{ProviderGroq, ProviderClaude}, svc.Providers())
}

// ---------------------------------------------------------------------------
// Chat
// ---------------------------------------------------------------------------

func TestChat_Success(t *testing.T) {
	t.Parallel()

	groq := replying(ProviderGroq, "Grace is unmerited favor.")
	svc := NewService(newTestLogger(), groq)

	in := []provider.ChatMessage{
		{Role: provider.RoleSystem, Content: "Be brief."},
		{Role: provider.RoleUser, Content: "What is grace?"},
	}
	got, err := svc.Chat(context.Background(), ChatInput{Messages: in})
	require.NoError(t, err)

	assert.Equal(t, &ChatResult{
		Provider: ProviderGroq,
		Model:    "groq-default",
		Message:  "Grace is unmerited favor.",
		Usage:    provider.Usage{InputTokens: 12, OutputTokens: 34},
	}, got)

	require.Len(t, groq.requests, 1)
	req := groq.requests[0]
	assert.Equal(t, in, req.Messages)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 0.9, req.TopP)
	assert.Equal(t, 2000, req.MaxTokens)
}

func TestChat_ModelAndProviderSelection(t *testing.T) {
	t.Parallel()

	groq := replying(ProviderGroq, "g")
	claude := replying(ProviderClaude, "c")
	svc := NewService(newTestLogger(), groq, claude)

	got, err := svc.Chat(context.Background(), ChatInput{
		Messages: userMessages("hello"),
		Provider: " Claude ",
		Model:    "claude-custom",
	})
	require.NoError(t, err)

	assert.Equal(t, ProviderClaude, got.Provider)
	assert.Equal(t, "claude-custom", got.Model)
	assert.Empty(t, groq.requests)
	require.Len(t, claude.requests, 1)
	assert.Equal(t, "claude-custom", claude.requests[0].Model)
}

func TestChat_ProviderNotConfigured(t *testing.T) {
	t.Parallel()

	svc := NewService(newTestLogger(), replying(ProviderGroq, "g"))

	_, err := svc.Chat(context.Background(), ChatInput{Messages: userMessages("hi"), Provider: "claude"})
	assert.ErrorIs(t, err, domain.ErrProviderNotConfigured)
}

func TestChat_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input ChatInput
		field string
	}{
		{name: "no messages", input: ChatInput{}, field: "messages"},
		{name: "unknown provider", input: ChatInput{Messages: userMessages("hi"), Provider: "gpt"}, field: "provider"},
		{name: "bad role", input: ChatInput{Messages: []provider.ChatMessage{{Role: "tool", Content: "x"}}}, field: "messages[0].role"},
		{name: "blank content", input: ChatInput{Messages: userMessages("  ")}, field: "messages[0].content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			groq := replying(ProviderGroq, "g")
			svc := NewService(newTestLogger(), groq)

			_, err := svc.Chat(context.Background(), tt.input)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Empty(t, groq.requests)
		})
	}
}

func TestChat_UpstreamError(t *testing.T) {
	t.Parallel()

	cause := errors.New("groq: status 429")
	groq := &mockChatProvider{
		name: ProviderGroq,
		CompleteFunc: func(context.Context, provider.ChatRequest) (*provider.ChatResult, error) {
			return nil, cause
		},
	}
	svc := NewService(newTestLogger(), groq)

	_, err := svc.Chat(context.Background(), ChatInput{Messages: userMessages("hi")})
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestChat_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	groq := &mockChatProvider{
		name: ProviderGroq,
		CompleteFunc: func(_ context.Context, req provider.ChatRequest) (*provider.ChatResult, error) {
			req.Messages[0].Content = strings.ToUpper(req.Messages[0].Content)
			return &provider.ChatResult{Message: "ok"}, nil
		},
	}
	svc := NewService(newTestLogger(), groq)

	in := userMessages("hi")
	_, err := svc.Chat(context.Background(), ChatInput{Messages: in})
	require.NoError(t, err)
	assert.Equal(t, "hi", in[0].Content)
}
