package claude

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const okResponse = `{
	"id": "msg_01", "type": "message", "role": "assistant",
	"model": "claude-sonnet-4-20250514",
	"content": [{"type": "text", "text": "Faith is trust."}],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 20, "output_tokens": 5}
}`

func TestProvider_Complete_LiftsSystemMessage(t *testing.T) {
	t.Parallel()

	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okResponse))
	}))
	defer srv.Close()

	p := NewProvider(newTestLogger(), Options{APIKey: "test-key", BaseURL: srv.URL})
	res, err := p.Complete(context.Background(), provider.ChatRequest{
		Messages: []provider.ChatMessage{
			{Role: provider.RoleSystem, Content: "You are a Bible study assistant."},
			{Role: provider.RoleUser, Content: "What is faith?"},
			{Role: provider.RoleAssistant, Content: "Trust."},
			{Role: provider.RoleUser, Content: "Say more."},
		},
		Temperature: 0.7,
		TopP:        0.9,
		MaxTokens:   4000,
	})

	require.NoError(t, err)
	assert.Equal(t, "Faith is trust.", res.Message)
	assert.Equal(t, DefaultModel, res.Model)
	assert.Equal(t, provider.Usage{InputTokens: 20, OutputTokens: 5}, res.Usage)

	assert.EqualValues(t, 4000, body["max_tokens"])
	assert.InDelta(t, 0.7, body["temperature"], 1e-9)
	assert.NotContains(t, body, "top_p")

	system, ok := body["system"].([]any)
	require.True(t, ok)
	require.Len(t, system, 1)
	assert.Equal(t, "You are a Bible study assistant.", system[0].(map[string]any)["text"])

	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 3)
	assert.Equal(t, "assistant", msgs[1].(map[string]any)["role"])
}

func TestProvider_Complete_NoRetryOnServerError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "overloaded_error", "message": "Overloaded"}}`))
	}))
	defer srv.Close()

	p := NewProvider(newTestLogger(), Options{APIKey: "k", BaseURL: srv.URL})
	_, err := p.Complete(context.Background(), provider.ChatRequest{
		Messages: []provider.ChatMessage{{Role: provider.RoleUser, Content: "hi"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Equal(t, int32(1), calls.Load())
}

func TestProvider_Complete_OnlySystem(t *testing.T) {
	t.Parallel()

	p := NewProvider(newTestLogger(), Options{APIKey: "k", BaseURL: "http://127.0.0.1:0"})
	_, err := p.Complete(context.Background(), provider.ChatRequest{
		Messages: []provider.ChatMessage{{Role: provider.RoleSystem, Content: "sys"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user or assistant messages")
}
