package verse

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockTextProvider struct {
	FetchTextFunc func(ctx context.Context, translation string, book, chapter int) ([]provider.ChapterVerse, error)
}

func (m *mockTextProvider) FetchText(ctx context.Context, translation string, book, chapter int) ([]provider.ChapterVerse, error) {
	return m.FetchTextFunc(ctx, translation, book, chapter)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(texts *mockTextProvider) *Service {
	return NewService(newTestLogger(), scripture.DefaultParser(), texts)
}

func corinthians13() []provider.ChapterVerse {
	return []provider.ChapterVerse{
		{Verse: 4, Text: "Love is patient and kind;"},
		{Verse: 5, Text: "it is not <i>arrogant</i> or rude."},
		{Verse: 7, Text: "Love bears all things."},
	}
}

func TestResolveTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, name, code string
	}{
		{"", "ESV", "ESV"},
		{"kjv", "KJV", "KJV"},
		{" csb ", "CSB", "CSB17"},
		{"NRSV", "NRSV", "NRSVCE"},
		{"LXX", "ESV", "ESV"},
	}
	for _, tt := range tests {
		name, code := ResolveTranslation(tt.in)
		assert.Equal(t, tt.name, name, tt.in)
		assert.Equal(t, tt.code, code, tt.in)
	}
}

func TestGet_SingleVerse(t *testing.T) {
	t.Parallel()

	texts := &mockTextProvider{
		FetchTextFunc: func(_ context.Context, translation string, book, chapter int) ([]provider.ChapterVerse, error) {
			assert.Equal(t, "CSB17", translation)
			assert.Equal(t, 46, book)
			assert.Equal(t, 13, chapter)
			return corinthians13(), nil
		},
	}

	got, err := newTestService(texts).Get(context.Background(), "1 Cor 13:5", "csb")
	require.NoError(t, err)

	assert.Equal(t, &Result{
		Reference:   "1 Corinthians 13:5",
		Translation: "CSB",
		Text:        "it is not arrogant or rude.",
		BookNum:     46,
		Chapter:     13,
		Verse:       5,
	}, got)
}

func TestGet_RangeJoinsAndSkipsGaps(t *testing.T) {
	t.Parallel()

	texts := &mockTextProvider{
		FetchTextFunc: func(context.Context, string, int, int) ([]provider.ChapterVerse, error) {
			return corinthians13(), nil
		},
	}

	got, err := newTestService(texts).Get(context.Background(), "1 Corinthians 13:4-7", "")
	require.NoError(t, err)

	assert.Equal(t, "1 Corinthians 13:4-7", got.Reference)
	assert.Equal(t, "ESV", got.Translation)
	assert.Equal(t, "Love is patient and kind; it is not arrogant or rude. Love bears all things.", got.Text)
	assert.Equal(t, 4, got.Verse)
}

func TestGet_EmptyIsNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		verses []provider.ChapterVerse
	}{
		{name: "chapter missing", verses: nil},
		{name: "verse missing", verses: corinthians13()[:1]},
		{name: "blank text", verses: []provider.ChapterVerse{{Verse: 5, Text: " <br/> "}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			texts := &mockTextProvider{
				FetchTextFunc: func(context.Context, string, int, int) ([]provider.ChapterVerse, error) {
					return tt.verses, nil
				},
			}
			_, err := newTestService(texts).Get(context.Background(), "1 Cor 13:5", "ESV")
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestGet_UpstreamError(t *testing.T) {
	t.Parallel()

	cause := errors.New("bolls: unexpected status 500")
	texts := &mockTextProvider{
		FetchTextFunc: func(context.Context, string, int, int) ([]provider.ChapterVerse, error) {
			return nil, cause
		},
	}

	_, err := newTestService(texts).Get(context.Background(), "John 3:16", "ESV")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestGet_InvalidReference(t *testing.T) {
	t.Parallel()

	texts := &mockTextProvider{
		FetchTextFunc: func(context.Context, string, int, int) ([]provider.ChapterVerse, error) {
			t.Fatal("FetchText must not be called")
			return nil, nil
		},
	}
	svc := newTestService(texts)

	_, err := svc.Get(context.Background(), "", "ESV")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Get(context.Background(), "Foobar 1:1", "ESV")
	assert.ErrorIs(t, err, domain.ErrUnknownBook)
}
