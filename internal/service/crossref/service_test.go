package crossref

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/heartmarshall/gospelpath-backend/internal/crossref"
	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockStore struct {
	LookupFunc func(ctx context.Context, key domain.LookupKey) ([]string, crossref.Source, bool)
	keys       []domain.LookupKey
}

func (m *mockStore) Lookup(ctx context.Context, key domain.LookupKey) ([]string, crossref.Source, bool) {
	m.keys = append(m.keys, key)
	return m.LookupFunc(ctx, key)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGet_Found(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		LookupFunc: func(_ context.Context, key domain.LookupKey) ([]string, crossref.Source, bool) {
			return []string{"Romans 5:8", "1 John 4:9"}, crossref.SourcePopular, true
		},
	}
	svc := NewService(newTestLogger(), scripture.DefaultParser(), store)

	got, err := svc.Get(context.Background(), "  Jn 3:16 ")
	require.NoError(t, err)

	assert.Equal(t, "Jn 3:16", got.Reference)
	assert.Equal(t, []string{"Romans 5:8", "1 John 4:9"}, got.CrossReferences)
	assert.Equal(t, AttributionTSK, got.Source)
	assert.Empty(t, got.Note)
	assert.Equal(t, []domain.LookupKey{"john_3_16"}, store.keys)
}

func TestGet_AliasesShareKey(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		LookupFunc: func(context.Context, domain.LookupKey) ([]string, crossref.Source, bool) {
			return nil, "", false
		},
	}
	svc := NewService(newTestLogger(), scripture.DefaultParser(), store)

	for _, ref := range []string{"John 3:16", "Jn 3:16", "john 3:16-18"} {
		_, err := svc.Get(context.Background(), ref)
		require.NoError(t, err)
	}
	require.Len(t, store.keys, 3)
	assert.Equal(t, store.keys[0], store.keys[1])
	assert.Equal(t, store.keys[0], store.keys[2])
}

func TestGet_NotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	store := &mockStore{
		LookupFunc: func(context.Context, domain.LookupKey) ([]string, crossref.Source, bool) {
			return nil, "", false
		},
	}
	svc := NewService(newTestLogger(), scripture.DefaultParser(), store)

	got, err := svc.Get(context.Background(), "Obadiah 1:21")
	require.NoError(t, err)

	assert.NotNil(t, got.CrossReferences)
	assert.Empty(t, got.CrossReferences)
	assert.Empty(t, got.Source)
	assert.Equal(t, noResultsNote, got.Note)
}

func TestGet_InvalidReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ref     string
		wantErr error
	}{
		{name: "empty", ref: " ", wantErr: domain.ErrValidation},
		{name: "unknown book", ref: "Foobar 1:1", wantErr: domain.ErrUnknownBook},
		{name: "bad syntax", ref: "John three sixteen", wantErr: domain.ErrBadSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &mockStore{
				LookupFunc: func(context.Context, domain.LookupKey) ([]string, crossref.Source, bool) {
					t.Fatal("Lookup must not be called")
					return nil, "", false
				},
			}
			svc := NewService(newTestLogger(), scripture.DefaultParser(), store)

			_, err := svc.Get(context.Background(), tt.ref)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
