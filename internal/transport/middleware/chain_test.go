package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/gospelpath-backend/internal/config"
	"github.com/heartmarshall/gospelpath-backend/internal/metrics"
	"github.com/heartmarshall/gospelpath-backend/pkg/ctxutil"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var order []string

	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name+"-before")
				next.ServeHTTP(w, r)
				order = append(order, name+"-after")
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusOK)
	})

	Chain(mw("mw1"), mw("mw2"))(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	expected := []string{"mw1-before", "mw2-before", "handler", "mw2-after", "mw1-after"}
	if len(order) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(order), order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("order[%d] = %s, want %s", i, order[i], v)
		}
	}
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	Chain()(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Error("expected handler to be called")
	}
}

func TestStack_EndToEnd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	reg := metrics.New()

	var seenID string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/verse", func(w http.ResponseWriter, r *http.Request) {
		seenID = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	h := Stack(logger, config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET", AllowedHeaders: "Content-Type"}, reg)(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/verse?ref=John+3:16", nil)
	req.Header.Set("X-Request-Id", "abc")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seenID != "abc" {
		t.Errorf("request id in handler = %q, want %q", seenID, "abc")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"request_id":"abc"`)) {
		t.Errorf("expected request log with request_id, got %s", buf.String())
	}
}
