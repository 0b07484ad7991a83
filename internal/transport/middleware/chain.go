package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gospelpath-backend/internal/config"
	"github.com/heartmarshall/gospelpath-backend/internal/metrics"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middleware into a single Middleware.
// Chain(mw1, mw2)(handler) results in mw1(mw2(handler)), so mw1 executes
// first (outermost).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// Stack is the middleware every API request passes through. Metrics sits
// innermost so it observes the route pattern chosen by the ServeMux.
func Stack(logger *slog.Logger, cors config.CORSConfig, reg *metrics.Registry) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		Logger(logger),
		CORS(cors),
		Metrics(reg),
	)
}
