package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/gospelpath-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLength bounds a client-supplied request ID; longer ones are
// replaced with a generated ID.
const maxRequestIDLength = 128

// RequestID returns middleware that propagates the X-Request-Id header, or
// generates a UUID when the client sent none, and stores it in the context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
		})
	}
}
