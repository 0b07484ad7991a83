package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// errorResponse is the JSON body of every non-2xx API response.
type errorResponse struct {
	Error    string       `json:"error"`
	Message  string       `json:"message,omitempty"`
	Received string       `json:"received,omitempty"`
	Fields   []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and reported as 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		parseErr *domain.ParseError
		valErr   *domain.ValidationError
	)

	switch {
	case errors.As(err, &parseErr):
		msg := "Invalid reference format"
		if parseErr.Reason == domain.ReasonUnknownBook {
			msg = "Unknown book"
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    msg,
			Message:  parseErr.Detail,
			Received: parseErr.Input,
		})
	case errors.As(err, &valErr):
		fields := make([]fieldError, 0, len(valErr.Errors))
		for _, fe := range valErr.Errors {
			fields = append(fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request",
			Message: valErr.Error(),
			Fields:  fields,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found", Message: err.Error()})
	case errors.Is(err, domain.ErrProviderNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error:   "Provider not configured",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		log.WarnContext(r.Context(), "upstream unavailable", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:   "Upstream unavailable",
			Message: "An external service did not answer. Please try again.",
		})
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody reads a JSON request body into dst, rejecting bodies over
// limit bytes and unknown trailing data.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body", Message: err.Error()})
		return false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
