package rest

import "net/http"

// Handlers groups everything the router serves.
type Handlers struct {
	Scripture *ScriptureHandler
	Assistant *AssistantHandler
	Health    *HealthHandler
	Metrics   http.Handler
}

// NewRouter registers every route on a new ServeMux. Routes are registered
// by path only so a wrong method gets a JSON 405 instead of the mux's
// plain-text one.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/api/interlinear", allow(http.MethodGet, h.Scripture.Interlinear))
	mux.Handle("/api/cross-references", allow(http.MethodGet, h.Scripture.CrossReferences))
	mux.Handle("/api/verse", allow(http.MethodGet, h.Scripture.Verse))
	mux.Handle("/api/strongs", allow(http.MethodGet, h.Scripture.Strongs))

	mux.Handle("/api/chat", allow(http.MethodPost, h.Assistant.Chat))
	mux.Handle("/api/xray", allow(http.MethodPost, h.Assistant.Xray))
	mux.Handle("/api/study-plan", allow(http.MethodPost, h.Assistant.StudyPlan))

	mux.Handle("/live", allow(http.MethodGet, h.Health.Live))
	mux.Handle("/ready", allow(http.MethodGet, h.Health.Ready))
	mux.Handle("/health", allow(http.MethodGet, h.Health.Health))

	if h.Metrics != nil {
		mux.Handle("/metrics", h.Metrics)
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:   "Not found",
			Message: "no route for " + r.URL.Path,
		})
	})

	return mux
}

func allow(method string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
				Error:   "Method not allowed",
				Message: "this endpoint only accepts " + method + " requests",
			})
			return
		}
		h(w, r)
	})
}
