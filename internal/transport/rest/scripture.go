package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	crossrefsvc "github.com/heartmarshall/gospelpath-backend/internal/service/crossref"
	interlinearsvc "github.com/heartmarshall/gospelpath-backend/internal/service/interlinear"
	versesvc "github.com/heartmarshall/gospelpath-backend/internal/service/verse"
)

type interlinearService interface {
	Get(ctx context.Context, input interlinearsvc.GetInput) (*domain.Interlinear, error)
}

type crossRefService interface {
	Get(ctx context.Context, ref string) (*crossrefsvc.Result, error)
}

type verseService interface {
	Get(ctx context.Context, ref, translation string) (*versesvc.Result, error)
}

type strongsService interface {
	Lookup(ctx context.Context, num string) (*domain.LexiconEntry, error)
}

// ScriptureHandler serves the read-only verse endpoints.
type ScriptureHandler struct {
	interlinear interlinearService
	crossRefs   crossRefService
	verses      verseService
	strongs     strongsService
	log         *slog.Logger
}

// NewScriptureHandler creates a ScriptureHandler.
func NewScriptureHandler(
	interlinear interlinearService,
	crossRefs crossRefService,
	verses verseService,
	strongs strongsService,
	logger *slog.Logger,
) *ScriptureHandler {
	return &ScriptureHandler{
		interlinear: interlinear,
		crossRefs:   crossRefs,
		verses:      verses,
		strongs:     strongs,
		log:         logger.With("handler", "scripture"),
	}
}

// Interlinear handles GET /api/interlinear?ref=... or ?book=&chapter=&verse=.
func (h *ScriptureHandler) Interlinear(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	debug, _ := strconv.ParseBool(q.Get("debug"))

	result, err := h.interlinear.Get(r.Context(), interlinearsvc.GetInput{
		Ref:     q.Get("ref"),
		Book:    q.Get("book"),
		Chapter: q.Get("chapter"),
		Verse:   q.Get("verse"),
		Debug:   debug,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// CrossReferences handles GET /api/cross-references?ref=...
func (h *ScriptureHandler) CrossReferences(w http.ResponseWriter, r *http.Request) {
	result, err := h.crossRefs.Get(r.Context(), r.URL.Query().Get("ref"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Verse handles GET /api/verse?ref=...&translation=...
func (h *ScriptureHandler) Verse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.verses.Get(r.Context(), q.Get("ref"), q.Get("translation"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Strongs handles GET /api/strongs?num=...
func (h *ScriptureHandler) Strongs(w http.ResponseWriter, r *http.Request) {
	result, err := h.strongs.Lookup(r.Context(), r.URL.Query().Get("num"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
