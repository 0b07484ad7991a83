package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
	"github.com/heartmarshall/gospelpath-backend/internal/service/assistant"
)

type assistantService interface {
	Chat(ctx context.Context, input assistant.ChatInput) (*assistant.ChatResult, error)
	Xray(ctx context.Context, input assistant.XrayInput) (*assistant.XrayResult, error)
	StudyPlan(ctx context.Context, input assistant.StudyPlanInput) (*assistant.StudyPlanResult, error)
}

// AssistantHandler serves the model-backed endpoints.
type AssistantHandler struct {
	svc          assistantService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewAssistantHandler creates an AssistantHandler. Request bodies larger
// than maxBodyBytes are rejected.
func NewAssistantHandler(svc assistantService, maxBodyBytes int64, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "assistant"),
	}
}

type chatRequest struct {
	Messages []provider.ChatMessage `json:"messages"`
	Provider string                 `json:"provider"`
	Model    string                 `json:"model"`
}

type xrayRequest struct {
	Verse       string `json:"verse"`
	VerseText   string `json:"verseText"`
	Translation string `json:"translation"`
	Perspective string `json:"perspective"`
	Provider    string `json:"provider"`
}

type studyPlanRequest struct {
	Topic       string `json:"topic"`
	Duration    *int   `json:"duration"`
	Translation string `json:"translation"`
	Provider    string `json:"provider"`
}

// Chat handles POST /api/chat.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.Chat(r.Context(), assistant.ChatInput{
		Messages: req.Messages,
		Provider: req.Provider,
		Model:    req.Model,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Xray handles POST /api/xray.
func (h *AssistantHandler) Xray(w http.ResponseWriter, r *http.Request) {
	var req xrayRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}

	result, err := h.svc.Xray(r.Context(), assistant.XrayInput{
		Verse:       req.Verse,
		VerseText:   req.VerseText,
		Translation: req.Translation,
		Perspective: req.Perspective,
		Provider:    req.Provider,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// StudyPlan handles POST /api/study-plan.
func (h *AssistantHandler) StudyPlan(w http.ResponseWriter, r *http.Request) {
	var req studyPlanRequest
	if !decodeBody(w, r, h.maxBodyBytes, &req) {
		return
	}

	var duration int
	if req.Duration != nil {
		duration = *req.Duration
	}

	result, err := h.svc.StudyPlan(r.Context(), assistant.StudyPlanInput{
		Topic:       req.Topic,
		Duration:    duration,
		Translation: req.Translation,
		Provider:    req.Provider,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
