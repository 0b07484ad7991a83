package interlinear

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

type chapterProvider interface {
	FetchChapter(ctx context.Context, edition string, book, chapter int) ([]provider.ChapterVerse, error)
}

type glossEnricher interface {
	Enrich(ctx context.Context, tokens []domain.WordToken, lang domain.Language) []domain.WordToken
}

// Service builds word-by-word interlinear renderings of verses.
type Service struct {
	log      *slog.Logger
	parser   *scripture.Parser
	chapters chapterProvider
	enricher glossEnricher
}

// NewService creates a new interlinear service.
func NewService(
	logger *slog.Logger,
	parser *scripture.Parser,
	chapters chapterProvider,
	enricher glossEnricher,
) *Service {
	return &Service{
		log:      logger.With("service", "interlinear"),
		parser:   parser,
		chapters: chapters,
		enricher: enricher,
	}
}
