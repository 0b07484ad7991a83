package strongs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/interlinear"
	"github.com/heartmarshall/gospelpath-backend/internal/lexicon"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const longDefinitionMax = 500

type lexiconProvider interface {
	FetchDefinition(ctx context.Context, strongs string) (*provider.LexiconResult, error)
}

// Service looks up Strong's concordance entries.
type Service struct {
	log     *slog.Logger
	lexicon lexiconProvider
}

// NewService creates a new Strong's lookup service.
func NewService(logger *slog.Logger, lexicon lexiconProvider) *Service {
	return &Service{
		log:     logger.With("service", "strongs"),
		lexicon: lexicon,
	}
}

// Lookup returns the entry for a Strong's number such as "h430" or "G26".
// Bundled entries are served first. A lexicon failure is reported as
// ErrNotFound, the same as a missing entry.
func (s *Service) Lookup(ctx context.Context, num string) (*domain.LexiconEntry, error) {
	if strings.TrimSpace(num) == "" {
		return nil, domain.NewValidationError("num", "required")
	}
	number, ok := lexicon.NormalizeStrongs(num)
	if !ok {
		return nil, domain.NewValidationError("num", "must be H or G followed by digits, e.g. H7225 or G26")
	}

	if entry, ok := lexicon.PreloadedEntry(number); ok {
		return &entry, nil
	}

	res, err := s.lexicon.FetchDefinition(ctx, number)
	if err != nil {
		s.log.WarnContext(ctx, "lexicon lookup failed", "strongs", number, "error", err)
		return nil, fmt.Errorf("strong's %s: %w", number, domain.ErrNotFound)
	}
	if res == nil {
		return nil, fmt.Errorf("strong's %s: %w", number, domain.ErrNotFound)
	}

	entry := toEntry(number, res)
	return &entry, nil
}

func toEntry(number string, res *provider.LexiconResult) domain.LexiconEntry {
	long := domain.StripMarkup(res.Definition)

	short := domain.RemoveMarkup(res.ShortDefinition)
	if short == "" {
		short, _, _ = strings.Cut(long, ".")
		short = strings.TrimSpace(short)
	}

	translit := res.Transliteration
	if translit == "" {
		translit = interlinear.Transliterate(res.Lemma, domain.LanguageForStrongs(number))
	}

	var usage string
	if res.Occurrences > 0 {
		usage = fmt.Sprintf("Used %d times", res.Occurrences)
	}

	return domain.LexiconEntry{
		Number:          number,
		Source:          lexicon.SourceBolls,
		Lemma:           res.Lemma,
		Transliteration: translit,
		Pronunciation:   res.Pronunciation,
		PartOfSpeech:    res.PartOfSpeech,
		Definition:      short,
		LongDefinition:  truncate(long, longDefinitionMax),
		Usage:           usage,
	}
}

// truncate caps s at max runes, marking the cut with "...".
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
