package verse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/interlinear"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

// DefaultTranslation is used when the request names none or an unknown one.
const DefaultTranslation = "ESV"

// translations maps public translation names to text-provider codes.
var translations = map[string]string{
	"ESV":  "ESV",
	"NIV":  "NIV",
	"KJV":  "KJV",
	"NKJV": "NKJV",
	"NASB": "NASB",
	"NLT":  "NLT",
	"CSB":  "CSB17",
	"MSG":  "MSG",
	"AMP":  "AMP",
	"NRSV": "NRSVCE",
	"WEB":  "WEB",
	"YLT":  "YLT",
}

// ResolveTranslation returns the public name and provider code for a
// requested translation, falling back to DefaultTranslation.
func ResolveTranslation(requested string) (name, code string) {
	name = strings.ToUpper(strings.TrimSpace(requested))
	if code, ok := translations[name]; ok {
		return name, code
	}
	return DefaultTranslation, translations[DefaultTranslation]
}

type textProvider interface {
	FetchText(ctx context.Context, translation string, book, chapter int) ([]provider.ChapterVerse, error)
}

// Result is the translated text of a verse or verse range.
type Result struct {
	Reference   string `json:"reference"`
	Translation string `json:"translation"`
	Text        string `json:"text"`
	BookNum     int    `json:"bookNum"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
}

// Service serves translated verse text.
type Service struct {
	log    *slog.Logger
	parser *scripture.Parser
	texts  textProvider
}

// NewService creates a new verse text service.
func NewService(logger *slog.Logger, parser *scripture.Parser, texts textProvider) *Service {
	return &Service{
		log:    logger.With("service", "verse"),
		parser: parser,
		texts:  texts,
	}
}

// Get returns the text of ref in the requested translation. The verses of a
// range are joined with single spaces; verses the chapter lacks are skipped.
func (s *Service) Get(ctx context.Context, ref, translation string) (*Result, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.NewValidationError("ref", "required")
	}

	parsed, err := s.parser.Parse(ref)
	if err != nil {
		return nil, err
	}

	name, code := ResolveTranslation(translation)
	display := s.parser.DisplayForm(parsed)

	verses, err := s.texts.FetchText(ctx, code, parsed.BookNumber, parsed.Chapter)
	if err != nil {
		s.log.WarnContext(ctx, "verse text fetch failed",
			"reference", display,
			"translation", code,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
	}

	text := joinRange(verses, parsed.VerseStart, parsed.VerseEnd)
	if text == "" {
		return nil, fmt.Errorf("verse %s (%s): %w", display, name, domain.ErrNotFound)
	}

	return &Result{
		Reference:   display,
		Translation: name,
		Text:        text,
		BookNum:     parsed.BookNumber,
		Chapter:     parsed.Chapter,
		Verse:       parsed.VerseStart,
	}, nil
}

func joinRange(verses []provider.ChapterVerse, start, end int) string {
	byNumber := make(map[int]string, len(verses))
	for _, v := range verses {
		byNumber[v.Verse] = v.Text
	}

	parts := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		if t := interlinear.ReadingText(byNumber[n]); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
