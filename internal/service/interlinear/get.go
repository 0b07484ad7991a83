package interlinear

import (
	"context"
	"fmt"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/interlinear"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const unavailableMessage = "Interlinear data for this verse is not available right now. " + interlinear.PopularHint

// Get returns the interlinear for the first verse of the requested reference.
// Bundled verses are served without touching the network. Upstream failures
// degrade to an Interlinear with Available=false rather than an error; only
// malformed input is reported as an error.
func (s *Service) Get(ctx context.Context, input GetInput) (*domain.Interlinear, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ref, err := s.resolve(input)
	if err != nil {
		return nil, err
	}

	// Only the first verse of a range is rendered.
	ref.VerseEnd = ref.VerseStart
	display := s.parser.DisplayForm(ref)

	if pre, ok := interlinear.Preloaded(display); ok {
		s.log.DebugContext(ctx, "serving preloaded interlinear", "reference", display)
		if input.Debug {
			pre.Strategy = domain.SourcePreloaded
		}
		return &pre, nil
	}

	lang := s.parser.Language(ref)
	result, err := s.fetch(ctx, ref, lang)
	if err != nil {
		s.log.WarnContext(ctx, "interlinear unavailable",
			"reference", display,
			"error", err,
		)
		return &domain.Interlinear{
			Reference: display,
			Source:    domain.SourceAPI,
			Language:  lang,
			Available: false,
			Message:   unavailableMessage,
		}, nil
	}

	result.Reference = display
	if !input.Debug {
		result.Strategy = ""
	}
	return result, nil
}

func (s *Service) resolve(input GetInput) (domain.VerseRef, error) {
	if input.Ref != "" {
		return s.parser.Parse(input.Ref)
	}
	return s.parser.FromParts(input.Book, input.Chapter, input.Verse)
}

func (s *Service) fetch(ctx context.Context, ref domain.VerseRef, lang domain.Language) (*domain.Interlinear, error) {
	edition := provider.EditionGreek
	if lang == domain.Hebrew {
		edition = provider.EditionHebrew
	}

	verses, err := s.chapters.FetchChapter(ctx, edition, ref.BookNumber, ref.Chapter)
	if err != nil {
		return nil, fmt.Errorf("fetch chapter: %w", err)
	}
	if verses == nil {
		return nil, fmt.Errorf("chapter %d:%d: %w", ref.BookNumber, ref.Chapter, domain.ErrNotFound)
	}

	var text string
	found := false
	for _, v := range verses {
		if v.Verse == ref.VerseStart {
			text, found = v.Text, true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("verse %d: %w", ref.VerseStart, domain.ErrNotFound)
	}

	tokens, strategy := interlinear.ExtractWithStrategy(text, lang)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no %s words in verse text: %w", lang, domain.ErrNotFound)
	}

	tokens = s.enricher.Enrich(ctx, tokens, lang)

	return &domain.Interlinear{
		Source:    domain.SourceAPI,
		Language:  lang,
		Words:     tokens,
		FullText:  interlinear.PlainText(text),
		Available: true,
		Strategy:  string(strategy),
	}, nil
}
