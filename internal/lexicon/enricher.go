package lexicon

import (
	"context"
	"log/slog"
	"time"

	"github.com/graph-gophers/dataloader/v7"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const (
	defaultWorkers       = 8
	defaultLookupTimeout = 5 * time.Second

	loaderWait = 10 * time.Millisecond
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces
// ---------------------------------------------------------------------------

type lexiconProvider interface {
	FetchDefinition(ctx context.Context, strongs string) (*provider.LexiconResult, error)
}

// EnricherOptions bounds the lexicon fan-out.
type EnricherOptions struct {
	Workers       int
	LookupTimeout time.Duration
}

// Enricher fills English glosses on interlinear tokens. Lookups that fail
// leave the gloss empty; they never fail the whole call.
type Enricher struct {
	log     *slog.Logger
	lexicon lexiconProvider
	workers int
	timeout time.Duration
}

// NewEnricher creates an Enricher. Zero options fall back to defaults.
func NewEnricher(logger *slog.Logger, lexicon lexiconProvider, opts EnricherOptions) *Enricher {
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.LookupTimeout <= 0 {
		opts.LookupTimeout = defaultLookupTimeout
	}
	return &Enricher{
		log:     logger.With("service", "gloss_enricher"),
		lexicon: lexicon,
		workers: opts.Workers,
		timeout: opts.LookupTimeout,
	}
}

// Enrich returns a copy of tokens with glosses filled where resolvable.
// Order and length are preserved. Resolution per token, first hit wins:
// curated cache (Hebrew only), lexicon definition, lexicon short definition.
func (e *Enricher) Enrich(ctx context.Context, tokens []domain.WordToken, lang domain.Language) []domain.WordToken {
	out := make([]domain.WordToken, len(tokens))
	copy(out, tokens)

	var pending []int
	unique := make(map[string]struct{})
	for i := range out {
		tok := &out[i]
		if tok.StrongsNumber == "" || tok.EnglishGloss != "" {
			continue
		}
		if lang == domain.Hebrew {
			if entry, ok := LookupGloss(tok.StrongsNumber); ok {
				tok.EnglishGloss = entry.Gloss
				if len([]rune(entry.Transliteration)) >= 2 {
					tok.Transliteration = entry.Transliteration
				}
				continue
			}
		}
		pending = append(pending, i)
		unique[tok.StrongsNumber] = struct{}{}
	}
	if len(pending) == 0 {
		return out
	}

	// Per-call loader: duplicate Strong's numbers share one lookup, and the
	// batch fires once every unique number has been loaded.
	loader := dataloader.NewBatchedLoader(
		e.batchFn(),
		dataloader.WithWait[string, string](loaderWait),
		dataloader.WithBatchCapacity[string, string](len(unique)),
	)

	thunks := make([]dataloader.Thunk[string], len(pending))
	for j, i := range pending {
		thunks[j] = loader.Load(ctx, out[i].StrongsNumber)
	}

	var unresolved int
	for j, i := range pending {
		gloss, err := thunks[j]()
		if err != nil || gloss == "" {
			unresolved++
			continue
		}
		out[i].EnglishGloss = gloss
	}

	if unresolved > 0 {
		e.log.DebugContext(ctx, "glosses unresolved",
			slog.Int("tokens", len(out)),
			slog.Int("unresolved", unresolved),
		)
	}
	return out
}

// batchFn fans lookups for unique Strong's numbers out over a bounded pool.
// Each lookup gets its own timeout; a failed lookup yields an error result
// for that key only.
func (e *Enricher) batchFn() dataloader.BatchFunc[string, string] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[string] {
		results := make([]*dataloader.Result[string], len(keys))

		var g errgroup.Group
		g.SetLimit(e.workers)

		for i, key := range keys {
			g.Go(func() error {
				gloss, err := e.lookup(ctx, key)
				results[i] = &dataloader.Result[string]{Data: gloss, Error: err}
				return nil
			})
		}
		_ = g.Wait()

		return results
	}
}

// lookup resolves tiers 2 and 3 for one Strong's number.
func (e *Enricher) lookup(ctx context.Context, strongs string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	res, err := e.lexicon.FetchDefinition(ctx, strongs)
	if err != nil {
		e.log.WarnContext(ctx, "lexicon lookup failed",
			slog.String("strongs", strongs),
			slog.String("error", err.Error()),
		)
		return "", err
	}
	if res == nil {
		return "", nil
	}

	if gloss := BestGloss(res.Definition); gloss != "" {
		return gloss, nil
	}
	return ShortGloss(res.ShortDefinition), nil
}
