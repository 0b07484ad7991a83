package crossref

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/crossref"
	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

// AttributionTSK credits the origin of the cross-reference data.
const AttributionTSK = "Treasury of Scripture Knowledge"

const noResultsNote = "No cross-references found for this verse"

type crossRefStore interface {
	Lookup(ctx context.Context, key domain.LookupKey) ([]string, crossref.Source, bool)
}

// Result is the cross-reference list for one verse.
type Result struct {
	Reference       string   `json:"reference"`
	CrossReferences []string `json:"crossReferences"`
	Source          string   `json:"source,omitempty"`
	Note            string   `json:"note,omitempty"`
}

// Service answers cross-reference queries from the static datasets.
type Service struct {
	log    *slog.Logger
	parser *scripture.Parser
	store  crossRefStore
}

// NewService creates a new cross-reference service.
func NewService(logger *slog.Logger, parser *scripture.Parser, store crossRefStore) *Service {
	return &Service{
		log:    logger.With("service", "crossref"),
		parser: parser,
		store:  store,
	}
}

// Get returns the cross-references of the first verse of ref. The reference
// is echoed back as given. A verse with no data yields an empty list and a
// note, not an error.
func (s *Service) Get(ctx context.Context, ref string) (*Result, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, domain.NewValidationError("ref", "required")
	}

	parsed, err := s.parser.Parse(ref)
	if err != nil {
		return nil, err
	}

	key := s.parser.BuildLookupKey(parsed)
	refs, source, ok := s.store.Lookup(ctx, key)
	if !ok {
		s.log.DebugContext(ctx, "no cross-references", "key", string(key))
		return &Result{
			Reference:       ref,
			CrossReferences: []string{},
			Note:            noResultsNote,
		}, nil
	}

	s.log.DebugContext(ctx, "cross-references found",
		"key", string(key),
		"dataset", string(source),
		"count", len(refs),
	)
	return &Result{
		Reference:       ref,
		CrossReferences: refs,
		Source:          AttributionTSK,
	}, nil
}
