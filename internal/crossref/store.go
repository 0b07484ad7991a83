// Package crossref serves cross-references from two static JSON datasets and
// builds those datasets from OpenBible.info exports.
package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// Dataset maps a lookup key to display-form references, best first.
type Dataset map[string][]string

// Source names which dataset answered a lookup.
type Source string

const (
	SourcePopular Source = "popular"
	SourceFull    Source = "full"
)

// lazyDataset reads its file on first use, at most once per process.
type lazyDataset struct {
	source Source
	path   string
	load   func() (Dataset, error)
}

func newLazyDataset(log *slog.Logger, source Source, path string) *lazyDataset {
	d := &lazyDataset{source: source, path: path}
	d.load = sync.OnceValues(func() (Dataset, error) {
		ds, err := ReadDataset(path)
		if err != nil {
			log.Error("cross-reference dataset unavailable",
				slog.String("dataset", string(source)),
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
		log.Info("cross-reference dataset loaded",
			slog.String("dataset", string(source)),
			slog.Int("verses", len(ds)),
		)
		return ds, nil
	})
	return d
}

// Store looks keys up in the popular dataset first and the full dataset on
// a miss. The full dataset is only read once a lookup misses the popular one.
type Store struct {
	datasets []*lazyDataset
}

// NewStore creates a Store over the two dataset files. Nothing is read until
// the first lookup.
func NewStore(logger *slog.Logger, popularPath, fullPath string) *Store {
	log := logger.With("component", "crossref_store")
	return &Store{datasets: []*lazyDataset{
		newLazyDataset(log, SourcePopular, popularPath),
		newLazyDataset(log, SourceFull, fullPath),
	}}
}

// Lookup returns the references for key and the dataset that held them.
// ok is false when no loadable dataset has a non-empty entry; a dataset that
// fails to load is skipped.
func (s *Store) Lookup(_ context.Context, key domain.LookupKey) (refs []string, source Source, ok bool) {
	if key == "" {
		return nil, "", false
	}
	for _, d := range s.datasets {
		ds, err := d.load()
		if err != nil {
			continue
		}
		if refs := ds[string(key)]; len(refs) > 0 {
			out := make([]string, len(refs))
			copy(out, refs)
			return out, d.source, true
		}
	}
	return nil, "", false
}

// Check loads the popular dataset and reports whether it is readable.
func (s *Store) Check(_ context.Context) error {
	_, err := s.datasets[0].load()
	return err
}

// ReadDataset decodes a dataset file.
func ReadDataset(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crossref: open %s: %w", path, err)
	}
	defer f.Close()

	var ds Dataset
	if err := json.NewDecoder(f).Decode(&ds); err != nil {
		return nil, fmt.Errorf("crossref: decode %s: %w", path, err)
	}
	if ds == nil {
		ds = Dataset{}
	}
	return ds, nil
}
