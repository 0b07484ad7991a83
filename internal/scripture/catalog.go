// Package scripture resolves free-text Bible references: the book catalog,
// the reference grammar, and the lookup-key and display-form builders shared
// by every dataset.
package scripture

import (
	"fmt"
	"sync"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// lastOldTestamentBook is the testament boundary: Malachi is 39, Matthew 40.
const lastOldTestamentBook = 39

// BookCount is the number of canonical books.
const BookCount = 66

// Catalog is the immutable table of canonical books and their aliases.
type Catalog struct {
	books   [BookCount + 1]domain.BookEntry // index 0 unused
	byAlias map[string]int
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(canonicalBooks)
	if err != nil {
		panic(fmt.Sprintf("scripture: invalid built-in catalog: %v", err))
	}
	return c
})

// DefaultCatalog returns the process-wide catalog of the 66 canonical books.
func DefaultCatalog() *Catalog {
	return defaultCatalog()
}

// NewCatalog builds a catalog from entries. Every book number 1..66 must
// appear exactly once, and an alias may not belong to two books.
func NewCatalog(entries []domain.BookEntry) (*Catalog, error) {
	c := &Catalog{byAlias: make(map[string]int, len(entries)*6)}

	for _, e := range entries {
		if e.Number < 1 || e.Number > BookCount {
			return nil, fmt.Errorf("book %q: number %d out of range", e.Name, e.Number)
		}
		if c.books[e.Number].Number != 0 {
			return nil, fmt.Errorf("book number %d defined twice", e.Number)
		}
		if len(e.Aliases) < 2 {
			return nil, fmt.Errorf("book %q: needs a full name and a short alias", e.Name)
		}
		c.books[e.Number] = e

		for _, a := range e.Aliases {
			key := domain.NormalizeText(a)
			if other, ok := c.byAlias[key]; ok && other != e.Number {
				return nil, fmt.Errorf("alias %q maps to books %d and %d", key, other, e.Number)
			}
			c.byAlias[key] = e.Number
		}
	}

	for n := 1; n <= BookCount; n++ {
		if c.books[n].Number == 0 {
			return nil, fmt.Errorf("book number %d missing", n)
		}
	}

	return c, nil
}

// Resolve maps a book-name token to its entry. Matching is exact against the
// alias table after trimming, lowercasing, and collapsing inner whitespace.
// Unknown tokens return domain.ErrUnknownBook.
func (c *Catalog) Resolve(nameToken string) (domain.BookEntry, error) {
	n, ok := c.byAlias[domain.NormalizeText(nameToken)]
	if !ok {
		return domain.BookEntry{}, fmt.Errorf("resolve %q: %w", nameToken, domain.ErrUnknownBook)
	}
	return c.books[n], nil
}

// Book returns the entry for a book number.
func (c *Catalog) Book(number int) (domain.BookEntry, bool) {
	if number < 1 || number > BookCount {
		return domain.BookEntry{}, false
	}
	return c.books[number], true
}

// Books returns all entries in canonical order.
func (c *Catalog) Books() []domain.BookEntry {
	out := make([]domain.BookEntry, BookCount)
	copy(out, c.books[1:])
	return out
}

// TestamentOf returns the testament of a book number.
func TestamentOf(bookNumber int) domain.Testament {
	return testamentOf(bookNumber)
}

// LanguageOf returns the source language of a book number: Hebrew for the
// Old Testament, Greek for the New.
func LanguageOf(bookNumber int) domain.Language {
	if testamentOf(bookNumber) == domain.OldTestament {
		return domain.Hebrew
	}
	return domain.Greek
}

func testamentOf(bookNumber int) domain.Testament {
	if bookNumber <= lastOldTestamentBook {
		return domain.OldTestament
	}
	return domain.NewTestament
}
