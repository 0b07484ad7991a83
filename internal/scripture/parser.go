package scripture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// referenceGrammar is "<book> <chapter>:<verse>[-<verse>]".
//
//nolint:govet // participle grammar tags are not standard struct tags
type referenceGrammar struct {
	Book       string  `@Book`
	Chapter    string  `@Number Colon`
	VerseStart string  `@Number`
	VerseEnd   *string `( Dash @Number )?`
}

// referenceLexer tokenizes references. A book token is one or more words,
// optionally led by an ordinal: "John", "1 Corinthians", "1John", "Song of Solomon".
var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+[A-Za-z]+)*`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `[-\x{2010}-\x{2014}]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// Parser turns free-text references into VerseRefs and renders them back.
type Parser struct {
	catalog *Catalog
}

// NewParser creates a Parser backed by the given catalog.
func NewParser(catalog *Catalog) *Parser {
	return &Parser{catalog: catalog}
}

// DefaultParser returns a Parser over the built-in catalog.
func DefaultParser() *Parser {
	return NewParser(DefaultCatalog())
}

// Catalog returns the catalog the parser resolves books against.
func (p *Parser) Catalog() *Catalog {
	return p.catalog
}

// Parse converts text like "1 Corinthians 13:4-7" into a VerseRef.
// An unresolvable book yields a *domain.ParseError with ReasonUnknownBook;
// malformed syntax, zero chapter or verse, or a descending range yields
// ReasonBadSyntax. Chapter and verse counts are not checked against the book.
func (p *Parser) Parse(text string) (domain.VerseRef, error) {
	input := strings.TrimSpace(text)
	if input == "" {
		return domain.VerseRef{}, domain.NewBadSyntaxError(text, "empty reference")
	}

	g, err := referenceParser.ParseString("", input)
	if err != nil {
		return domain.VerseRef{}, domain.NewBadSyntaxError(text, err.Error())
	}

	book, err := p.catalog.Resolve(g.Book)
	if err != nil {
		return domain.VerseRef{}, domain.NewUnknownBookError(text)
	}

	ref := domain.VerseRef{BookNumber: book.Number}
	if ref.Chapter, err = strconv.Atoi(g.Chapter); err != nil {
		return domain.VerseRef{}, domain.NewBadSyntaxError(text, "chapter out of range")
	}
	if ref.VerseStart, err = strconv.Atoi(g.VerseStart); err != nil {
		return domain.VerseRef{}, domain.NewBadSyntaxError(text, "verse out of range")
	}
	ref.VerseEnd = ref.VerseStart
	if g.VerseEnd != nil {
		if ref.VerseEnd, err = strconv.Atoi(*g.VerseEnd); err != nil {
			return domain.VerseRef{}, domain.NewBadSyntaxError(text, "verse out of range")
		}
	}

	if msg := validateRef(ref); msg != "" {
		return domain.VerseRef{}, domain.NewBadSyntaxError(text, msg)
	}

	return ref, nil
}

// FromParts builds a single-verse VerseRef from separate book, chapter and
// verse values, as supplied by query parameters.
func (p *Parser) FromParts(bookToken, chapter, verse string) (domain.VerseRef, error) {
	input := strings.TrimSpace(fmt.Sprintf("%s %s:%s", bookToken, chapter, verse))

	book, err := p.catalog.Resolve(bookToken)
	if err != nil {
		return domain.VerseRef{}, domain.NewUnknownBookError(bookToken)
	}

	ch, err := strconv.Atoi(strings.TrimSpace(chapter))
	if err != nil {
		return domain.VerseRef{}, domain.NewBadSyntaxError(input, "chapter must be a number")
	}
	v, err := strconv.Atoi(strings.TrimSpace(verse))
	if err != nil {
		return domain.VerseRef{}, domain.NewBadSyntaxError(input, "verse must be a number")
	}

	ref := domain.VerseRef{BookNumber: book.Number, Chapter: ch, VerseStart: v, VerseEnd: v}
	if msg := validateRef(ref); msg != "" {
		return domain.VerseRef{}, domain.NewBadSyntaxError(input, msg)
	}
	return ref, nil
}

// BuildLookupKey renders "{bookKey}_{chapter}_{verseStart}". It is the only
// place dataset keys are built. Returns "" for a book number outside the catalog.
func (p *Parser) BuildLookupKey(ref domain.VerseRef) domain.LookupKey {
	book, ok := p.catalog.Book(ref.BookNumber)
	if !ok {
		return ""
	}
	return domain.LookupKey(strings.ToLower(fmt.Sprintf("%s_%d_%d", book.Key, ref.Chapter, ref.VerseStart)))
}

// DisplayForm renders "{Name} {chapter}:{verseStart}[-{verseEnd}]".
func (p *Parser) DisplayForm(ref domain.VerseRef) string {
	book, ok := p.catalog.Book(ref.BookNumber)
	if !ok {
		return ""
	}
	if ref.IsRange() {
		return fmt.Sprintf("%s %d:%d-%d", book.Name, ref.Chapter, ref.VerseStart, ref.VerseEnd)
	}
	return fmt.Sprintf("%s %d:%d", book.Name, ref.Chapter, ref.VerseStart)
}

// Language returns the source language of the referenced book.
func (p *Parser) Language(ref domain.VerseRef) domain.Language {
	return LanguageOf(ref.BookNumber)
}

func validateRef(ref domain.VerseRef) string {
	switch {
	case ref.Chapter < 1:
		return "chapter must be >= 1"
	case ref.VerseStart < 1:
		return "verse must be >= 1"
	case ref.VerseEnd < ref.VerseStart:
		return "verse range must not descend"
	}
	return ""
}
