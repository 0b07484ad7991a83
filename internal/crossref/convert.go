package crossref

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
	"github.com/heartmarshall/gospelpath-backend/internal/scripture"
)

// DefaultLimit is the number of references kept per verse.
const DefaultLimit = 8

// PopularKeys are the verses shipped in the small popular dataset.
var PopularKeys = []string{
	"gen_1_1", "gen_1_27", "gen_3_15",
	"ps_23_1", "ps_23_4", "ps_46_1", "ps_91_1", "ps_119_105",
	"prov_3_5", "prov_3_6", "prov_22_6",
	"isa_40_31", "isa_41_10", "isa_53_5", "isa_53_6",
	"jer_29_11",
	"matt_5_3", "matt_5_44", "matt_6_33", "matt_11_28", "matt_28_19", "matt_28_20",
	"mark_16_15",
	"luke_6_31",
	"john_1_1", "john_1_14", "john_3_16", "john_3_17", "john_3_36", "john_10_10",
	"john_11_25", "john_14_6", "john_14_27", "john_15_13",
	"acts_1_8", "acts_2_38", "acts_4_12",
	"rom_3_23", "rom_5_8", "rom_6_23", "rom_8_1", "rom_8_28", "rom_8_38",
	"rom_10_9", "rom_10_13", "rom_12_1", "rom_12_2",
	"1cor_10_13", "1cor_13_4", "1cor_13_13",
	"2cor_5_17", "2cor_5_21", "2cor_12_9",
	"gal_2_20", "gal_5_22",
	"eph_2_8", "eph_2_9", "eph_4_32", "eph_6_11",
	"phil_4_6", "phil_4_7", "phil_4_8", "phil_4_13", "phil_4_19",
	"col_3_23",
	"1thess_5_16", "1thess_5_17", "1thess_5_18",
	"2tim_1_7", "2tim_3_16",
	"heb_4_12", "heb_11_1", "heb_11_6", "heb_12_1", "heb_12_2", "heb_13_5", "heb_13_8",
	"jas_1_2", "jas_1_5", "jas_4_7",
	"1pet_5_7",
	"1john_1_9", "1john_4_8", "1john_4_19",
	"rev_3_20", "rev_21_4",
}

// ConvertStats summarizes a conversion run.
type ConvertStats struct {
	Links   int // links kept before truncation
	Skipped int // links with zero or negative votes
	Verses  int // source verses with at least one link
}

type link struct {
	ref   string
	votes int
}

// Converter turns OpenBible.info TSV exports ("Gen.1.1\tPs.33.6\t42") into a
// Dataset keyed by lookup key.
type Converter struct {
	parser *scripture.Parser
	limit  int
}

// NewConverter creates a Converter keeping limit references per verse
// (DefaultLimit when limit <= 0).
func NewConverter(parser *scripture.Parser, limit int) *Converter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Converter{parser: parser, limit: limit}
}

// Convert reads TSV lines from r. Comment lines (#) and blank lines are
// skipped, as are links with votes <= 0. Each verse keeps its top links by
// votes, ties in input order.
func (c *Converter) Convert(r io.Reader) (Dataset, ConvertStats, error) {
	var stats ConvertStats
	grouped := make(map[string][]link)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		votes, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			continue
		}
		if votes <= 0 {
			stats.Skipped++
			continue
		}
		key, ok := c.key(parts[0])
		if !ok {
			continue
		}
		grouped[key] = append(grouped[key], link{ref: c.display(parts[1]), votes: votes})
		stats.Links++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("crossref: read input: %w", err)
	}

	out := make(Dataset, len(grouped))
	for key, links := range grouped {
		sort.SliceStable(links, func(i, j int) bool { return links[i].votes > links[j].votes })
		n := min(len(links), c.limit)
		refs := make([]string, n)
		for i := range n {
			refs[i] = links[i].ref
		}
		out[key] = refs
	}
	stats.Verses = len(out)
	return out, stats, nil
}

// osisRef is one "Book.Chapter.Verse" reference.
type osisRef struct {
	book    string
	chapter int
	verse   int
}

func parseOSIS(s string) (osisRef, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 3 {
		return osisRef{}, false
	}
	ch, err1 := strconv.Atoi(parts[1])
	vs, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return osisRef{}, false
	}
	return osisRef{book: parts[0], chapter: ch, verse: vs}, true
}

// key builds the lookup key for a source reference.
func (c *Converter) key(s string) (string, bool) {
	r, ok := parseOSIS(s)
	if !ok {
		return "", false
	}
	if book, err := c.parser.Catalog().Resolve(r.book); err == nil {
		ref := domain.VerseRef{BookNumber: book.Number, Chapter: r.chapter, VerseStart: r.verse, VerseEnd: r.verse}
		return string(c.parser.BuildLookupKey(ref)), true
	}
	return fmt.Sprintf("%s_%d_%d", strings.ToLower(r.book), r.chapter, r.verse), true
}

// display renders a target reference or range in display form. Ranges within
// one chapter collapse to "Book C:V-V".
func (c *Converter) display(s string) string {
	start, end, isRange := strings.Cut(s, "-")
	if !isRange {
		return c.displaySingle(start)
	}

	a, okA := parseOSIS(start)
	b, okB := parseOSIS(end)
	if okA && okB && a.book == b.book && a.chapter == b.chapter {
		if book, err := c.parser.Catalog().Resolve(a.book); err == nil {
			return c.parser.DisplayForm(domain.VerseRef{
				BookNumber: book.Number, Chapter: a.chapter, VerseStart: a.verse, VerseEnd: b.verse,
			})
		}
	}
	return c.displaySingle(start) + "-" + c.displaySingle(end)
}

func (c *Converter) displaySingle(s string) string {
	r, ok := parseOSIS(s)
	if !ok {
		return s
	}
	name := r.book
	if book, err := c.parser.Catalog().Resolve(r.book); err == nil {
		name = book.Name
	}
	return fmt.Sprintf("%s %d:%d", name, r.chapter, r.verse)
}

// PopularSubset picks keys from full, skipping keys it lacks.
func PopularSubset(full Dataset, keys []string) Dataset {
	out := make(Dataset, len(keys))
	for _, k := range keys {
		if refs, ok := full[k]; ok {
			out[k] = refs
		}
	}
	return out
}

// WriteDataset writes ds as JSON to path, indented when indent is true.
func WriteDataset(path string, ds Dataset, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(ds, "", "  ")
	} else {
		data, err = json.Marshal(ds)
	}
	if err != nil {
		return fmt.Errorf("crossref: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("crossref: write %s: %w", path, err)
	}
	return nil
}
