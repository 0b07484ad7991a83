package lexicon

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// shortGlossMax caps the tier-3 gloss length in runes.
const shortGlossMax = 25

// metadataLabels prefix definition lines that describe the entry rather than
// give a sense.
var metadataLabels = []string{
	"origin:",
	"part(s):",
	"parts:",
	"part of speech:",
	"phonetic:",
	"pronunciation:",
	"transliteration:",
	"spelling:",
	"strong's",
	"twot",
	"tdnt",
}

var (
	// "to create", optionally after a sense number ("1. to create").
	toVerbRe = regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?(to\s+[a-z][a-z-]*)`)
	// a short leading phrase ended by punctuation ("beginning, first").
	phraseRe = regexp.MustCompile(`(?i)^(?:\d+[.)]\s*)?([a-z][a-z' -]{0,29}?)\s*[,;:.(]`)
)

// BestGloss picks a gloss from a long, markup-bearing lexicon definition.
// It returns "" when nothing usable is found.
func BestGloss(definition string) string {
	for _, item := range definitionItems(definition) {
		if isMetadata(item) {
			continue
		}
		if m := toVerbRe.FindStringSubmatch(item); m != nil {
			return strings.ToLower(m[1])
		}
		if m := phraseRe.FindStringSubmatch(item); m != nil {
			phrase := strings.ToLower(strings.TrimSpace(m[1]))
			if utf8.RuneCountInString(phrase) > 1 {
				return phrase
			}
		}
		return ""
	}
	return ""
}

// definitionItems splits a definition on list-item boundaries. Without <li>
// elements it falls back to line breaks.
func definitionItems(definition string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(definition))
	if err != nil {
		return nil
	}

	var items []string
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		if t := domain.NormalizeSpace(s.Text()); t != "" {
			items = append(items, t)
		}
	})
	if len(items) > 0 {
		return items
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	for _, line := range strings.Split(doc.Text(), "\n") {
		if t := domain.NormalizeSpace(line); t != "" {
			items = append(items, t)
		}
	}
	return items
}

func isMetadata(item string) bool {
	lower := strings.ToLower(item)
	for _, label := range metadataLabels {
		if strings.HasPrefix(lower, label) {
			return true
		}
	}
	return false
}

// ShortGloss derives a gloss from a lexicon short definition: markup
// stripped, cut at the first comma or semicolon, capped in length.
func ShortGloss(shortDefinition string) string {
	s := domain.StripMarkup(shortDefinition)
	if i := strings.IndexAny(s, ",;"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > shortGlossMax {
		s = strings.TrimSpace(string([]rune(s)[:shortGlossMax]))
	}
	return s
}
