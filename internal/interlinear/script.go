package interlinear

import (
	"regexp"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// Character classes for source-script runs.
const (
	hebrewClass = `\x{0590}-\x{05FF}\x{FB1D}-\x{FB4F}`
	greekClass  = `\x{0370}-\x{03FF}\x{1F00}-\x{1FFF}`
)

// scriptPatterns holds the compiled regexes for one language.
type scriptPatterns struct {
	run      *regexp.Regexp // contiguous source-script run
	adjacent *regexp.Regexp // run immediately followed by a Strong's code
}

var patterns = map[domain.Language]scriptPatterns{
	domain.Hebrew: compileScript(hebrewClass),
	domain.Greek:  compileScript(greekClass),
}

func compileScript(class string) scriptPatterns {
	return scriptPatterns{
		run:      regexp.MustCompile(`[` + class + `]+`),
		adjacent: regexp.MustCompile(`([` + class + `]+)([HhGg])0*([1-9]\d*)`),
	}
}

func patternsFor(lang domain.Language) scriptPatterns {
	if p, ok := patterns[lang]; ok {
		return p
	}
	return patterns[domain.Greek]
}

// strongsTagRe matches a short markup tag wrapping only digits: <S>430</S>.
var strongsTagRe = regexp.MustCompile(`<([A-Za-z]{1,3})>(\d+)</[A-Za-z]{1,3}>`)

// bareStrongsRe matches a bare Strong's code glued to the end of a word.
var bareStrongsRe = regexp.MustCompile(`[HhGg]\d+\b`)

// PlainText renders tagged chapter text as reading text: Strong's tags and
// codes are dropped together with their digits, then remaining markup is
// stripped and whitespace collapsed.
func PlainText(tagged string) string {
	s := strongsTagRe.ReplaceAllString(tagged, " ")
	s = bareStrongsRe.ReplaceAllString(s, " ")
	return domain.StripMarkup(s)
}

// ReadingText renders translated verse text for display. Strong's tags are
// dropped with their digits and other markup is removed in place, so tags
// inside a word (<i>Lord</i>'s) do not split it.
func ReadingText(s string) string {
	s = strongsTagRe.ReplaceAllString(s, "")
	return domain.NormalizeSpace(domain.RemoveMarkup(s))
}
