package interlinear

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// Transliterate renders an original-language word in Latin letters. It is a
// character-by-character display aid, not a scholarly scheme.
func Transliterate(word string, lang domain.Language) string {
	if lang == domain.Hebrew {
		return transliterateHebrew(word)
	}
	return transliterateGreek(word)
}

const (
	maqaf  = '־'
	sinDot = 'ׂ'
	shin   = 'ש'
	dasia  = '̔' // rough breathing
	hyphen = '-'
)

var hebrewLetters = map[rune]string{
	'א': "'", 'ב': "b", 'ג': "g", 'ד': "d", 'ה': "h",
	'ו': "v", 'ז': "z", 'ח': "ch", 'ט': "t", 'י': "y",
	'כ': "k", 'ך': "k", 'ל': "l", 'מ': "m", 'ם': "m",
	'נ': "n", 'ן': "n", 'ס': "s", 'ע': "'", 'פ': "p",
	'ף': "p", 'צ': "ts", 'ץ': "ts", 'ק': "q", 'ר': "r",
	'ש': "sh", 'ת': "t",
}

// isHebrewPoint reports vowel points, cantillation and dots (U+0591..U+05C7)
// other than the maqaf, which is rendered as a hyphen.
func isHebrewPoint(r rune) bool {
	return r >= '֑' && r <= 'ׇ' && r != maqaf
}

func transliterateHebrew(word string) string {
	// NFD splits presentation forms (e.g. U+FB2B) into letter + dots.
	rs := []rune(norm.NFD.String(word))

	var b strings.Builder
	b.Grow(len(rs) * 2)

	for i, r := range rs {
		switch {
		case r == maqaf:
			b.WriteRune(hyphen)
		case isHebrewPoint(r):
			continue
		case r == shin && hasMark(rs[i+1:], sinDot, isHebrewPoint):
			b.WriteString("s")
		default:
			if t, ok := hebrewLetters[r]; ok {
				b.WriteString(t)
			}
		}
	}
	return b.String()
}

var greekLetters = map[rune]string{
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z",
	'η': "ē", 'θ': "th", 'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m",
	'ν': "n", 'ξ': "x", 'ο': "o", 'π': "p", 'ρ': "r", 'σ': "s",
	'ς': "s", 'τ': "t", 'υ': "u", 'φ': "ph", 'χ': "ch", 'ψ': "ps",
	'ω': "ō",
}

func isGreekVowel(r rune) bool {
	return strings.ContainsRune("αεηιουω", r)
}

// stripMarks removes combining marks (accents, breathings, iota subscript).
// A fresh chain per call: transform.Chain is stateful.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func transliterateGreek(word string) string {
	decomposed := []rune(norm.NFD.String(strings.ToLower(word)))
	rough := leadingRoughBreathing(decomposed)
	base := []rune(stripMarks(string(decomposed)))

	var b strings.Builder
	b.Grow(len(base) * 2)

	if rough {
		if len(base) > 0 && base[0] == 'ρ' {
			b.WriteString("rh")
			base = base[1:]
		} else {
			b.WriteString("h")
		}
	}

	for i, r := range base {
		// gamma nasal: γγ, γκ, γξ, γχ
		if r == 'γ' && i+1 < len(base) && strings.ContainsRune("γκξχ", base[i+1]) {
			b.WriteString("n")
			continue
		}
		if t, ok := greekLetters[r]; ok {
			b.WriteString(t)
		}
	}
	return b.String()
}

// leadingRoughBreathing reports whether the word's initial vowel cluster
// (or an initial rho) carries a rough breathing.
func leadingRoughBreathing(rs []rune) bool {
	for i, r := range rs {
		if unicode.Is(unicode.Mn, r) {
			if r == dasia {
				return true
			}
			continue
		}
		if i == 0 && r == 'ρ' {
			continue
		}
		if !isGreekVowel(r) {
			return false
		}
	}
	return false
}

// hasMark reports whether mark appears in the run of combining marks at the
// start of rs. isMark decides what counts as a combining mark.
func hasMark(rs []rune, mark rune, isMark func(rune) bool) bool {
	for _, r := range rs {
		if !isMark(r) {
			return false
		}
		if r == mark {
			return true
		}
	}
	return false
}
