// Package interlinear turns tagged original-language verse text into
// word-by-word tokens and transliterations.
package interlinear

import (
	"strconv"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// Strategy names the extraction technique that produced a token list.
type Strategy string

const (
	StrategyAdjacent Strategy = "adjacent"
	StrategyTagged   Strategy = "tagged"
	StrategyFallback Strategy = "fallback"
	StrategyNone     Strategy = "none"
)

type extractFunc func(text string, lang domain.Language) []domain.WordToken

type strategy struct {
	name Strategy
	fn   extractFunc
}

// strategies run in order; the first non-empty result wins.
var strategies = []strategy{
	{StrategyAdjacent, extractAdjacent},
	{StrategyTagged, extractTagged},
	{StrategyFallback, extractFallback},
}

// Extract returns word tokens for text using the first strategy that yields
// at least one token. Tokens keep source order and carry a transliteration
// but no gloss.
func Extract(text string, lang domain.Language) []domain.WordToken {
	tokens, _ := ExtractWithStrategy(text, lang)
	return tokens
}

// ExtractWithStrategy is Extract that also reports which strategy won.
func ExtractWithStrategy(text string, lang domain.Language) ([]domain.WordToken, Strategy) {
	if text == "" {
		return nil, StrategyNone
	}
	for _, s := range strategies {
		if tokens := s.fn(text, lang); len(tokens) > 0 {
			return tokens, s.name
		}
	}
	return nil, StrategyNone
}

func newToken(word string, lang domain.Language, strongs string) domain.WordToken {
	return domain.WordToken{
		Original:        word,
		Transliteration: Transliterate(word, lang),
		StrongsNumber:   strongs,
	}
}

// extractAdjacent pairs each script run with a Strong's code glued to its end
// (בְּרֵאשִׁיתH7225).
func extractAdjacent(text string, lang domain.Language) []domain.WordToken {
	matches := patternsFor(lang).adjacent.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	prefix := lang.StrongsPrefix()
	tokens := make([]domain.WordToken, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, newToken(m[1], lang, prefix+m[3]))
	}
	return tokens
}

// extractTagged pairs each digit-only tag (<S>430</S>) with the last script
// run between the previous tag and this one. Tags with no preceding run are
// skipped.
func extractTagged(text string, lang domain.Language) []domain.WordToken {
	locs := strongsTagRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	run := patternsFor(lang).run
	prefix := lang.StrongsPrefix()

	var tokens []domain.WordToken
	prev := 0
	for _, loc := range locs {
		segment := text[prev:loc[0]]
		digits := text[loc[4]:loc[5]]
		prev = loc[1]

		n, err := strconv.Atoi(digits)
		if err != nil || n <= 0 {
			continue
		}
		words := run.FindAllString(segment, -1)
		if len(words) == 0 {
			continue
		}
		tokens = append(tokens, newToken(words[len(words)-1], lang, prefix+strconv.Itoa(n)))
	}
	return tokens
}

// extractFallback emits every script run with no Strong's number.
func extractFallback(text string, lang domain.Language) []domain.WordToken {
	words := patternsFor(lang).run.FindAllString(text, -1)
	if len(words) == 0 {
		return nil
	}
	tokens := make([]domain.WordToken, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, newToken(w, lang, ""))
	}
	return tokens
}
