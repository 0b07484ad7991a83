package lexicon

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// SourcePreloaded and SourceBolls label where a LexiconEntry came from.
const (
	SourcePreloaded = "preloaded"
	SourceBolls     = "bolls"
)

var strongsRe = regexp.MustCompile(`^[HG]\d+$`)

// NormalizeStrongs uppercases and trims a Strong's number and reports whether
// the result is well formed (H or G followed by digits).
func NormalizeStrongs(num string) (string, bool) {
	n := strings.ToUpper(strings.TrimSpace(num))
	return n, strongsRe.MatchString(n)
}

// PreloadedEntry returns a bundled concordance entry for common numbers.
func PreloadedEntry(num string) (domain.LexiconEntry, bool) {
	e, ok := preloadedEntries[num]
	if !ok {
		return domain.LexiconEntry{}, false
	}
	e.Number = num
	e.Source = SourcePreloaded
	return e, true
}

var preloadedEntries = map[string]domain.LexiconEntry{
	"H430": {
		Lemma: "אֱלֹהִים", Transliteration: "elohim", Pronunciation: "el-o-heem'",
		PartOfSpeech:   "noun masculine plural",
		Definition:     "God, gods, judges, angels",
		LongDefinition: "Plural form of 'eloah'. Used to denote the one true God (with singular verbs). The plural form may hint at the fullness and majesty of God.",
		Usage:          "Used 2,606 times in the Hebrew Bible",
	},
	"H1254": {
		Lemma: "בָּרָא", Transliteration: "bara", Pronunciation: "baw-raw'",
		PartOfSpeech:   "verb",
		Definition:     "to create, shape, form",
		LongDefinition: "A unique verb used only for divine creation, never for human making. Emphasizes creating something new.",
		Usage:          "Used 54 times, always with God as subject",
	},
	"H7225": {
		Lemma: "רֵאשִׁית", Transliteration: "reshith", Pronunciation: "ray-sheeth'",
		PartOfSpeech:   "noun feminine",
		Definition:     "beginning, first, chief",
		LongDefinition: "The first in time, place, order, or rank. Refers to the absolute beginning of creation.",
		Usage:          "Used 51 times in the Hebrew Bible",
	},
	"H3068": {
		Lemma: "יְהֹוָה", Transliteration: "YHWH", Pronunciation: "yeh-ho-vaw'",
		PartOfSpeech:   "proper noun",
		Definition:     "the LORD, Yahweh",
		LongDefinition: "The personal covenant name of God, often rendered 'LORD' in English Bibles. Related to 'I AM WHO I AM.'",
		Usage:          "Used 6,519 times, the most frequent name for God",
	},
	"H7307": {
		Lemma: "רוּחַ", Transliteration: "ruach", Pronunciation: "roo'-akh",
		PartOfSpeech:   "noun feminine",
		Definition:     "spirit, wind, breath",
		LongDefinition: "Can refer to wind, breath, or spirit (human or divine). The Spirit of God moved over the waters in Genesis 1:2.",
		Usage:          "Used 378 times in the Hebrew Bible",
	},
	"H2617": {
		Lemma: "חֶסֶד", Transliteration: "chesed", Pronunciation: "kheh'-sed",
		PartOfSpeech:   "noun masculine",
		Definition:     "lovingkindness, mercy, steadfast love",
		LongDefinition: "Covenant faithfulness and loyal love. Hard to render with a single English word.",
		Usage:          "Used 248 times, often describing God's character",
	},
	"G26": {
		Lemma: "ἀγάπη", Transliteration: "agape", Pronunciation: "ag-ah'-pay",
		PartOfSpeech:   "noun feminine",
		Definition:     "love, charity, affection",
		LongDefinition: "Selfless, sacrificial, unconditional love. The love God has for humanity and calls us to show others.",
		Usage:          "Used 116 times in the New Testament",
	},
	"G25": {
		Lemma: "ἀγαπάω", Transliteration: "agapao", Pronunciation: "ag-ap-ah'-o",
		PartOfSpeech:   "verb",
		Definition:     "to love",
		LongDefinition: "The verb form of agapē. To love with purpose and commitment rather than emotion alone.",
		Usage:          "Used 143 times in the New Testament",
	},
	"G2316": {
		Lemma: "θεός", Transliteration: "theos", Pronunciation: "theh'-os",
		PartOfSpeech:   "noun masculine",
		Definition:     "God, a deity",
		LongDefinition: "The supreme Divinity. Used throughout the New Testament to refer to the one true God.",
		Usage:          "Used 1,343 times in the New Testament",
	},
	"G3056": {
		Lemma: "λόγος", Transliteration: "logos", Pronunciation: "log'-os",
		PartOfSpeech:   "noun masculine",
		Definition:     "word, speech, reason",
		LongDefinition: "The Word, divine self-expression. In John 1:1, identifies Jesus as the eternal Word of God made flesh.",
		Usage:          "Used 330 times in the New Testament",
	},
	"G4100": {
		Lemma: "πιστεύω", Transliteration: "pisteuo", Pronunciation: "pist-yoo'-o",
		PartOfSpeech:   "verb",
		Definition:     "to believe, trust, have faith",
		LongDefinition: "To trust in, rely upon, place confidence in. Active trust and commitment, not only intellectual assent.",
		Usage:          "Used 248 times in the New Testament",
	},
	"G4102": {
		Lemma: "πίστις", Transliteration: "pistis", Pronunciation: "pis'-tis",
		PartOfSpeech:   "noun feminine",
		Definition:     "faith, belief, trust",
		LongDefinition: "Conviction of truth, faithfulness. The means by which salvation is received.",
		Usage:          "Used 244 times in the New Testament",
	},
	"G5485": {
		Lemma: "χάρις", Transliteration: "charis", Pronunciation: "khar'-ece",
		PartOfSpeech:   "noun feminine",
		Definition:     "grace, favor, gratitude",
		LongDefinition: "Unmerited favor from God. The foundation of salvation through faith.",
		Usage:          "Used 155 times in the New Testament",
	},
	"G1680": {
		Lemma: "ἐλπίς", Transliteration: "elpis", Pronunciation: "el-pece'",
		PartOfSpeech:   "noun feminine",
		Definition:     "hope, expectation",
		LongDefinition: "Confident expectation of good, resting on God's promises.",
		Usage:          "Used 53 times in the New Testament",
	},
	"G746": {
		Lemma: "ἀρχή", Transliteration: "arche", Pronunciation: "ar-khay'",
		PartOfSpeech:   "noun feminine",
		Definition:     "beginning, origin, first cause",
		LongDefinition: "The beginning point, the first in a series, or ruling power. Opens John's Gospel echoing Genesis.",
		Usage:          "Used 58 times in the New Testament",
	},
}
