package domain

// VerseRef identifies a single verse or a contiguous verse range within one chapter.
// Invariants: Chapter >= 1, VerseStart >= 1, VerseEnd >= VerseStart.
type VerseRef struct {
	BookNumber int
	Chapter    int
	VerseStart int
	VerseEnd   int
}

// IsRange reports whether the reference spans more than one verse.
func (r VerseRef) IsRange() bool {
	return r.VerseEnd > r.VerseStart
}

// LookupKey identifies a verse across datasets: "{bookKey}_{chapter}_{verse}".
type LookupKey string

// WordToken is one original-language word in reading order.
type WordToken struct {
	Original        string `json:"original"`
	Transliteration string `json:"translit"`
	EnglishGloss    string `json:"english"`
	StrongsNumber   string `json:"strongs"`
}

// Interlinear is the word-by-word rendering of a verse.
type Interlinear struct {
	Reference string      `json:"reference"`
	Source    string      `json:"source"`
	Language  Language    `json:"language"`
	Words     []WordToken `json:"words,omitempty"`
	FullText  string      `json:"fullText,omitempty"`
	Available bool        `json:"available"`
	Message   string      `json:"message,omitempty"`
	Strategy  string      `json:"strategy,omitempty"`
}

// Interlinear sources.
const (
	SourcePreloaded = "preloaded"
	SourceAPI       = "api"
)

// LexiconEntry is a Strong's concordance entry prepared for display.
type LexiconEntry struct {
	Number          string `json:"number"`
	Source          string `json:"source"`
	Lemma           string `json:"lemma"`
	Transliteration string `json:"translit"`
	Pronunciation   string `json:"pronunciation"`
	PartOfSpeech    string `json:"partOfSpeech"`
	Definition      string `json:"definition"`
	LongDefinition  string `json:"longDefinition"`
	Usage           string `json:"usage"`
}
