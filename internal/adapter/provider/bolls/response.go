package bolls

import (
	"encoding/json"
	"strconv"
	"strings"
)

// apiVerse is one element of a get-chapter / get-text response.
type apiVerse struct {
	PK      int    `json:"pk"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Comment string `json:"comment"`
}

// apiDefinition is one element of a dictionary-definition response. Field
// names drift between dictionaries, so the lemma has several spellings.
type apiDefinition struct {
	Topic           string  `json:"topic"`
	Lemma           string  `json:"lemma"`
	Lexeme          string  `json:"lexeme"`
	Word            string  `json:"word"`
	Transliteration string  `json:"transliteration"`
	Pronunciation   string  `json:"pronunciation"`
	PartOfSpeech    string  `json:"part_of_speech"`
	Definition      string  `json:"definition"`
	ShortDefinition string  `json:"short_definition"`
	Occurrences     flexInt `json:"occurrences"`
}

func (d apiDefinition) lemma() string {
	for _, s := range []string{d.Lemma, d.Lexeme, d.Word} {
		if s != "" {
			return s
		}
	}
	return ""
}

// flexInt accepts a JSON number, a numeric string ("1,343"), or null.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexInt(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	*f = flexInt(n)
	return nil
}
