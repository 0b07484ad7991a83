package provider

// Original-language editions of the chapter text provider.
const (
	EditionHebrew = "OHB"
	EditionGreek  = "OGNT"
)

// ChapterVerse is one verse of a chapter returned by a text provider.
// Text may carry markup and Strong's tags.
type ChapterVerse struct {
	Verse int
	Text  string
}

// LexiconResult is the structured result from a lexicon provider.
type LexiconResult struct {
	Number          string
	Lemma           string
	Transliteration string
	Pronunciation   string
	PartOfSpeech    string
	Definition      string // long form, markup-bearing
	ShortDefinition string
	Occurrences     int
}

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one message of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a provider-neutral chat-completion request.
type ChatRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Usage reports token counts for a completion.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
}

// ChatResult is the single assistant message returned by a chat provider.
type ChatResult struct {
	Model   string
	Message string
	Usage   Usage
}
