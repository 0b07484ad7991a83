package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/gospelpath-backend/internal/provider"
)

const rawResponseMax = 500

// Section is a titled block of an X-ray analysis.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// KeyWord explains one original-language word.
type KeyWord struct {
	Original        string `json:"original"`
	Transliteration string `json:"transliteration"`
	Meaning         string `json:"meaning"`
	Significance    string `json:"significance"`
}

// LanguageSection is the original-language part of an X-ray analysis.
type LanguageSection struct {
	Section
	KeyWords []KeyWord `json:"keyWords"`
}

// ConnectionsSection lists related passages.
type ConnectionsSection struct {
	Section
	References []string `json:"references"`
}

// XraySections is the five-part analysis of a verse. Error is set when the
// model's answer could not be used and placeholder text was substituted;
// RawResponse then holds the start of that answer.
type XraySections struct {
	Context     Section            `json:"context"`
	Language    LanguageSection    `json:"language"`
	Connections ConnectionsSection `json:"connections"`
	Meaning     Section            `json:"meaning"`
	Application Section            `json:"application"`
	Error       bool               `json:"_error,omitempty"`
	RawResponse string             `json:"_rawResponse,omitempty"`
}

// XrayResult is the response of an X-ray request.
type XrayResult struct {
	Success     bool         `json:"success"`
	Verse       string       `json:"verse"`
	Translation string       `json:"translation"`
	Perspective string       `json:"perspective"`
	Provider    string       `json:"provider"`
	Sections    XraySections `json:"sections"`
}

var requiredSections = []string{"context", "language", "connections", "meaning", "application"}

// Xray produces an in-depth analysis of a verse. A model answer that is not
// a usable analysis yields placeholder sections with Error set, not an error.
func (s *Service) Xray(ctx context.Context, input XrayInput) (*XrayResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := providerOrDefault(input.Provider)
	p, err := s.provider(name)
	if err != nil {
		return nil, err
	}

	translation := orDefault(input.Translation, defaultTranslation)
	perspective := strings.ToLower(orDefault(input.Perspective, defaultPerspective))

	res, err := s.complete(ctx, p, provider.ChatRequest{
		Messages: []provider.ChatMessage{
			{Role: provider.RoleSystem, Content: xraySystemPrompt},
			{Role: provider.RoleUser, Content: buildXrayPrompt(input, translation, perspective)},
		},
		Temperature: temperature,
		TopP:        topP,
		MaxTokens:   longFormMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	sections, err := parseXray(res.Message)
	if err != nil {
		s.log.WarnContext(ctx, "unusable x-ray response",
			"provider", name,
			"verse", input.Verse,
			"error", err,
		)
		sections = fallbackXray(res.Message)
	}

	return &XrayResult{
		Success:     true,
		Verse:       strings.TrimSpace(input.Verse),
		Translation: translation,
		Perspective: perspective,
		Provider:    name,
		Sections:    sections,
	}, nil
}

func parseXray(text string) (XraySections, error) {
	raw, err := extractObject(text)
	if err != nil {
		return XraySections{}, err
	}

	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err != nil {
		return XraySections{}, fmt.Errorf("decode x-ray: %w", err)
	}
	for _, key := range requiredSections {
		v, ok := present[key]
		if !ok || string(v) == "null" {
			return XraySections{}, fmt.Errorf("missing required section %q", key)
		}
	}

	var out XraySections
	if err := json.Unmarshal(raw, &out); err != nil {
		return XraySections{}, fmt.Errorf("decode x-ray: %w", err)
	}
	out.Error = false
	out.RawResponse = ""
	if out.Language.KeyWords == nil {
		out.Language.KeyWords = []KeyWord{}
	}
	if out.Connections.References == nil {
		out.Connections.References = []string{}
	}
	return out, nil
}

func fallbackXray(raw string) XraySections {
	if utf8.RuneCountInString(raw) > rawResponseMax {
		raw = string([]rune(raw)[:rawResponseMax])
	}
	return XraySections{
		Context: Section{
			Title:   "📍 Historical & Cultural Context",
			Content: "Unable to generate context analysis. Please try again.",
		},
		Language: LanguageSection{
			Section: Section{
				Title:   "📜 Original Language Insights",
				Content: "Unable to generate language analysis. Please try again.",
			},
			KeyWords: []KeyWord{},
		},
		Connections: ConnectionsSection{
			Section: Section{
				Title:   "🔗 Biblical Connections",
				Content: "Unable to generate connections. Please try again.",
			},
			References: []string{},
		},
		Meaning: Section{
			Title:   "❓ What This Means",
			Content: "Unable to generate meaning analysis. Please try again.",
		},
		Application: Section{
			Title:   "💡 Why This Matters",
			Content: "Unable to generate application. Please try again.",
		},
		Error:       true,
		RawResponse: raw,
	}
}
