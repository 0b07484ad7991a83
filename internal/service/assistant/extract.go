package assistant

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	fenceRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")
	arrayRe  = regexp.MustCompile(`(?s)\[.*\]`)
	objectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

var errNoJSON = errors.New("could not extract valid JSON from model response")

// extractObject finds the JSON object in a model response: the contents of
// the first code fence if there is one, then the outermost braces.
func extractObject(text string) (json.RawMessage, error) {
	s := text
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	if m := objectRe.FindString(s); m != "" {
		s = m
	}
	s = strings.TrimSpace(s)
	if !json.Valid([]byte(s)) {
		return nil, errNoJSON
	}
	return json.RawMessage(s), nil
}

// extractArray finds a JSON array in a model response. It tries, in order,
// the whole text, the first code fence, the outermost brackets, and finally
// the outermost braces, wrapping a lone object in an array.
func extractArray(text string) ([]json.RawMessage, error) {
	candidates := []string{strings.TrimSpace(text)}
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if m := arrayRe.FindString(text); m != "" {
		candidates = append(candidates, m)
	}
	if m := objectRe.FindString(text); m != "" {
		candidates = append(candidates, m)
	}

	for _, c := range candidates {
		if items, ok := asArray(c); ok {
			return items, nil
		}
	}
	return nil, errNoJSON
}

// asArray decodes s as an array of objects, or as a single object wrapped
// in one.
func asArray(s string) ([]json.RawMessage, bool) {
	var items []map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &items); err == nil && len(items) > 0 {
		out := make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			b, err := json.Marshal(item)
			if err != nil {
				return nil, false
			}
			out = append(out, b)
		}
		return out, true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err == nil && obj != nil {
		return []json.RawMessage{json.RawMessage(s)}, true
	}
	return nil, false
}
