package domain

import (
	"regexp"
	"strings"
)

var (
	markupTagRe  = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
)

// NormalizeText prepares free text for table lookups:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses any run of whitespace (spaces, tabs, newlines) into one space
//
// Digits, diacritics, and punctuation are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return multiSpaceRe.ReplaceAllString(strings.ToLower(text), " ")
}

// StripMarkup replaces markup tags with spaces and collapses whitespace.
func StripMarkup(s string) string {
	s = markupTagRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// RemoveMarkup deletes markup tags without inserting separators.
// Used where tags sit inside words (e.g. <i>Lord</i>'s).
func RemoveMarkup(s string) string {
	return strings.TrimSpace(markupTagRe.ReplaceAllString(s, ""))
}

// NormalizeSpace trims s and collapses whitespace runs to one space.
func NormalizeSpace(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}
