package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestGloss(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		definition string
		want       string
	}{
		{
			name:       "metadata skipped",
			definition: "<ul><li>Origin: from H7218</li><li>beginning, first, chief</li></ul>",
			want:       "beginning",
		},
		{
			name:       "numbered verb sense",
			definition: "<ol><li>Part(s): verb</li><li>1. to create, shape, form</li></ol>",
			want:       "to create",
		},
		{
			name:       "verb phrase lowercased",
			definition: "<li>TO SHAPE, fashion</li>",
			want:       "to shape",
		},
		{
			name:       "phrase with parenthesis",
			definition: "<li>the earth (as a whole).</li>",
			want:       "the earth",
		},
		{
			name:       "line breaks without list items",
			definition: "Phonetic: baw-raw'<br/>to create, to make",
			want:       "to create",
		},
		{
			name:       "word starting with to is not a verb",
			definition: "<li>total darkness, gloom</li>",
			want:       "total darkness",
		},
		{
			name:       "single letter rejected",
			definition: "<li>a, b</li>",
			want:       "",
		},
		{
			name:       "no punctuation",
			definition: "<li>a sense with no terminator</li>",
			want:       "",
		},
		{
			name:       "only metadata",
			definition: "<li>Origin: unknown</li><li>Phonetic: et</li>",
			want:       "",
		},
		{name: "empty", definition: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BestGloss(tt.definition))
		})
	}
}

func TestShortGloss(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "beginning", ShortGloss("<b>beginning</b>, first; chief"))
	assert.Equal(t, "mercy", ShortGloss("mercy; kindness"))
	assert.Equal(t, "a very long short definit", ShortGloss("a very long short definition without separators"))
	assert.Equal(t, "", ShortGloss(""))
}
