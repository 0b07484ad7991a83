package domain

// Testament is the canonical half of the Protestant canon a book belongs to.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Language is the source language of a testament.
type Language string

const (
	Hebrew Language = "Hebrew"
	Greek  Language = "Greek"
)

// StrongsPrefix returns the Strong's number prefix for the language: "H" or "G".
func (l Language) StrongsPrefix() string {
	if l == Hebrew {
		return "H"
	}
	return "G"
}

// LanguageForStrongs infers the language from a Strong's number prefix.
// Anything not starting with H is treated as Greek.
func LanguageForStrongs(num string) Language {
	if len(num) > 0 && (num[0] == 'H' || num[0] == 'h') {
		return Hebrew
	}
	return Greek
}

// BookEntry is an immutable catalog record for one of the 66 canonical books.
type BookEntry struct {
	Number    int
	Name      string
	Key       string
	Testament Testament
	Aliases   []string
}

// Language returns the source language implied by the book's testament.
func (b BookEntry) Language() Language {
	if b.Testament == OldTestament {
		return Hebrew
	}
	return Greek
}
