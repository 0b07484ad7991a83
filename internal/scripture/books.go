package scripture

import (
	"fmt"

	"github.com/heartmarshall/gospelpath-backend/internal/domain"
)

// canonicalBooks lists the 66 books in canonical order. Key is the
// OpenBible-style short alias used to build dataset lookup keys.
var canonicalBooks = []domain.BookEntry{
	book(1, "Genesis", "gen", "genesis", "gen", "gn", "ge"),
	book(2, "Exodus", "exod", "exodus", "exod", "exo", "ex"),
	book(3, "Leviticus", "lev", "leviticus", "lev", "lv"),
	book(4, "Numbers", "num", "numbers", "num", "nm"),
	book(5, "Deuteronomy", "deut", "deuteronomy", "deut", "deu", "dt"),
	book(6, "Joshua", "josh", "joshua", "josh", "jos"),
	book(7, "Judges", "judg", "judges", "judg", "jdg"),
	book(8, "Ruth", "ruth", "ruth", "rth", "ru"),
	numbered(9, 1, "Samuel", "sam", "samuel", "sam", "sa"),
	numbered(10, 2, "Samuel", "sam", "samuel", "sam", "sa"),
	numbered(11, 1, "Kings", "kgs", "kings", "kgs", "ki"),
	numbered(12, 2, "Kings", "kgs", "kings", "kgs", "ki"),
	numbered(13, 1, "Chronicles", "chr", "chronicles", "chr", "ch"),
	numbered(14, 2, "Chronicles", "chr", "chronicles", "chr", "ch"),
	book(15, "Ezra", "ezra", "ezra", "ezr"),
	book(16, "Nehemiah", "neh", "nehemiah", "neh"),
	book(17, "Esther", "esth", "esther", "esth", "est"),
	book(18, "Job", "job", "job", "jb"),
	book(19, "Psalm", "ps", "psalms", "psalm", "ps", "psa", "pss"),
	book(20, "Proverbs", "prov", "proverbs", "prov", "prv", "pr"),
	book(21, "Ecclesiastes", "eccl", "ecclesiastes", "eccl", "ecc", "qoheleth"),
	book(22, "Song of Solomon", "song", "song of solomon", "song of songs", "song", "sos", "sng", "canticles"),
	book(23, "Isaiah", "isa", "isaiah", "isa", "is"),
	book(24, "Jeremiah", "jer", "jeremiah", "jer", "je"),
	book(25, "Lamentations", "lam", "lamentations", "lam", "la"),
	book(26, "Ezekiel", "ezek", "ezekiel", "ezek", "eze", "ezk"),
	book(27, "Daniel", "dan", "daniel", "dan", "dn"),
	book(28, "Hosea", "hos", "hosea", "hos", "ho"),
	book(29, "Joel", "joel", "joel", "jl"),
	book(30, "Amos", "amos", "amos", "am"),
	book(31, "Obadiah", "obad", "obadiah", "obad", "ob"),
	book(32, "Jonah", "jonah", "jonah", "jon", "jnh"),
	book(33, "Micah", "mic", "micah", "mic", "mi"),
	book(34, "Nahum", "nah", "nahum", "nah", "na"),
	book(35, "Habakkuk", "hab", "habakkuk", "hab", "hb"),
	book(36, "Zephaniah", "zeph", "zephaniah", "zeph", "zep"),
	book(37, "Haggai", "hag", "haggai", "hag", "hg"),
	book(38, "Zechariah", "zech", "zechariah", "zech", "zec"),
	book(39, "Malachi", "mal", "malachi", "mal", "ml"),
	book(40, "Matthew", "matt", "matthew", "matt", "mat", "mt"),
	book(41, "Mark", "mark", "mark", "mrk", "mk"),
	book(42, "Luke", "luke", "luke", "luk", "lk"),
	book(43, "John", "john", "john", "jhn", "jn"),
	book(44, "Acts", "acts", "acts", "act", "ac"),
	book(45, "Romans", "rom", "romans", "rom", "ro", "rm"),
	numbered(46, 1, "Corinthians", "cor", "corinthians", "cor", "co"),
	numbered(47, 2, "Corinthians", "cor", "corinthians", "cor", "co"),
	book(48, "Galatians", "gal", "galatians", "gal", "ga"),
	book(49, "Ephesians", "eph", "ephesians", "eph", "ephes"),
	book(50, "Philippians", "phil", "philippians", "phil", "php"),
	book(51, "Colossians", "col", "colossians", "col"),
	numbered(52, 1, "Thessalonians", "thess", "thessalonians", "thess", "th"),
	numbered(53, 2, "Thessalonians", "thess", "thessalonians", "thess", "th"),
	numbered(54, 1, "Timothy", "tim", "timothy", "tim", "ti"),
	numbered(55, 2, "Timothy", "tim", "timothy", "tim", "ti"),
	book(56, "Titus", "titus", "titus", "tit"),
	book(57, "Philemon", "phlm", "philemon", "phlm", "phm"),
	book(58, "Hebrews", "heb", "hebrews", "heb"),
	book(59, "James", "jas", "james", "jas", "jm"),
	numbered(60, 1, "Peter", "pet", "peter", "pet", "pe", "pt"),
	numbered(61, 2, "Peter", "pet", "peter", "pet", "pe", "pt"),
	numbered(62, 1, "John", "john", "john", "jhn", "jn"),
	numbered(63, 2, "John", "john", "john", "jhn", "jn"),
	numbered(64, 3, "John", "john", "john", "jhn", "jn"),
	book(65, "Jude", "jude", "jude", "jud", "jd"),
	book(66, "Revelation", "rev", "revelation", "revelations", "rev", "re", "apocalypse"),
}

func book(number int, name, key string, aliases ...string) domain.BookEntry {
	return domain.BookEntry{Number: number, Name: name, Key: key, Testament: testamentOf(number), Aliases: aliases}
}

// numbered builds a "1 Samuel"-style entry. Every base alias is expanded
// with and without a space after the ordinal ("1 samuel", "1samuel").
func numbered(number, ordinal int, baseName, baseKey string, baseAliases ...string) domain.BookEntry {
	aliases := make([]string, 0, len(baseAliases)*2)
	for _, a := range baseAliases {
		aliases = append(aliases, fmt.Sprintf("%d %s", ordinal, a), fmt.Sprintf("%d%s", ordinal, a))
	}
	return domain.BookEntry{
		Number:    number,
		Name:      fmt.Sprintf("%d %s", ordinal, baseName),
		Key:       fmt.Sprintf("%d%s", ordinal, baseKey),
		Testament: testamentOf(number),
		Aliases:   aliases,
	}
}
