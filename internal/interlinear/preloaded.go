package interlinear

import "github.com/heartmarshall/gospelpath-backend/internal/domain"

// PopularHint lists verses that are always served from the bundled set.
const PopularHint = "Try popular verses like Genesis 1:1, John 3:16, Psalm 23:1, or Romans 8:28"

type preloadedVerse struct {
	lang     domain.Language
	words    []domain.WordToken
	fullText string
}

func w(original, translit, english, strongs string) domain.WordToken {
	return domain.WordToken{
		Original:        original,
		Transliteration: translit,
		EnglishGloss:    english,
		StrongsNumber:   strongs,
	}
}

// Preloaded returns the bundled interlinear for a display-form reference
// ("John 3:16"). The returned word slice is a copy.
func Preloaded(display string) (domain.Interlinear, bool) {
	v, ok := preloaded[display]
	if !ok {
		return domain.Interlinear{}, false
	}
	words := make([]domain.WordToken, len(v.words))
	copy(words, v.words)
	return domain.Interlinear{
		Reference: display,
		Source:    domain.SourcePreloaded,
		Language:  v.lang,
		Words:     words,
		FullText:  v.fullText,
		Available: true,
	}, true
}

// PreloadedReferences returns the display forms of all bundled verses.
func PreloadedReferences() []string {
	refs := make([]string, 0, len(preloaded))
	for k := range preloaded {
		refs = append(refs, k)
	}
	return refs
}

var preloaded = map[string]preloadedVerse{
	"Genesis 1:1": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("בְּרֵאשִׁית", "bereshit", "In the beginning", "H7225"),
			w("בָּרָא", "bara", "created", "H1254"),
			w("אֱלֹהִים", "elohim", "God", "H430"),
			w("אֵת", "et", "[direct object marker]", "H853"),
			w("הַשָּׁמַיִם", "hashamayim", "the heavens", "H8064"),
			w("וְאֵת", "ve'et", "and", "H853"),
			w("הָאָרֶץ", "ha'aretz", "the earth", "H776"),
		},
		fullText: "In the beginning God created the heavens and the earth.",
	},
	"Genesis 1:2": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("וְהָאָרֶץ", "veha'aretz", "And the earth", "H776"),
			w("הָיְתָה", "hayetah", "was", "H1961"),
			w("תֹהוּ", "tohu", "formless", "H8414"),
			w("וָבֹהוּ", "vabohu", "and void", "H922"),
			w("וְחֹשֶׁךְ", "vechoshek", "and darkness", "H2822"),
			w("עַל־פְּנֵי", "al-penei", "over the face of", "H5921"),
			w("תְהוֹם", "tehom", "the deep", "H8415"),
			w("וְרוּחַ", "veruach", "And the Spirit of", "H7307"),
			w("אֱלֹהִים", "elohim", "God", "H430"),
			w("מְרַחֶפֶת", "merachefet", "was hovering", "H7363"),
			w("עַל־פְּנֵי", "al-penei", "over the face of", "H5921"),
			w("הַמָּיִם", "hamayim", "the waters", "H4325"),
		},
		fullText: "And the earth was without form, and void; and darkness was upon the face of the deep. And the Spirit of God moved upon the face of the waters.",
	},
	"Genesis 1:3": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("וַיֹּאמֶר", "vayomer", "And said", "H559"),
			w("אֱלֹהִים", "elohim", "God", "H430"),
			w("יְהִי", "yehi", "Let there be", "H1961"),
			w("אוֹר", "or", "light", "H216"),
			w("וַיְהִי", "vayehi", "and there was", "H1961"),
			w("אוֹר", "or", "light", "H216"),
		},
		fullText: "And God said, Let there be light: and there was light.",
	},
	"John 1:1": {
		lang: domain.Greek,
		words: []domain.WordToken{
			w("Ἐν", "En", "In", "G1722"),
			w("ἀρχῇ", "archē", "the beginning", "G746"),
			w("ἦν", "ēn", "was", "G1510"),
			w("ὁ", "ho", "the", "G3588"),
			w("Λόγος", "Logos", "Word", "G3056"),
			w("καὶ", "kai", "and", "G2532"),
			w("ὁ", "ho", "the", "G3588"),
			w("Λόγος", "Logos", "Word", "G3056"),
			w("ἦν", "ēn", "was", "G1510"),
			w("πρὸς", "pros", "with", "G4314"),
			w("τὸν", "ton", "the", "G3588"),
			w("Θεόν", "Theon", "God", "G2316"),
			w("καὶ", "kai", "and", "G2532"),
			w("Θεὸς", "Theos", "God", "G2316"),
			w("ἦν", "ēn", "was", "G1510"),
			w("ὁ", "ho", "the", "G3588"),
			w("Λόγος", "Logos", "Word", "G3056"),
		},
		fullText: "In the beginning was the Word, and the Word was with God, and the Word was God.",
	},
	"John 3:16": {
		lang: domain.Greek,
		words: []domain.WordToken{
			w("Οὕτως", "Houtōs", "For thus", "G3779"),
			w("γὰρ", "gar", "for", "G1063"),
			w("ἠγάπησεν", "ēgapēsen", "loved", "G25"),
			w("ὁ", "ho", "the", "G3588"),
			w("Θεὸς", "Theos", "God", "G2316"),
			w("τὸν", "ton", "the", "G3588"),
			w("κόσμον", "kosmon", "world", "G2889"),
			w("ὥστε", "hōste", "that", "G5620"),
			w("τὸν", "ton", "the", "G3588"),
			w("Υἱὸν", "Huion", "Son", "G5207"),
			w("τὸν", "ton", "the", "G3588"),
			w("μονογενῆ", "monogenē", "only begotten", "G3439"),
			w("ἔδωκεν", "edōken", "He gave", "G1325"),
			w("ἵνα", "hina", "that", "G2443"),
			w("πᾶς", "pas", "everyone", "G3956"),
			w("ὁ", "ho", "who", "G3588"),
			w("πιστεύων", "pisteuōn", "believes", "G4100"),
			w("εἰς", "eis", "in", "G1519"),
			w("αὐτὸν", "auton", "Him", "G846"),
			w("μὴ", "mē", "not", "G3361"),
			w("ἀπόληται", "apolētai", "should perish", "G622"),
			w("ἀλλ᾽", "all", "but", "G235"),
			w("ἔχῃ", "echē", "have", "G2192"),
			w("ζωὴν", "zōēn", "life", "G2222"),
			w("αἰώνιον", "aiōnion", "eternal", "G166"),
		},
		fullText: "For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.",
	},
	"Psalm 23:1": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("מִזְמוֹר", "mizmor", "A Psalm", "H4210"),
			w("לְדָוִד", "leDavid", "of David", "H1732"),
			w("יְהוָה", "YHWH", "The LORD", "H3068"),
			w("רֹעִי", "ro'i", "is my shepherd", "H7462"),
			w("לֹא", "lo", "not", "H3808"),
			w("אֶחְסָר", "echsar", "I shall want", "H2637"),
		},
		fullText: "The LORD is my shepherd; I shall not want.",
	},
	"Romans 8:28": {
		lang: domain.Greek,
		words: []domain.WordToken{
			w("οἴδαμεν", "oidamen", "we know", "G1492"),
			w("δὲ", "de", "And", "G1161"),
			w("ὅτι", "hoti", "that", "G3754"),
			w("τοῖς", "tois", "to those", "G3588"),
			w("ἀγαπῶσιν", "agapōsin", "loving", "G25"),
			w("τὸν", "ton", "the", "G3588"),
			w("Θεὸν", "Theon", "God", "G2316"),
			w("πάντα", "panta", "all things", "G3956"),
			w("συνεργεῖ", "sunergei", "work together", "G4903"),
			w("εἰς", "eis", "for", "G1519"),
			w("ἀγαθόν", "agathon", "good", "G18"),
		},
		fullText: "And we know that all things work together for good to them that love God.",
	},
	"Philippians 4:13": {
		lang: domain.Greek,
		words: []domain.WordToken{
			w("πάντα", "panta", "All things", "G3956"),
			w("ἰσχύω", "ischuō", "I can do", "G2480"),
			w("ἐν", "en", "through", "G1722"),
			w("τῷ", "tō", "the One", "G3588"),
			w("ἐνδυναμοῦντί", "endunamounti", "strengthening", "G1743"),
			w("με", "me", "me", "G1473"),
		},
		fullText: "I can do all things through Christ which strengtheneth me.",
	},
	"Jeremiah 29:11": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("כִּי", "ki", "For", "H3588"),
			w("אָנֹכִי", "anokhi", "I", "H595"),
			w("יָדַעְתִּי", "yadati", "know", "H3045"),
			w("אֶת", "et", "[obj]", "H853"),
			w("הַמַּחֲשָׁבֹת", "hamachshavot", "the plans", "H4284"),
			w("אֲשֶׁר", "asher", "that", "H834"),
			w("אָנֹכִי", "anokhi", "I", "H595"),
			w("חֹשֵׁב", "choshev", "am thinking", "H2803"),
			w("עֲלֵיכֶם", "aleykhem", "concerning you", "H5921"),
		},
		fullText: "For I know the thoughts that I think toward you, saith the LORD, thoughts of peace, and not of evil, to give you an expected end.",
	},
	"Proverbs 3:5": {
		lang: domain.Hebrew,
		words: []domain.WordToken{
			w("בְּטַח", "betach", "Trust", "H982"),
			w("אֶל", "el", "in", "H413"),
			w("יְהוָה", "YHWH", "the LORD", "H3068"),
			w("בְּכָל", "bekhol", "with all", "H3605"),
			w("לִבֶּךָ", "libekha", "your heart", "H3820"),
			w("וְאֶל", "ve'el", "and not", "H413"),
			w("בִּינָתְךָ", "binatekha", "on your own understanding", "H998"),
			w("אַל", "al", "do not", "H408"),
			w("תִּשָּׁעֵן", "tisha'en", "lean", "H8172"),
		},
		fullText: "Trust in the LORD with all thine heart; and lean not unto thine own understanding.",
	},
}
