// Package lexicon resolves short English glosses for Strong's numbers and
// holds the curated Strong's tables.
package lexicon

// GlossEntry is a curated gloss and transliteration for one Strong's number.
type GlossEntry struct {
	Gloss           string
	Transliteration string
}

// LookupGloss returns the curated gloss for a Hebrew Strong's number.
// The external lexicon's short definitions often pick a secondary sense, so
// these entries take precedence for the numbers they cover.
func LookupGloss(strongs string) (GlossEntry, bool) {
	e, ok := glossCache[strongs]
	return e, ok
}

var glossCache = map[string]GlossEntry{
	"H430":  {"God", "elohim"},
	"H7225": {"beginning", "reshit"},
	"H1254": {"created", "bara"},
	"H3068": {"LORD", "YHWH"},
	"H7307": {"Spirit", "ruach"},
	"H2617": {"lovingkindness", "chesed"},
	"H776":  {"earth", "erets"},
	"H8064": {"heavens", "shamayim"},
	"H853":  {"[direct object marker]", "et"},
	"H216":  {"light", "or"},
	"H1961": {"was", "hayah"},
	"H559":  {"said", "amar"},
	"H4325": {"waters", "mayim"},
	"H2822": {"darkness", "choshek"},
	"H5921": {"upon", "al"},
	"H6440": {"face", "panim"},
	"H8415": {"deep", "tehom"},
	"H8414": {"formless", "tohu"},
	"H922":  {"void", "bohu"},
	"H7363": {"hovering", "rachaph"},
	"H3117": {"day", "yom"},
	"H3915": {"night", "layil"},
	"H7121": {"called", "qara"},
	"H2896": {"good", "tov"},
	"H7200": {"saw", "ra'ah"},
	"H914":  {"separated", "badal"},
	"H6213": {"made", "asah"},
	"H120":  {"man", "adam"},
	"H1121": {"son", "ben"},
	"H3478": {"Israel", "yisra'el"},
	"H3808": {"not", "lo"},
	"H3588": {"for", "ki"},
	"H834":  {"which", "asher"},
	"H413":  {"to", "el"},
	"H3605": {"all", "kol"},
	"H5315": {"soul", "nephesh"},
	"H3820": {"heart", "lev"},
	"H7462": {"shepherd", "ra'ah"},
	"H2637": {"lack", "chaser"},
	"H4210": {"psalm", "mizmor"},
	"H1732": {"David", "david"},
	"H982":  {"trust", "batach"},
	"H998":  {"understanding", "binah"},
	"H408":  {"not", "al"},
	"H8172": {"lean", "sha'an"},
	"H3045": {"know", "yada"},
	"H4284": {"plans", "machashavah"},
	"H595":  {"I", "anokhi"},
	"H2803": {"think", "chashav"},
	"H7965": {"peace", "shalom"},
	"H1285": {"covenant", "berit"},
	"H6944": {"holiness", "qodesh"},
	"H8451": {"law", "torah"},
	"H6666": {"righteousness", "tsedaqah"},
	"H571":  {"truth", "emet"},
}
