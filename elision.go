package kiaro

// elisionPrefixes is the fixed closed set of orthographic elisions,
// stored without the trailing apostrophe. A matched prefix passes through
// the transform verbatim.
var elisionPrefixes = map[string]bool{
	"l":     true,
	"un":    true,
	"d":     true,
	"all":   true,
	"dall":  true,
	"dell":  true,
	"nell":  true,
	"sull":  true,
	"coll":  true,
	"pell":  true,
	"gliel": true,
	"m":     true,
	"t":     true,
	"s":     true,
	"c":     true,
	"v":     true,
}

// isElisionPrefix reports whether the letters-run before an apostrophe is
// one of the fixed elisions. run is matched case-insensitively.
func isElisionPrefix(run string) bool {
	return elisionPrefixes[NormalizeKey(run)]
}

// plausibleAfterElision reports whether word can plausibly follow an
// elision: it starts with a vowel or "h". Used only when the elision
// guard is enabled.
func plausibleAfterElision(word string) bool {
	for _, r := range word {
		return isVowel(r) || r == 'h'
	}
	return false
}
