package kiaro

import (
	"sort"
	"strings"
)

// defaultClitics is the fixed Italian clitic pronoun set, single pronouns
// plus the usual combined forms.
var defaultClitics = []string{
	"mi", "ti", "si", "ci", "vi", "lo", "la", "li", "le", "ne", "gli",
	"glielo", "gliela", "glieli", "gliele", "gliene",
	"melo", "mela", "meli", "mele", "mene",
	"telo", "tela", "teli", "tele", "tene",
	"selo", "sela", "seli", "sele", "sene",
	"celo", "cela", "celi", "cele", "cene",
	"velo", "vela", "veli", "vele", "vene",
}

// DefaultClitics returns a copy of the built-in clitic set.
func DefaultClitics() []string {
	return append([]string(nil), defaultClitics...)
}

// truncatedInfinitives licenses short r-final bases (apocopated
// infinitives) that the length rule alone would reject.
var truncatedInfinitives = map[string]bool{
	"far": true,
	"dar": true,
	"dir": true,
}

// sortCliticsLongestFirst normalizes the clitic set and orders it longest
// first so the splitter's greedy scan takes the longest match.
func sortCliticsLongestFirst(clitics []string) []string {
	out := make([]string, 0, len(clitics))
	seen := make(map[string]bool, len(clitics))
	for _, cl := range clitics {
		cl = NormalizeKey(cl)
		if cl == "" || seen[cl] {
			continue
		}
		seen[cl] = true
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// vowels covers plain and accented Italian vowels.
var vowels = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
	'à': true, 'è': true, 'é': true, 'ì': true, 'í': true, 'î': true,
	'ò': true, 'ó': true, 'ù': true, 'ú': true,
}

func isVowel(r rune) bool {
	return vowels[r]
}

// attachableBase reports whether base can host a clitic: it ends in an
// apostrophe, a vowel (plain or accented), or an "r" belonging to a
// plausible truncated infinitive (length ≥4 or a licensed short form).
func attachableBase(base string) bool {
	if base == "" {
		return false
	}
	if strings.HasSuffix(base, "'") {
		return true
	}
	runes := []rune(base)
	last := runes[len(runes)-1]
	if isVowel(last) {
		return true
	}
	if last == 'r' {
		return len(runes) >= 4 || truncatedInfinitives[base]
	}
	return false
}

// splitClitic decomposes word into (base, clitic) using the longest
// configured clitic suffix whose remaining base is non-empty and
// attachable. ok is false when no split applies.
func (c *Cipher) splitClitic(word string) (base, clitic string, ok bool) {
	for _, cl := range c.clitics {
		if len(word) <= len(cl) || !strings.HasSuffix(word, cl) {
			continue
		}
		b := word[:len(word)-len(cl)]
		if attachableBase(b) {
			return b, cl, true
		}
	}
	return word, "", false
}
