package kiaro

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// apostropheReplacer unifies the curly apostrophe (U+2019) with the straight
// one so that elisions and lexicon keys agree on a single spelling.
var apostropheReplacer = strings.NewReplacer(
	"’", "'",
)

// UnifyApostrophes canonicalizes apostrophes in s.
func UnifyApostrophes(s string) string {
	return apostropheReplacer.Replace(s)
}

// isInvisible reports whether r is one of the invisible/format code points
// stripped from every lookup key and from text before tokenization.
// Ordinary whitespace (tab, newline, vertical tab, form feed, carriage
// return, space) is not invisible: it must survive the text pass verbatim.
func isInvisible(r rune) bool {
	switch {
	case r < 0x09: // C0 controls below tab
		return true
	case r >= 0x0E && r <= 0x1F: // C0 controls above carriage return
		return true
	case r >= 0x7F && r <= 0x9F: // DEL + C1 controls
		return true
	case r == 0x00A0 || r == 0x2007 || r == 0x202F: // no-break spaces
		return true
	case r == 0x00AD: // soft hyphen
		return true
	case r >= 0x200B && r <= 0x200F: // zero-width + bidi marks
		return true
	case r >= 0x202A && r <= 0x202E: // bidi embedding/override
		return true
	case r >= 0x2060 && r <= 0x206F: // word joiner + invisible operators
		return true
	case r == 0xFEFF: // BOM
		return true
	case r >= 0xFFF9 && r <= 0xFFFB: // interlinear annotation
		return true
	case r >= 0x1BCA0 && r <= 0x1BCA3: // shorthand format controls
		return true
	case r >= 0xE0000 && r <= 0xE007F: // Tag characters
		return true
	}
	return false
}

// StripInvisible removes invisible/format code points from s, preserving
// case. Applied to whole text before tokenization so casing analysis sees
// the same runes the resolver will.
func StripInvisible(s string) string {
	// Fast path: most text carries none of these.
	clean := true
	for _, r := range s {
		if isInvisible(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !isInvisible(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeKey returns the canonical lookup key for s: apostrophes unified,
// invisibles stripped, NFC-composed, lowercased, trimmed. Pure and
// idempotent; every table key and every lookup goes through it.
func NormalizeKey(s string) string {
	s = UnifyApostrophes(s)
	s = StripInvisible(s)
	s = norm.NFC.String(s)
	s = strings.ToLower(s)
	return strings.TrimSpace(s)
}
