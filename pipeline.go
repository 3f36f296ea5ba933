package kiaro

import (
	"strings"
	"unicode/utf8"
)

// isWordLetter reports whether r belongs to a word token: ASCII letters,
// Latin-1 letters, Latin Extended-A/B, and combining marks (which ride
// along with their base letter). Everything else — punctuation, digits,
// whitespace — is copied through verbatim.
func isWordLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0x00C0 && r <= 0x024F:
		return r != '×' && r != '÷'
	case r >= 0x0300 && r <= 0x036F:
		return true
	}
	return false
}

// transform runs one left-to-right pass over text: a pre-pass unifies
// apostrophes and strips invisibles without touching case, then the scan
// recognizes fixed elisions, resolves maximal letters runs through the
// strategy chain, and copies every other character unchanged.
func (c *Cipher) transform(dir Direction, text string) string {
	text = StripInvisible(UnifyApostrophes(text))
	if text == "" {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	afterElision := false
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordLetter(r) {
			b.WriteString(text[i : i+size])
			i += size
			afterElision = false
			continue
		}

		start := i
		for i < len(text) {
			nr, ns := utf8.DecodeRuneInString(text[i:])
			if !isWordLetter(nr) {
				break
			}
			i += ns
		}
		run := text[start:i]

		// A letters run immediately followed by an apostrophe is a fixed
		// elision: copy it through and transform only the word after it.
		if i < len(text) && text[i] == '\'' && isElisionPrefix(run) {
			b.WriteString(run)
			b.WriteByte('\'')
			i++
			afterElision = true
			continue
		}

		out := c.resolveWord(dir, run)
		if afterElision && c.elisionGuard && out != run && !plausibleAfterElision(NormalizeKey(out)) {
			c.debugf("%s: %q after elision rejected, keeping %q", dir, out, run)
			out = run
		}
		b.WriteString(out)
		afterElision = false
	}

	return b.String()
}
