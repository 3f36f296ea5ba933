package kiaro

import "strings"

// verbTagPrefix introduces every verbal morphology tag.
const verbTagPrefix = "VER:"

// isVerbTag reports whether tag is a verbal tag.
func isVerbTag(tag string) bool {
	return strings.HasPrefix(tag, verbTagPrefix)
}

// personSlots maps the person/number segment to its 6-slot table index.
var personSlots = map[string]int{
	"S1": 0, "S2": 1, "S3": 2,
	"P1": 3, "P2": 4, "P3": 5,
}

// verbTag is a parsed "VER:<mood>:<tense>:<person>" tag.
type verbTag struct {
	Mood  string
	Tense string
	Slot  int
}

// parseVerbTag splits tag into its segments. A wrong segment count or an
// unknown person/number is malformed and reported as unsupported, not as
// an error.
func parseVerbTag(tag string) (verbTag, bool) {
	parts := strings.Split(tag, ":")
	if len(parts) != 4 || parts[0] != "VER" {
		return verbTag{}, false
	}
	slot, ok := personSlots[parts[3]]
	if !ok {
		return verbTag{}, false
	}
	return verbTag{Mood: parts[1], Tense: parts[2], Slot: slot}, true
}

// resolveVerb is the verb-preferring morphological resolution. It commits
// to the first analysis whose tag is verbal and whose lemma is a
// recognized infinitive — even when the dictionary and rule lookups both
// miss and only the bare mapped lemma remains (first viable, not best
// viable). With no qualifying analysis it signals no mapping; it never
// forces a non-verbal result.
func (c *Cipher) resolveVerb(dir Direction, key string) (string, bool) {
	for _, a := range c.analyses[key] {
		if !isVerbTag(a.Tag) {
			continue
		}
		if !c.isInfinitive(a.Lemma) {
			continue
		}
		mapped := c.mapInfinitive(dir, a.Lemma)
		if form, ok := c.conjugations[mapped][a.Tag]; ok {
			c.debugf("%s: verb %q → %q via dictionary (%s)", dir, key, form, a.Tag)
			return form, true
		}
		if form, ok := c.inflect(mapped, a.Tag); ok {
			c.debugf("%s: verb %q → %q via rules (%s)", dir, key, form, a.Tag)
			return form, true
		}
		// No conjugated form on the mapped side: surface the bare lemma.
		return mapped, true
	}
	return "", false
}

// resolveGeneric is the non-verbal morphological resolution: verb
// analyses are skipped, the lemma is mapped through the whole-word
// lexicon, and the mapped lemma+tag is looked up in the dictionary.
// There is no forced fallback; the first fully viable candidate wins.
func (c *Cipher) resolveGeneric(dir Direction, key string) (string, bool) {
	for _, a := range c.analyses[key] {
		if isVerbTag(a.Tag) {
			continue
		}
		mapped, ok := c.words.lookup(dir, a.Lemma)
		if !ok {
			continue
		}
		if form, ok := c.conjugations[mapped][a.Tag]; ok {
			c.debugf("%s: %q → %q via lemma %q (%s)", dir, key, form, a.Lemma, a.Tag)
			return form, true
		}
	}
	return "", false
}
