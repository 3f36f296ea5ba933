package kiaro

import "strings"

// resolveWord transforms one surface token: normalize, run the strategy
// chain, then reapply the source casing.
func (c *Cipher) resolveWord(dir Direction, surface string) string {
	key := NormalizeKey(surface)
	if key == "" {
		return surface
	}
	return adjustCase(surface, c.resolveKey(dir, key))
}

// resolveKey runs the per-word strategy chain in its fixed order. A
// strategy succeeds when its result differs from the input key; an
// identity result counts as no mapping and the chain continues — except
// on the decrypt whole-word path, where an identity may deliberately
// surface as the final answer.
func (c *Cipher) resolveKey(dir Direction, key string) string {
	// 1. Verb-preferring morphological resolution.
	if out, ok := c.resolveVerb(dir, key); ok && out != key {
		return out
	}

	// 2. The word is itself an infinitive: force the permutation.
	if c.isInfinitive(key) {
		if out := c.mapInfinitive(dir, key); out != key {
			return out
		}
	}

	// 3. Whole-word lexicon.
	if out, ok := c.words.lookup(dir, key); ok {
		if dir == Decrypt || out != key {
			return out
		}
	}

	// 4. Generic (non-verbal) morphological resolution.
	if out, ok := c.resolveGeneric(dir, key); ok && out != key {
		return out
	}

	// 5. Clitic split: resolve the base on its own, keep the clitic.
	if base, clitic, ok := c.splitClitic(key); ok {
		return c.resolveCliticBase(dir, base) + clitic
	}

	// 6. No clitic found: the word passes through unchanged.
	return key
}

// resolveCliticBase resolves the base of a clitic split. A base ending in
// "r" whose expansion with "e" is a recognized infinitive is looked up in
// its expanded form; the mapped result is re-truncated only if the
// mapping actually changed it, otherwise the original truncated spelling
// comes back verbatim.
func (c *Cipher) resolveCliticBase(dir Direction, base string) string {
	lookup := base
	expanded := false
	if strings.HasSuffix(base, "r") && c.isInfinitive(base+"e") {
		lookup = base + "e"
		expanded = true
	}

	mapped, changed := c.resolveBaseKey(dir, lookup)
	if expanded {
		if !changed {
			return base
		}
		return strings.TrimSuffix(mapped, "e")
	}
	if !changed {
		return base
	}
	return mapped
}

// resolveBaseKey runs strategies 2–4 of the chain on a clitic base and
// reports whether the mapping changed it.
func (c *Cipher) resolveBaseKey(dir Direction, key string) (string, bool) {
	if c.isInfinitive(key) {
		if out := c.mapInfinitive(dir, key); out != key {
			return out, true
		}
	}
	if out, ok := c.words.lookup(dir, key); ok {
		if dir == Decrypt || out != key {
			return out, out != key
		}
	}
	if out, ok := c.resolveGeneric(dir, key); ok && out != key {
		return out, true
	}
	return key, false
}
