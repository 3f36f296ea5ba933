package kiaro

import "sort"

// conjClass is one of the three regular Italian verb families, or
// irregular, or none for words that are not infinitives at all.
type conjClass int

const (
	classNone conjClass = iota
	classAre
	classEre
	classIre
	classIrregular
)

// String returns the bin name for diagnostics.
func (c conjClass) String() string {
	switch c {
	case classAre:
		return "are"
	case classEre:
		return "ere"
	case classIre:
		return "ire"
	case classIrregular:
		return "irregular"
	}
	return "none"
}

// irregularInfinitives is the fixed closed set of irregular verbs.
// An irregular infinitive conjugates through the inflection dictionary
// only; the rule-based inflector refuses it.
var irregularInfinitives = map[string]bool{
	"andare":    true,
	"avere":     true,
	"bere":      true,
	"condurre":  true,
	"dare":      true,
	"dire":      true,
	"dovere":    true,
	"essere":    true,
	"fare":      true,
	"morire":    true,
	"porre":     true,
	"potere":    true,
	"rimanere":  true,
	"salire":    true,
	"sapere":    true,
	"scegliere": true,
	"sedere":    true,
	"stare":     true,
	"tenere":    true,
	"trarre":    true,
	"uscire":    true,
	"venire":    true,
	"volere":    true,
}

// suffixClass classifies an infinitive by its 3-character ending.
func suffixClass(inf string) conjClass {
	if len(inf) < 4 {
		return classNone
	}
	switch inf[len(inf)-3:] {
	case "are":
		return classAre
	case "ere":
		return classEre
	case "ire":
		return classIre
	}
	return classNone
}

// conjugationOf classifies inf. Irregular status wins over the suffix
// match, but only when the inflection dictionary actually covers the
// infinitive; a listed irregular without dictionary forms falls back to
// its suffix class.
func (c *Cipher) conjugationOf(inf string) conjClass {
	if irregularInfinitives[inf] {
		if _, ok := c.conjugations[inf]; ok {
			return classIrregular
		}
	}
	return suffixClass(inf)
}

// isInfinitive reports whether key is a recognized infinitive.
func (c *Cipher) isInfinitive(key string) bool {
	return c.conjugationOf(key) != classNone
}

// permutationIndex is the deterministic cyclic relabeling of infinitives.
// forward is consulted on encrypt, inverse on decrypt; the two are exact
// mirrors by construction.
type permutationIndex struct {
	forward map[string]string
	inverse map[string]string
}

// buildPermutationIndex collects every infinitive referenced by a verb
// analysis or by an inflection-dictionary lemma key, partitions them into
// the four conjugation bins, sorts each bin and rotates it one step:
// bin[i] → bin[(i+1) mod n]. The result is independent of input ordering
// and, within any bin of size ≥2, a derangement. Bins of size <2
// contribute no mapping.
func (c *Cipher) buildPermutationIndex() *permutationIndex {
	set := make(map[string]bool)
	for _, list := range c.analyses {
		for _, a := range list {
			if isVerbTag(a.Tag) {
				set[a.Lemma] = true
			}
		}
	}
	for lemma := range c.conjugations {
		set[lemma] = true
	}

	bins := make(map[conjClass][]string)
	for inf := range set {
		cl := c.conjugationOf(inf)
		if cl == classNone {
			continue
		}
		bins[cl] = append(bins[cl], inf)
	}

	p := &permutationIndex{
		forward: make(map[string]string, len(set)),
		inverse: make(map[string]string, len(set)),
	}
	for _, cl := range []conjClass{classAre, classEre, classIre, classIrregular} {
		bin := bins[cl]
		if len(bin) < 2 {
			continue
		}
		sort.Strings(bin)
		for i, inf := range bin {
			next := bin[(i+1)%len(bin)]
			p.forward[inf] = next
			p.inverse[next] = inf
		}
		c.debugf("permutation: %s bin holds %d infinitives", cl, len(bin))
	}
	return p
}

// mapInfinitive maps an infinitive through the permutation index for dir.
// A direct whole-word lexicon entry of matching conjugation class takes
// precedence over the permutation. Encrypt reads the forward table and
// decrypt the exact inverse; only if the inverse is unexpectedly missing
// an entry does decrypt fall back to a linear reverse scan of the forward
// table. With no match at all the input comes back unchanged.
func (c *Cipher) mapInfinitive(dir Direction, inf string) string {
	class := c.conjugationOf(inf)
	if v, ok := c.words.lookup(dir, inf); ok && v != inf && c.conjugationOf(v) == class {
		c.debugf("%s: infinitive %q mapped by lexicon to %q", dir, inf, v)
		return v
	}
	if dir == Encrypt {
		if v, ok := c.verbs.forward[inf]; ok {
			return v
		}
		return inf
	}
	if v, ok := c.verbs.inverse[inf]; ok {
		return v
	}
	for plain, cipher := range c.verbs.forward {
		if cipher == inf {
			c.debugf("decrypt: inverse table missed %q, recovered by scan", inf)
			return plain
		}
	}
	return inf
}
