package kiaro

// endingSet is a 6-slot ending table indexed S1,S2,S3,P1,P2,P3.
// An empty slot means the paradigm has no form there; the caller then
// falls back to the bare lemma.
type endingSet [6]string

// Supported mood:tense keys. Anything else is unsupported and yields
// nothing, which sends the resolver on to its next strategy.
const (
	indPresent   = "ind:pre"
	indImperfect = "ind:impf"
	indFuture    = "ind:fut"
	condPresent  = "cond:pre"
	subPresent   = "sub:pre"
	subImperfect = "sub:impf"
	imprPresent  = "impr:pre"
)

var areEndings = map[string]endingSet{
	indPresent:   {"o", "i", "a", "iamo", "ate", "ano"},
	indImperfect: {"avo", "avi", "ava", "avamo", "avate", "avano"},
	indFuture:    {"ò", "ai", "à", "emo", "ete", "anno"},
	condPresent:  {"ei", "esti", "ebbe", "emmo", "este", "ebbero"},
	subPresent:   {"i", "i", "i", "iamo", "iate", "ino"},
	subImperfect: {"assi", "assi", "asse", "assimo", "aste", "assero"},
	imprPresent:  {"", "a", "", "iamo", "ate", ""},
}

var ereEndings = map[string]endingSet{
	indPresent:   {"o", "i", "e", "iamo", "ete", "ono"},
	indImperfect: {"evo", "evi", "eva", "evamo", "evate", "evano"},
	indFuture:    {"ò", "ai", "à", "emo", "ete", "anno"},
	condPresent:  {"ei", "esti", "ebbe", "emmo", "este", "ebbero"},
	subPresent:   {"a", "a", "a", "iamo", "iate", "ano"},
	subImperfect: {"essi", "essi", "esse", "essimo", "este", "essero"},
	imprPresent:  {"", "i", "", "iamo", "ete", ""},
}

var ireEndings = map[string]endingSet{
	indPresent:   {"o", "i", "e", "iamo", "ite", "ono"},
	indImperfect: {"ivo", "ivi", "iva", "ivamo", "ivate", "ivano"},
	indFuture:    {"ò", "ai", "à", "emo", "ete", "anno"},
	condPresent:  {"ei", "esti", "ebbe", "emmo", "este", "ebbero"},
	subPresent:   {"a", "a", "a", "iamo", "iate", "ano"},
	subImperfect: {"issi", "issi", "isse", "issimo", "iste", "issero"},
	imprPresent:  {"", "i", "", "iamo", "ite", ""},
}

// futureStemTenses marks mood:tense combinations built on the future
// stem instead of the plain stem.
var futureStemTenses = map[string]bool{
	indFuture:   true,
	condPresent: true,
}

// endingsFor returns the ending table for a regular conjugation class.
func endingsFor(class conjClass, moodTense string) (endingSet, bool) {
	var table map[string]endingSet
	switch class {
	case classAre:
		table = areEndings
	case classEre:
		table = ereEndings
	case classIre:
		table = ireEndings
	default:
		return endingSet{}, false
	}
	e, ok := table[moodTense]
	return e, ok
}

// inflect conjugates a regular infinitive for a verb tag. It yields
// nothing for malformed tags, listed irregulars (those resolve through
// the dictionary only), unsupported mood/tense combinations, and empty
// imperative slots.
func (c *Cipher) inflect(inf, tag string) (string, bool) {
	vt, ok := parseVerbTag(tag)
	if !ok {
		return "", false
	}
	if irregularInfinitives[inf] {
		return "", false
	}
	class := suffixClass(inf)
	if class == classNone {
		return "", false
	}

	moodTense := vt.Mood + ":" + vt.Tense
	endings, ok := endingsFor(class, moodTense)
	if !ok {
		return "", false
	}
	ending := endings[vt.Slot]
	if ending == "" {
		return "", false
	}

	stem := inf[:len(inf)-3]
	if futureStemTenses[moodTense] {
		if class == classAre {
			// parlare → parler-
			stem += "er"
		} else {
			// credere → creder-, dormire → dormir-
			stem = inf[:len(inf)-1]
		}
	}
	return stem + ending, true
}
