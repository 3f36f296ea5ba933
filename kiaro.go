// Package kiaro implements a deterministic, reversible lexical cipher for
// Italian text. Words are substituted through a whole-word lexicon and a
// cyclic permutation of verb infinitives while verb morphology
// (mood/tense/person), clitic pronoun suffixes, fixed elisions, punctuation
// and the original casing are preserved, so that Decrypt(Encrypt(text))
// reproduces the input whenever the supplied tables are internally
// consistent.
//
// It is a rule-governed substitution cipher, not a cryptographic one.
package kiaro

import "fmt"

// Direction selects which of the paired tables a lookup consults.
// Every direction-dependent function takes it as an explicit parameter;
// there are no duplicated encrypt/decrypt code paths.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

// String returns "encrypt" or "decrypt".
func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// MorphAnalysis is one morphological reading of a surface form.
// Tag is "VER:<mood>:<tense>:<person>" for verbs and opaque otherwise.
type MorphAnalysis struct {
	Lemma string
	Tag   string
}

// Lexicon is the immutable construction input, supplied by a lexicon
// provider such as LoadLexicon or LoadLexiconDB.
type Lexicon struct {
	// EncryptMap maps plain word → cipher word.
	EncryptMap map[string]string
	// DecryptMap maps cipher word → plain word.
	DecryptMap map[string]string
	// Clitics is the recognized clitic suffix set.
	// Empty means DefaultClitics.
	Clitics []string
	// FormToLemmaTags maps surface form → ordered analyses.
	// List order is significant: the first qualifying analysis wins.
	FormToLemmaTags map[string][]MorphAnalysis
	// LemmaTagToForm maps lemma → tag → surface form.
	LemmaTagToForm map[string]map[string]string
	// DebugTruncate is the maximum diagnostic message length in runes.
	// Zero means 120.
	DebugTruncate int
	// Debug receives diagnostic messages. Nil disables diagnostics.
	Debug func(string)
	// ElisionGuard, when set, keeps the original word after an elision
	// if its mapped result does not start with a vowel or "h".
	ElisionGuard bool
}

// defaultDebugTruncate is the diagnostic message length cap when the
// Lexicon does not set one.
const defaultDebugTruncate = 120

// Cipher holds all derived tables and provides the public API.
// Everything is built once by New and never mutated afterwards, so a
// Cipher may be shared freely between goroutines.
type Cipher struct {
	// words is the whole-word lexicon with its derived inverse.
	words *wordLexicon

	// analyses maps NormalizeKey(form) → ordered morphological analyses.
	analyses map[string][]MorphAnalysis

	// conjugations maps NormalizeKey(lemma) → tag → surface form.
	conjugations map[string]map[string]string

	// verbs is the cyclic infinitive permutation index.
	verbs *permutationIndex

	// clitics is the clitic set sorted longest-first for greedy matching.
	clitics []string

	truncate     int
	debug        func(string)
	elisionGuard bool
}

// New builds a Cipher from lex. All keys and values are normalized at
// load; conflicting entries resolve first-seen (in lexicographic key
// order) and are reported through the debug sink only. Degenerate input
// (empty maps) yields an identity transformer, never an error.
func New(lex Lexicon) *Cipher {
	c := &Cipher{
		truncate:     lex.DebugTruncate,
		debug:        lex.Debug,
		elisionGuard: lex.ElisionGuard,
	}
	if c.truncate <= 0 {
		c.truncate = defaultDebugTruncate
	}

	c.analyses = make(map[string][]MorphAnalysis, len(lex.FormToLemmaTags))
	for form, list := range lex.FormToLemmaTags {
		key := NormalizeKey(form)
		if key == "" || len(list) == 0 {
			continue
		}
		out := make([]MorphAnalysis, 0, len(list))
		for _, a := range list {
			out = append(out, MorphAnalysis{
				Lemma: NormalizeKey(a.Lemma),
				Tag:   a.Tag,
			})
		}
		c.analyses[key] = append(c.analyses[key], out...)
	}

	c.conjugations = make(map[string]map[string]string, len(lex.LemmaTagToForm))
	for lemma, byTag := range lex.LemmaTagToForm {
		key := NormalizeKey(lemma)
		if key == "" || len(byTag) == 0 {
			continue
		}
		dst := c.conjugations[key]
		if dst == nil {
			dst = make(map[string]string, len(byTag))
			c.conjugations[key] = dst
		}
		for tag, form := range byTag {
			if _, seen := dst[tag]; !seen {
				dst[tag] = NormalizeKey(form)
			}
		}
	}

	c.words = newWordLexicon(lex.EncryptMap, lex.DecryptMap, c.debugf)
	c.verbs = c.buildPermutationIndex()

	clitics := lex.Clitics
	if len(clitics) == 0 {
		clitics = DefaultClitics()
	}
	c.clitics = sortCliticsLongestFirst(clitics)

	return c
}

// Encrypt transforms text from plain to cipher form.
func (c *Cipher) Encrypt(text string) string {
	return c.transform(Encrypt, text)
}

// Decrypt transforms text from cipher to plain form.
func (c *Cipher) Decrypt(text string) string {
	return c.transform(Decrypt, text)
}

// EncryptTimes applies Encrypt n times in sequence. n < 1 is treated as 1.
// There is no idempotence guarantee beyond a single pass.
func (c *Cipher) EncryptTimes(text string, n int) string {
	return c.transformTimes(Encrypt, text, n)
}

// DecryptTimes applies Decrypt n times in sequence. n < 1 is treated as 1.
func (c *Cipher) DecryptTimes(text string, n int) string {
	return c.transformTimes(Decrypt, text, n)
}

func (c *Cipher) transformTimes(dir Direction, text string, n int) string {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		text = c.transform(dir, text)
	}
	return text
}

// debugf formats a diagnostic message, truncates it to the configured
// rune length, and hands it to the sink. No-op without a sink.
func (c *Cipher) debugf(format string, args ...any) {
	if c.debug == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if r := []rune(msg); len(r) > c.truncate {
		msg = string(r[:c.truncate])
	}
	c.debug(msg)
}
