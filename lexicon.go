package kiaro

import "sort"

// wordLexicon is the whole-word plain↔cipher table plus a derived inverse
// of the encrypt map. All keys and values are normalized at construction.
type wordLexicon struct {
	enc map[string]string
	dec map[string]string

	// invEnc is the derived cipher→plain index built from enc in two
	// passes: non-identity pairs first (first seen wins), then identity
	// pairs only for ciphers not already covered. An identity entry never
	// shadows a genuine reverse mapping.
	invEnc map[string]string
}

// newWordLexicon normalizes both maps and builds the derived inverse.
// Go map iteration order is random, so "first seen" is made reproducible
// by walking the encrypt keys in lexicographic order. Collisions are
// reported through debugf only.
func newWordLexicon(encrypt, decrypt map[string]string, debugf func(string, ...any)) *wordLexicon {
	w := &wordLexicon{
		enc:    make(map[string]string, len(encrypt)),
		dec:    make(map[string]string, len(decrypt)),
		invEnc: make(map[string]string, len(encrypt)),
	}

	for plain, cipher := range encrypt {
		k, v := NormalizeKey(plain), NormalizeKey(cipher)
		if k == "" || v == "" {
			continue
		}
		w.enc[k] = v
	}
	for cipher, plain := range decrypt {
		k, v := NormalizeKey(cipher), NormalizeKey(plain)
		if k == "" || v == "" {
			continue
		}
		w.dec[k] = v
	}

	keys := make([]string, 0, len(w.enc))
	for k := range w.enc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Pass 1: genuine (non-identity) reverse mappings.
	for _, plain := range keys {
		cipher := w.enc[plain]
		if cipher == plain {
			continue
		}
		if prev, seen := w.invEnc[cipher]; seen {
			debugf("inverse lexicon: %q already maps to %q, dropping %q", cipher, prev, plain)
			continue
		}
		w.invEnc[cipher] = plain
	}
	// Pass 2: identity pairs, only where no reverse mapping exists yet.
	for _, plain := range keys {
		if w.enc[plain] != plain {
			continue
		}
		if _, seen := w.invEnc[plain]; !seen {
			w.invEnc[plain] = plain
		}
	}

	return w
}

// resolveDecrypt returns the plain word for a cipher key. Precedence:
// genuine decrypt mapping > genuine inverse-of-encrypt mapping >
// identity decrypt mapping > identity inverse mapping > absent. Unlike
// every other lookup in the resolver chain, an identity here may
// deliberately surface as the final answer: it is how words whose
// cipher equals their plain form decrypt stably.
func (w *wordLexicon) resolveDecrypt(key string) (string, bool) {
	if v, ok := w.dec[key]; ok && v != key {
		return v, true
	}
	if v, ok := w.invEnc[key]; ok && v != key {
		return v, true
	}
	if v, ok := w.dec[key]; ok {
		return v, true
	}
	if v, ok := w.invEnc[key]; ok {
		return v, true
	}
	return "", false
}

// lookup consults the direct table for dir: the encrypt map as-is, or
// resolveDecrypt for the decrypt side.
func (w *wordLexicon) lookup(dir Direction, key string) (string, bool) {
	if dir == Encrypt {
		v, ok := w.enc[key]
		return v, ok
	}
	return w.resolveDecrypt(key)
}
