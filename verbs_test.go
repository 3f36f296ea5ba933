package kiaro

import "testing"

func TestConjugationClass(t *testing.T) {
	c := testCipher()
	tests := []struct {
		inf  string
		want conjClass
	}{
		{"parlare", classAre},
		{"credere", classEre},
		{"dormire", classIre},
		{"andare", classIrregular}, // listed and dictionary-covered
		{"fare", classIrregular},
		{"volere", classEre}, // listed but no dictionary coverage: suffix wins
		{"casa", classNone},
		{"re", classNone},
		{"mare", classAre}, // suffix-based, whatever the part of speech
	}
	for _, tt := range tests {
		if got := c.conjugationOf(tt.inf); got != tt.want {
			t.Errorf("conjugationOf(%q) = %v, want %v", tt.inf, got, tt.want)
		}
	}
}

func TestPermutationDerangement(t *testing.T) {
	c := testCipher()
	if len(c.verbs.forward) == 0 {
		t.Fatal("permutation index is empty")
	}
	for a, fa := range c.verbs.forward {
		if fa == a {
			t.Errorf("forward(%q) = %q: not a derangement", a, fa)
		}
		if back, ok := c.verbs.inverse[fa]; !ok || back != a {
			t.Errorf("inverse(forward(%q)) = %q, want %q", a, back, a)
		}
	}
	if len(c.verbs.inverse) != len(c.verbs.forward) {
		t.Errorf("inverse has %d entries, forward has %d",
			len(c.verbs.inverse), len(c.verbs.forward))
	}
}

func TestPermutationIsSortedRotation(t *testing.T) {
	c := testCipher()
	// are bin: amare < lasciare < parlare, rotated one step.
	tests := []struct{ from, to string }{
		{"amare", "lasciare"},
		{"lasciare", "parlare"},
		{"parlare", "amare"},
		{"credere", "temere"},
		{"temere", "credere"},
		{"dormire", "sentire"},
		{"sentire", "dormire"},
		{"andare", "fare"},
		{"fare", "andare"},
	}
	for _, tt := range tests {
		if got := c.verbs.forward[tt.from]; got != tt.to {
			t.Errorf("forward(%q) = %q, want %q", tt.from, got, tt.to)
		}
	}
}

func TestSingletonBinUnmapped(t *testing.T) {
	// A bin of size 1 contributes no mapping: the infinitive comes back
	// unchanged in both directions.
	c := New(Lexicon{
		FormToLemmaTags: map[string][]MorphAnalysis{
			"parlo": {{Lemma: "parlare", Tag: "VER:ind:pre:S1"}},
		},
	})
	if got := c.mapInfinitive(Encrypt, "parlare"); got != "parlare" {
		t.Errorf("mapInfinitive(Encrypt, parlare) = %q, want unchanged", got)
	}
	if got := c.mapInfinitive(Decrypt, "parlare"); got != "parlare" {
		t.Errorf("mapInfinitive(Decrypt, parlare) = %q, want unchanged", got)
	}
}

func TestInfinitiveLexiconEntryPreferred(t *testing.T) {
	// A direct infinitive→infinitive lexicon entry of matching class
	// takes precedence over the permutation.
	lex := testLexicon()
	lex.EncryptMap["parlare"] = "cantare"
	lex.DecryptMap["cantare"] = "parlare"
	c := New(lex)

	if got := c.Encrypt("parlare"); got != "cantare" {
		t.Errorf("Encrypt(parlare) = %q, want lexicon %q", got, "cantare")
	}
	if got := c.Decrypt("cantare"); got != "parlare" {
		t.Errorf("Decrypt(cantare) = %q, want %q", got, "parlare")
	}

	// A class mismatch disables the preference: sole is no infinitive.
	if got := c.Encrypt("amare"); got != "lasciare" {
		t.Errorf("Encrypt(amare) = %q, want permutation %q", got, "lasciare")
	}
}

func TestInfinitiveRoundTrip(t *testing.T) {
	c := testCipher()
	for _, inf := range []string{"parlare", "amare", "lasciare", "credere", "dormire", "andare", "fare"} {
		enc := c.Encrypt(inf)
		if got := c.Decrypt(enc); got != inf {
			t.Errorf("Decrypt(Encrypt(%q)) = %q (encrypted %q)", inf, got, enc)
		}
	}
}
