package kiaro

import "testing"

func TestInflectRegular(t *testing.T) {
	c := testCipher()
	tests := []struct {
		inf  string
		tag  string
		want string
	}{
		// indicative present, all six slots
		{"parlare", "VER:ind:pre:S1", "parlo"},
		{"parlare", "VER:ind:pre:S2", "parli"},
		{"parlare", "VER:ind:pre:S3", "parla"},
		{"parlare", "VER:ind:pre:P1", "parliamo"},
		{"parlare", "VER:ind:pre:P2", "parlate"},
		{"parlare", "VER:ind:pre:P3", "parlano"},
		// imperfect
		{"parlare", "VER:ind:impf:S1", "parlavo"},
		{"credere", "VER:ind:impf:S3", "credeva"},
		{"dormire", "VER:ind:impf:P3", "dormivano"},
		// future on the future stem
		{"parlare", "VER:ind:fut:S1", "parlerò"},
		{"parlare", "VER:ind:fut:P3", "parleranno"},
		{"credere", "VER:ind:fut:S1", "crederò"},
		{"dormire", "VER:ind:fut:S2", "dormirai"},
		// conditional on the future stem
		{"parlare", "VER:cond:pre:S3", "parlerebbe"},
		{"credere", "VER:cond:pre:P1", "crederemmo"},
		// subjunctive
		{"parlare", "VER:sub:pre:S1", "parli"},
		{"credere", "VER:sub:pre:S3", "creda"},
		{"parlare", "VER:sub:impf:P3", "parlassero"},
		{"dormire", "VER:sub:impf:S1", "dormissi"},
		// imperative, filled slots
		{"parlare", "VER:impr:pre:S2", "parla"},
		{"parlare", "VER:impr:pre:P2", "parlate"},
		{"credere", "VER:impr:pre:S2", "credi"},
		{"dormire", "VER:impr:pre:P1", "dormiamo"},
	}
	for _, tt := range tests {
		got, ok := c.inflect(tt.inf, tt.tag)
		if !ok {
			t.Errorf("inflect(%q, %q) failed, want %q", tt.inf, tt.tag, tt.want)
			continue
		}
		if got != tt.want {
			t.Errorf("inflect(%q, %q) = %q, want %q", tt.inf, tt.tag, got, tt.want)
		}
	}
}

func TestInflectNoForm(t *testing.T) {
	c := testCipher()
	tests := []struct {
		inf string
		tag string
	}{
		{"parlare", "VER:impr:pre:S1"}, // empty imperative slot
		{"parlare", "VER:impr:pre:S3"}, // empty imperative slot
		{"parlare", "VER:impr:pre:P3"}, // empty imperative slot
		{"parlare", "VER:ind:perf:S1"}, // unsupported tense
		{"parlare", "VER:ger:pre:S1"},  // unsupported mood
		{"parlare", "VER:ind:pre"},     // wrong segment count
		{"parlare", "VER:ind:pre:S9"},  // unknown person
		{"parlare", "NOM:s"},           // not a verb tag
		{"fare", "VER:ind:pre:S1"},     // listed irregular: dictionary only
		{"andare", "VER:ind:pre:S1"},   // listed irregular: dictionary only
		{"casa", "VER:ind:pre:S1"},     // not an infinitive
	}
	for _, tt := range tests {
		if got, ok := c.inflect(tt.inf, tt.tag); ok {
			t.Errorf("inflect(%q, %q) = %q, want no form", tt.inf, tt.tag, got)
		}
	}
}

func TestParseVerbTag(t *testing.T) {
	tests := []struct {
		tag  string
		ok   bool
		slot int
	}{
		{"VER:ind:pre:S1", true, 0},
		{"VER:cond:pre:P3", true, 5},
		{"VER:ind:pre", false, 0},
		{"VER:ind:pre:S1:extra", false, 0},
		{"NOM:p", false, 0},
		{"VER:ind:pre:X1", false, 0},
	}
	for _, tt := range tests {
		vt, ok := parseVerbTag(tt.tag)
		if ok != tt.ok {
			t.Errorf("parseVerbTag(%q) ok = %v, want %v", tt.tag, ok, tt.ok)
			continue
		}
		if ok && vt.Slot != tt.slot {
			t.Errorf("parseVerbTag(%q) slot = %d, want %d", tt.tag, vt.Slot, tt.slot)
		}
	}
}
