package kiaro

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func createLexiconDB(t *testing.T, withClitics bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE words (plain TEXT, cipher TEXT)`,
		`CREATE TABLE forms (form TEXT, lemma TEXT, tag TEXT)`,
		`INSERT INTO words VALUES ('casa', 'pane')`,
		`INSERT INTO words VALUES ('amico', 'orso')`,
		`INSERT INTO forms VALUES ('parlo', 'parlare', 'VER:ind:pre:S1')`,
		`INSERT INTO forms VALUES ('amo', 'amare', 'VER:ind:pre:S1')`,
		`INSERT INTO forms VALUES ('amici', 'amico', 'NOM:p')`,
	}
	if withClitics {
		stmts = append(stmts,
			`CREATE TABLE clitics (clitic TEXT)`,
			`INSERT INTO clitics VALUES ('mi')`,
			`INSERT INTO clitics VALUES ('ci')`,
		)
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	return path
}

func TestLoadLexiconDB(t *testing.T) {
	path := createLexiconDB(t, true)

	lex, err := LoadLexiconDB(path)
	if err != nil {
		t.Fatalf("LoadLexiconDB(%q): %v", path, err)
	}

	if got := lex.EncryptMap["casa"]; got != "pane" {
		t.Errorf("EncryptMap[casa] = %q, want %q", got, "pane")
	}
	if got := lex.DecryptMap["orso"]; got != "amico" {
		t.Errorf("DecryptMap[orso] = %q, want %q", got, "amico")
	}
	if got := len(lex.FormToLemmaTags["parlo"]); got != 1 {
		t.Errorf("FormToLemmaTags[parlo] has %d analyses, want 1", got)
	}
	if got := lex.LemmaTagToForm["amare"]["VER:ind:pre:S1"]; got != "amo" {
		t.Errorf("LemmaTagToForm[amare] = %q, want %q", got, "amo")
	}
	if len(lex.Clitics) != 2 {
		t.Errorf("Clitics = %v, want 2 entries", lex.Clitics)
	}

	c := New(lex)
	if got := c.Decrypt(c.Encrypt("parlo")); got != "parlo" {
		t.Errorf("round trip of parlo = %q", got)
	}
}

func TestLoadLexiconDBNoCliticsTable(t *testing.T) {
	path := createLexiconDB(t, false)

	lex, err := LoadLexiconDB(path)
	if err != nil {
		t.Fatalf("LoadLexiconDB without clitics table: %v", err)
	}
	if len(lex.Clitics) != 0 {
		t.Errorf("Clitics = %v, want empty", lex.Clitics)
	}
}

func TestLoadLexiconDBMissingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if _, err := db.Exec(`CREATE TABLE unrelated (x TEXT)`); err != nil {
		t.Fatalf("exec: %v", err)
	}
	db.Close()

	if _, err := LoadLexiconDB(path); err == nil {
		t.Error("LoadLexiconDB on a database without schema succeeded, want error")
	}
}
