package kiaro

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadLexiconDB reads the Lexicon from a SQLite database. Expected
// schema:
//
//	words(plain TEXT, cipher TEXT)
//	forms(form TEXT, lemma TEXT, tag TEXT)   -- rowid order = candidate order
//	clitics(clitic TEXT)                     -- optional table
//
// The decrypt map mirrors the words table, like LoadLexicon.
func LoadLexiconDB(path string) (Lexicon, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("open lexicon db: %w", err)
	}
	defer db.Close()

	lex := Lexicon{
		EncryptMap:      make(map[string]string),
		DecryptMap:      make(map[string]string),
		FormToLemmaTags: make(map[string][]MorphAnalysis),
		LemmaTagToForm:  make(map[string]map[string]string),
	}

	rows, err := db.Query(`SELECT plain, cipher FROM words ORDER BY rowid`)
	if err != nil {
		return Lexicon{}, fmt.Errorf("query words: %w", err)
	}
	for rows.Next() {
		var plain, cipher string
		if err := rows.Scan(&plain, &cipher); err != nil {
			rows.Close()
			return Lexicon{}, fmt.Errorf("scan words: %w", err)
		}
		if plain == "" || cipher == "" {
			continue
		}
		if _, seen := lex.EncryptMap[plain]; !seen {
			lex.EncryptMap[plain] = cipher
		}
		if _, seen := lex.DecryptMap[cipher]; !seen {
			lex.DecryptMap[cipher] = plain
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Lexicon{}, fmt.Errorf("read words: %w", err)
	}
	rows.Close()

	rows, err = db.Query(`SELECT form, lemma, tag FROM forms ORDER BY rowid`)
	if err != nil {
		return Lexicon{}, fmt.Errorf("query forms: %w", err)
	}
	for rows.Next() {
		var form, lemma, tag string
		if err := rows.Scan(&form, &lemma, &tag); err != nil {
			rows.Close()
			return Lexicon{}, fmt.Errorf("scan forms: %w", err)
		}
		if form == "" || lemma == "" || tag == "" {
			continue
		}
		lex.FormToLemmaTags[form] = append(lex.FormToLemmaTags[form], MorphAnalysis{Lemma: lemma, Tag: tag})
		byTag := lex.LemmaTagToForm[lemma]
		if byTag == nil {
			byTag = make(map[string]string)
			lex.LemmaTagToForm[lemma] = byTag
		}
		if _, seen := byTag[tag]; !seen {
			byTag[tag] = form
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Lexicon{}, fmt.Errorf("read forms: %w", err)
	}
	rows.Close()

	var n int
	if err := db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'clitics'`,
	).Scan(&n); err != nil {
		return Lexicon{}, fmt.Errorf("probe clitics table: %w", err)
	}
	if n > 0 {
		rows, err = db.Query(`SELECT clitic FROM clitics ORDER BY rowid`)
		if err != nil {
			return Lexicon{}, fmt.Errorf("query clitics: %w", err)
		}
		for rows.Next() {
			var clitic string
			if err := rows.Scan(&clitic); err != nil {
				rows.Close()
				return Lexicon{}, fmt.Errorf("scan clitics: %w", err)
			}
			if clitic != "" {
				lex.Clitics = append(lex.Clitics, clitic)
			}
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return Lexicon{}, fmt.Errorf("read clitics: %w", err)
		}
		rows.Close()
	}

	return lex, nil
}
