package kiaro

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadLexicon reads a kiaro data directory and returns the Lexicon it
// describes. Files are pipe-delimited text, one record per line; lines
// starting with "!" are comments.
//
//	words.kia    plain|cipher    (decrypt map is the mirror)
//	forms.kia    form|lemma|tag  (file order = candidate order)
//	clitics.kia  one clitic per line (optional; built-in set if absent)
//
// Errors are I/O errors only; malformed lines are skipped.
func LoadLexicon(dataDir string) (Lexicon, error) {
	lex := Lexicon{
		EncryptMap:      make(map[string]string),
		DecryptMap:      make(map[string]string),
		FormToLemmaTags: make(map[string][]MorphAnalysis),
		LemmaTagToForm:  make(map[string]map[string]string),
	}

	if err := loadWords(filepath.Join(dataDir, "words.kia"), &lex); err != nil {
		return Lexicon{}, err
	}
	if err := loadForms(filepath.Join(dataDir, "forms.kia"), &lex); err != nil {
		return Lexicon{}, err
	}
	if err := loadClitics(filepath.Join(dataDir, "clitics.kia"), &lex); err != nil {
		return Lexicon{}, err
	}
	return lex, nil
}

// eachLine scans path line by line, skipping blanks and "!" comments.
func eachLine(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		fn(line)
	}
	return sc.Err()
}

// loadWords reads plain|cipher pairs into the encrypt map and mirrors
// them into the decrypt map.
func loadWords(path string, lex *Lexicon) error {
	err := eachLine(path, func(line string) {
		parts := strings.Split(line, "|")
		if len(parts) != 2 {
			return
		}
		plain, cipher := parts[0], parts[1]
		if plain == "" || cipher == "" {
			return
		}
		if _, seen := lex.EncryptMap[plain]; !seen {
			lex.EncryptMap[plain] = cipher
		}
		if _, seen := lex.DecryptMap[cipher]; !seen {
			lex.DecryptMap[cipher] = plain
		}
	})
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	return nil
}

// loadForms reads form|lemma|tag records. File order becomes candidate
// order in FormToLemmaTags; the first form seen for a lemma+tag wins in
// LemmaTagToForm.
func loadForms(path string, lex *Lexicon) error {
	err := eachLine(path, func(line string) {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			return
		}
		form, lemma, tag := parts[0], parts[1], parts[2]
		if form == "" || lemma == "" || tag == "" {
			return
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
	})
	if err != nil {
		return fmt.Errorf("load forms: %w", err)
	}
	return nil
}

// loadClitics reads one clitic per line. A missing file is not an error:
// the built-in set applies.
func loadClitics(path string, lex *Lexicon) error {
	err := eachLine(path, func(line string) {
		lex.Clitics = append(lex.Clitics, line)
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("load clitics: %w", err)
	}
	return nil
}
