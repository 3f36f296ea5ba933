package kiaro

import (
	"strings"
	"unicode"
)

// isAllUpper reports whether s is entirely uppercase and actually has a
// case distinction (at least one cased rune).
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// upperFirst uppercases the first rune of s.
func upperFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// adjustCase reapplies the casing of the source token to the lowercase
// result: all-upper source gives an all-upper result, a leading capital
// capitalizes only the first rune, anything else passes through.
func adjustCase(source, result string) string {
	if source == "" || result == "" {
		return result
	}
	if isAllUpper(source) {
		return strings.ToUpper(result)
	}
	for _, r := range source {
		if unicode.IsUpper(r) {
			return upperFirst(result)
		}
		break
	}
	return result
}
