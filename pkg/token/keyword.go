package token

import (
	"regexp"
	"sort"
	"strings"
)

// Reserved lists the keywords both dialect grammars reserve.
// Reserved words cannot be used as bare identifiers.
var Reserved = []string{
	"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CROSS",
	"DESC", "DISTINCT", "ELSE", "END", "ESCAPE", "EXPLAIN", "FALSE", "FIRST",
	"FROM", "FULL", "GROUP", "HAVING", "IN", "INNER", "IS", "JOIN", "LAST",
	"LEFT", "LIKE", "LIMIT", "NOT", "NULL", "NULLS", "ON", "OR", "ORDER",
	"OUTER", "RIGHT", "SELECT", "THEN", "TRUE", "TRY_CAST", "WHEN", "WHERE",
}

var reserved = func() map[string]bool {
	m := make(map[string]bool, len(Reserved))
	for _, k := range Reserved {
		m[k] = true
	}
	return m
}()

// IsReserved reports whether word is a shared reserved keyword, case-insensitively.
func IsReserved(word string) bool {
	return reserved[strings.ToUpper(word)]
}

// KeywordPattern returns a case-insensitive lexer pattern that matches any of
// Reserved plus extra as a whole word. Longer words come first so that a word
// is never matched by its prefix.
func KeywordPattern(extra ...string) string {
	words := make([]string, 0, len(Reserved)+len(extra))
	words = append(words, Reserved...)
	words = append(words, extra...)
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return `(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`
}
