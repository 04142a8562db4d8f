package excel

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumn canonicalizes a raw column label: trim, lower-case,
// collapse whitespace runs, fold ё to е. Every input has a defined output;
// numeric and empty cells arrive as plain strings from the reader.
func NormalizeColumn(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ё", "е")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return s
}
