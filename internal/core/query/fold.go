package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lowercases s with Turkish casing rules, so "İstanbul" and "istanbul"
// compare equal. Plain strings.ToLower gets the dotted/dotless i pairs wrong.
func Fold(s string) string {
	return cases.Lower(language.Turkish).String(s)
}

// ContainsFold is the case-insensitive substring test used by every search
// filter. An empty or whitespace-only needle matches everything.
func ContainsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
