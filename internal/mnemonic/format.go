package mnemonic

import (
	"strings"
	"unicode"
)

// Format normalizes raw seed phrase input: lowercases, collapses every run of
// non-letter characters into a single space, and trims. It never fails on
// arbitrary input; validation is a separate step.
func Format(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
