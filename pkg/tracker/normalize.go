package tracker

import (
	"strings"
	"unicode"
)

// FieldKey converts a raw column header into its camelCase field key:
// "Functional Owner of Deliverable" becomes "functionalOwnerOfDeliverable".
// Punctuation splits words, so "A/B Test!" becomes "aBTest". An empty
// header yields an empty key.
func FieldKey(header string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, header)

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
