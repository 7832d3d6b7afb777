// Package mncase provides case folding and Unicode composition for Mongolian
// text written in either the Cyrillic or the Latin script.
//
// Casing follows golang.org/x/text/cases with the Mongolian language tag.
// A cases.Caser is stateful, so each call builds its own.
//
// All functions are safe for concurrent use.
package mncase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold returns the Mongolian-aware lowercase form of s.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Lower(language.Mongolian).String(s)
}
