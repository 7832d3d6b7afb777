package mncase

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ComposeNFC returns s in Unicode Normalization Form C.
// Decomposed sequences such as "o" + U+0308 become "ö", and Cyrillic
// "и" + U+0306 becomes "й", so they match the single-rune keys of the
// transliteration tables.
func ComposeNFC(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}

// Sanitize replaces ill-formed UTF-8 with U+FFFD and composes the result to NFC.
func Sanitize(s string) string {
	t := transform.Chain(runes.ReplaceIllFormed(), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ComposeNFC(s)
	}
	return out
}
