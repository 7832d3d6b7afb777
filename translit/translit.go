// Package translit converts Mongolian text between the Latin and Cyrillic
// alphabets following the conventions of MNS 5217:2012.
//
// Conversion is a single left-to-right pass over a fixed table. At every
// position the longest matching key is consumed, so "kh" becomes "х" rather
// than "к" + "х", and "ai" becomes "ай" rather than "а" + "и".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known lossy conversions:
//   - Cyrillic е becomes "ye", but Latin "e" becomes э.
//   - Soft sign (Ь/ь) and hard sign (Ъ/ъ) are removed (no Latin equivalent).
//   - Latin "h" and "kh" both become х; "w" and "v" both become в.
//
// Characters outside the tables (digits, punctuation, whitespace, letters of
// other alphabets) pass through unchanged.
package translit

import "github.com/btseee/mn-translit/internal/mncase"

// Direction selects the conversion table.
type Direction int

const (
	// ToCyrillic converts Latin input to Cyrillic.
	ToCyrillic Direction = iota

	// ToLatin converts Cyrillic input to Latin.
	ToLatin
)

// String returns the name of the target script.
func (d Direction) String() string {
	switch d {
	case ToCyrillic:
		return "cyrillic"
	case ToLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// Table returns the GlyphMap used for d, or nil for an unknown direction.
func (d Direction) Table() *GlyphMap {
	switch d {
	case ToCyrillic:
		return LatinCyrillic
	case ToLatin:
		return CyrillicLatin
	default:
		return nil
	}
}

// Substitute converts s in direction d. An unknown direction returns s unchanged.
func Substitute(s string, d Direction) string {
	m := d.Table()
	if m == nil {
		return s
	}
	return m.Replace(s)
}

// LatinToCyrillic converts Mongolian Latin text to Cyrillic script.
func LatinToCyrillic(s string) string {
	return LatinCyrillic.Replace(s)
}

// CyrillicToLatin converts Mongolian Cyrillic text to Latin script.
// Soft and hard signs are dropped.
func CyrillicToLatin(s string) string {
	return CyrillicLatin.Replace(s)
}

// Normalize composes s to Unicode NFC so decomposed letters such as
// "o" + U+0308 match the table entry for "ö". Conversion functions do not
// normalize on their own.
func Normalize(s string) string {
	return mncase.ComposeNFC(s)
}
