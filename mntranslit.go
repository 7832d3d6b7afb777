// Package mntranslit transliterates Mongolian text between the Latin and
// Cyrillic alphabets and, optionally, between Arabic numerals and Mongolian
// number words embedded in that text.
//
// Transliteration follows MNS 5217:2012 and is lossy in places: Cyrillic е
// becomes "ye" while Latin "e" becomes э, and the hard and soft signs are
// dropped. See package translit for the tables.
//
// With number conversion enabled, LatinToCyrillic spells out every run of
// ASCII digits before the script pass ("5" → "тав"), and CyrillicToLatin
// collapses every run of number words after it ("tav zuun" → "500"). A run
// that cannot be converted is left as it was; one bad numeral never fails
// the whole call.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Only ASCII digits are spelled out. Other decimal digits (Arabic-Indic
//     "٣", fullwidth "３") pass through unchanged.
//   - A number-word run is collapsed only when it stands alone between
//     whitespace, optionally wrapped in punctuation: "tav," becomes "5,",
//     but "tav5" and "tav-5" are left as they are.
//   - Digit runs of 10^15 and above stay as digits.
package mntranslit

import (
	"fmt"
	"strings"

	"github.com/btseee/mn-translit/detect"
	"github.com/btseee/mn-translit/numtext"
	"github.com/btseee/mn-translit/translit"
)

// ErrInvalidInput is returned (wrapped) for an unknown target script and by
// the numeral functions. It is the same value as numtext.ErrInvalidInput.
var ErrInvalidInput = numtext.ErrInvalidInput

// Script identifies the target alphabet of a conversion.
type Script = detect.Script

const (
	Latin    = detect.ScriptLatin
	Cyrillic = detect.ScriptCyrillic
)

// scriptAliases lists the accepted spellings of each script, lower-cased.
var scriptAliases = map[string]Script{
	"cyrillic": Cyrillic,
	"cyr":      Cyrillic,
	"cyrl":     Cyrillic,
	"c":        Cyrillic,
	"latin":    Latin,
	"lat":      Latin,
	"latn":     Latin,
	"l":        Latin,
}

// ParseScript resolves a script name or alias, ignoring case and
// surrounding whitespace.
func ParseScript(name string) (Script, error) {
	sc, ok := scriptAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return detect.ScriptUnknown, fmt.Errorf("mntranslit: %w: unknown script %q", ErrInvalidInput, name)
	}
	return sc, nil
}

// Transliterate converts text into the script named by toScript
// ("cyrillic", "latin" or an alias such as "c", "lat").
func Transliterate(text, toScript string, transNum bool) (string, error) {
	to, err := ParseScript(toScript)
	if err != nil {
		return "", err
	}
	return TransliterateTo(text, to, transNum)
}

// TransliterateTo is Transliterate with an already resolved script.
func TransliterateTo(text string, to Script, transNum bool) (string, error) {
	switch to {
	case Cyrillic:
		return LatinToCyrillic(text, transNum), nil
	case Latin:
		return CyrillicToLatin(text, transNum), nil
	default:
		return "", fmt.Errorf("mntranslit: %w: unknown script %v", ErrInvalidInput, to)
	}
}

// LatinToCyrillic converts Latin text to Cyrillic. If transNum is set,
// digit runs are replaced with Cyrillic number words first.
func LatinToCyrillic(text string, transNum bool) string {
	if transNum {
		text = digitsToWords(text)
	}
	return translit.LatinToCyrillic(text)
}

// CyrillicToLatin converts Cyrillic text to Latin. If transNum is set,
// runs of number words in the result are replaced with their digits.
func CyrillicToLatin(text string, transNum bool) string {
	out := translit.CyrillicToLatin(text)
	if transNum {
		out = wordsToDigits(out)
	}
	return out
}

// NumberToWords returns the Cyrillic number words for n.
func NumberToWords(n int64) (string, error) {
	return numtext.Convert(n)
}

// WordsToNumber parses Cyrillic number words.
func WordsToNumber(text string) (int64, error) {
	return numtext.Parse(text)
}
