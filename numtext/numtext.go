// Package numtext converts between non-negative integers and Mongolian
// number words.
//
// The package provides conversion in both directions:
//
//   - Convert turns an integer into Cyrillic cardinal text.
//   - Parse turns Mongolian number words back into an integer.
//
// Both are backed by a Scale, the ordered table of number words
// (тэг … арав, хорин … ерэн, зуун, мянга, түм, бум, сая, тэрбум, их наяд).
// Scale.Map derives the same vocabulary in another script, which is how the
// Latin forms ("tav", "ikh nayad") are recognised.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Only values in [0, 10^15) are supported. The largest scale word is
//     их наяд (10^12); larger values would need a multiplier of a thousand
//     or more in front of it, which does not parse back.
//   - Parse accepts any sequence of known words and sums it with the
//     usual multiplier rules; it does not reject non-canonical orderings.
package numtext

import "errors"

// ErrInvalidInput is returned (wrapped) for negative or out-of-range numbers
// and for text that is not a sequence of number words.
var ErrInvalidInput = errors.New("invalid input")

// Convert returns the Mongolian Cyrillic cardinal text for n.
// Zero returns "тэг"; 100 returns the bare "зуун" and 101 "зуун нэг".
// Returns an error wrapping ErrInvalidInput if n is negative or ≥ 10^15.
func Convert(n int64) (string, error) {
	return Cyrillic.Convert(n)
}

// Parse converts Mongolian Cyrillic number words to an integer.
// Input is whitespace-normalized and case-insensitive. A scale word with no
// multiplier in front of it counts once: "зуун" is 100, "мянга" is 1000.
//
// Returns an error wrapping ErrInvalidInput for empty, unknown, or
// out-of-range input.
func Parse(s string) (int64, error) {
	return Cyrillic.Parse(s)
}
