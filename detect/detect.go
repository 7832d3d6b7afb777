// Package detect identifies which script Mongolian input text is written in.
//
// Detection counts Cyrillic and Latin letters and reports the dominant
// script together with its share of all letters. Mongolian-specific letters
// (ө ү in Cyrillic, ö ü in Latin) set the Mongolian hint on the result.
//
// Input longer than 1 MiB is silently truncated (rune-safe). Input with fewer
// than 3 Cyrillic or Latin letters returns the zero Result (ScriptUnknown).
//
// All functions are safe for concurrent use by multiple goroutines.
package detect

import (
	"encoding/json"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Script identifies a writing system.
type Script int

const (
	ScriptUnknown  Script = iota // zero value, no detection performed
	ScriptLatin                  // ISO 15924: Latn
	ScriptCyrillic               // ISO 15924: Cyrl
)

// scriptNames maps Script values to their ISO 15924 string codes.
var scriptNames = [...]string{
	ScriptUnknown:  "",
	ScriptLatin:    "Latn",
	ScriptCyrillic: "Cyrl",
}

// scriptFromName maps ISO 15924 string codes back to Script values.
var scriptFromName = map[string]Script{
	"":     ScriptUnknown,
	"Latn": ScriptLatin,
	"Cyrl": ScriptCyrillic,
}

// String returns the ISO 15924 code of the script, or "" for ScriptUnknown.
func (s Script) String() string {
	if int(s) >= 0 && int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return fmt.Sprintf("Script(%d)", int(s))
}

// MarshalJSON encodes the script as a JSON string (e.g. "Latn").
func (s Script) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Latn") into a Script.
func (s *Script) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	sc, ok := scriptFromName[str]
	if !ok {
		return fmt.Errorf("detect: unknown script: %q", str)
	}
	*s = sc
	return nil
}

// Opposite returns the script a text in s would be transliterated into.
// ScriptUnknown has no opposite.
func (s Script) Opposite() Script {
	switch s {
	case ScriptLatin:
		return ScriptCyrillic
	case ScriptCyrillic:
		return ScriptLatin
	default:
		return ScriptUnknown
	}
}

// Result holds the outcome of a script detection.
//
// Confidence is the dominant script's share of all Cyrillic and Latin
// letters, in [0.5, 1.0] for a detected script.
type Result struct {
	Script     Script  `json:"script"`
	Confidence float64 `json:"confidence"`
	Mongolian  bool    `json:"mongolian"`
}

const (
	maxInputBytes = 1 << 20 // 1 MiB; longer inputs are truncated
	minLetters    = 3       // minimum letter count for meaningful detection
)

// Detect identifies the dominant script of s.
// Returns the zero Result when detection is not possible (empty input, too
// few letters, or an exact tie between the scripts).
func Detect(s string) Result {
	if s == "" {
		return Result{}
	}

	// Truncate to maxInputBytes rune-safely.
	if len(s) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(s[pos]) {
			pos--
		}
		s = s[:pos]
	}

	var (
		cyrillic  int
		latin     int
		mongolian bool
	)

	for _, r := range s {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			if !unicode.IsLetter(r) {
				continue
			}
			cyrillic++
			switch r {
			case 'ө', 'Ө', 'ү', 'Ү':
				mongolian = true
			}
		case unicode.Is(unicode.Latin, r):
			latin++
			switch r {
			case 'ö', 'Ö', 'ü', 'Ü':
				mongolian = true
			}
		}
	}

	total := cyrillic + latin
	if total < minLetters || cyrillic == latin {
		return Result{}
	}

	res := Result{Mongolian: mongolian}
	if cyrillic > latin {
		res.Script = ScriptCyrillic
		res.Confidence = float64(cyrillic) / float64(total)
	} else {
		res.Script = ScriptLatin
		res.Confidence = float64(latin) / float64(total)
	}
	return res
}
