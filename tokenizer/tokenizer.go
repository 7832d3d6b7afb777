// Package tokenizer splits Mongolian text into typed tokens with byte offsets.
//
// The invariant s[t.Start:t.End] == t.Text holds for every token, and
// concatenating all token texts reconstructs the original string, so callers
// can rewrite selected tokens and keep everything else byte-for-byte.
//
// Words are runs of letters in any script together with their combining
// marks, so a decomposed "o" + U+0308 stays inside its word. Numbers are runs
// of ASCII digits only.
//
// All functions are safe for concurrent use by multiple goroutines.
package tokenizer

import "fmt"

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters (any script) with combining marks, joined by single hyphens
	Number                       // ASCII digits 0-9
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, symbols, non-ASCII digits, invalid bytes
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("тав")[0:6].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokens splits text into all tokens with metadata.
func Tokens(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}
