package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case r == utf8.RuneError && size == 1:
			// Invalid byte: keep it as its own Symbol so offsets stay exact.
			tokens = append(tokens, Token{Text: s[i : i+1], Start: i, End: i + 1, Type: Symbol})
			i++

		case unicode.IsSpace(r):
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})

		case isDigitByte(s[i]):
			start := i
			for i < len(s) && isDigitByte(s[i]) {
				i++
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Number})

		case unicode.IsLetter(r):
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End

		case unicode.IsPunct(r):
			// Merge consecutive hyphens so "--" stays one token.
			start := i
			i += size
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})

		default:
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
			i += size
		}
	}

	return tokens
}

// scanWord reads a word token starting at position pos.
// A word is a run of letters and combining marks; a single hyphen (U+002D)
// between two letters joins both halves into one word ("Дархан-Уул").
func scanWord(s string, pos int) Token {
	i := consumeLetters(s, pos)

	for i < len(s) && s[i] == '-' {
		next := i + 1
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])
		if !unicode.IsLetter(nr) {
			break
		}
		i = consumeLetters(s, next)
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeLetters consumes a contiguous run of letters and combining marks.
func consumeLetters(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.Is(unicode.M, r) {
			break
		}
		pos += size
	}
	return pos
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
