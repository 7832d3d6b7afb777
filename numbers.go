package mntranslit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btseee/mn-translit/numtext"
	"github.com/btseee/mn-translit/tokenizer"
	"github.com/btseee/mn-translit/translit"
)

// latinNumbers is the number vocabulary as it reads after Cyrillic→Latin
// substitution ("tav", "ikh nayad").
var latinNumbers = func() *numtext.Scale {
	s, err := numtext.Cyrillic.Map(translit.CyrillicToLatin)
	if err != nil {
		panic(err)
	}
	return s
}()

// digitsToWords replaces each run of ASCII digits with Cyrillic number words.
func digitsToWords(text string) string {
	if !strings.ContainsAny(text, "0123456789") {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, t := range tokenizer.Tokens(text) {
		if t.Type == tokenizer.Number {
			if w, ok := spellDigits(t.Text); ok {
				b.WriteString(w)
				continue
			}
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// spellDigits converts one digit run. It reports false for runs that
// overflow int64 or reach the numtext limit; those stay as digits.
func spellDigits(digits string) (string, bool) {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return "", false
	}
	w, err := numtext.Convert(n)
	if err != nil {
		return "", false
	}
	return w, true
}

// wordsToDigits replaces each run of Latin number words with its value.
// Everything outside a run is copied byte-for-byte.
func wordsToDigits(text string) string {
	toks := tokenizer.Tokens(text)
	if len(toks) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(toks); {
		next, v, ok := numberRun(toks, i)
		if !ok {
			b.WriteString(toks[i].Text)
			i++
			continue
		}
		b.WriteString(strconv.FormatInt(v, 10))
		i = next
	}
	return b.String()
}

// numberRun finds the longest run of number words starting at toks[i].
// Words in a run are separated by exactly one Space token. The run grows
// while it still parses; a failed probe ends it unless the word opens a
// two-token scale word ("ikh" before "nayad"). Only runs that stand alone
// in their whitespace-delimited chunk count, so "tav5" never becomes "55".
// next is the index just past the run.
func numberRun(toks []tokenizer.Token, i int) (next int, value int64, ok bool) {
	words := make([]string, 0, 4)
	for j := i; j < len(toks); j += 2 {
		t := toks[j]
		if t.Type != tokenizer.Word || !latinNumbers.IsWord(t.Text) {
			break
		}
		words = append(words, t.Text)

		if n, err := latinNumbers.Parse(strings.Join(words, " ")); err == nil {
			if delimited(toks, i, j+1) {
				next, value, ok = j+1, n, true
			}
		} else if _, pending := latinNumbers.Compound(t.Text); !pending {
			break
		}

		if j+1 >= len(toks) || toks[j+1].Type != tokenizer.Space {
			break
		}
	}
	return next, value, ok
}

// delimited reports whether toks[start:end] stands alone in its
// whitespace-delimited chunk: between it and the surrounding Space tokens
// (or the ends of text) there may be punctuation only. "tav," and "(tav)"
// qualify; "tav5", "5tav" and "tav-5" do not.
func delimited(toks []tokenizer.Token, start, end int) bool {
	for i := start - 1; i >= 0 && toks[i].Type != tokenizer.Space; i-- {
		if toks[i].Type != tokenizer.Punctuation {
			return false
		}
	}
	for i := end; i < len(toks) && toks[i].Type != tokenizer.Space; i++ {
		if toks[i].Type != tokenizer.Punctuation {
			return false
		}
	}
	return true
}

// NumberToWordsIn returns the number words for n written in script to.
func NumberToWordsIn(n int64, to Script) (string, error) {
	switch to {
	case Cyrillic:
		return numtext.Cyrillic.Convert(n)
	case Latin:
		return latinNumbers.Convert(n)
	default:
		return "", fmt.Errorf("mntranslit: %w: unknown script %v", ErrInvalidInput, to)
	}
}

// WordsToNumberIn parses number words written in script from.
func WordsToNumberIn(text string, from Script) (int64, error) {
	switch from {
	case Cyrillic:
		return numtext.Cyrillic.Parse(text)
	case Latin:
		return latinNumbers.Parse(text)
	default:
		return 0, fmt.Errorf("mntranslit: %w: unknown script %v", ErrInvalidInput, from)
	}
}
