package numtext

import (
	"fmt"
	"slices"
	"strings"

	"github.com/btseee/mn-translit/internal/mncase"
)

const growConvert = 96 // estimated bytes for a full cardinal conversion

// Entry pairs a numeric value with its number word.
// A word may consist of two space-separated tokens ("их наяд").
type Entry struct {
	Value int64
	Word  string
}

// Scale is an immutable number-word vocabulary. It holds the forward
// value → word table used by Convert and its inverse used by Parse.
// A Scale is safe for concurrent use.
type Scale struct {
	entries   []Entry
	words     map[int64]string
	values    map[string]int64  // folded word → value
	compounds map[string]string // folded first token → folded second token
}

// NewScale builds a Scale from entries. The entries must cover exactly the
// values of the canonical table (0–10, the tens, 100, 1000, 10^4, 10^5,
// 10^6, 10^9, 10^12), and no two entries may share a word.
func NewScale(entries []Entry) (*Scale, error) {
	s := &Scale{
		entries:   slices.Clone(entries),
		words:     make(map[int64]string, len(entries)),
		values:    make(map[string]int64, len(entries)),
		compounds: make(map[string]string),
	}

	for _, e := range entries {
		if _, dup := s.words[e.Value]; dup {
			return nil, fmt.Errorf("numtext: %w: duplicate value %d", ErrInvalidInput, e.Value)
		}
		tokens := strings.Fields(mncase.Fold(e.Word))
		switch len(tokens) {
		case 1:
		case 2:
			s.compounds[tokens[0]] = tokens[1]
		default:
			return nil, fmt.Errorf("numtext: %w: word %q must be one or two tokens", ErrInvalidInput, e.Word)
		}
		key := strings.Join(tokens, " ")
		if _, dup := s.values[key]; dup {
			return nil, fmt.Errorf("numtext: %w: duplicate word %q", ErrInvalidInput, e.Word)
		}
		s.words[e.Value] = strings.Join(strings.Fields(e.Word), " ")
		s.values[key] = e.Value
	}

	for _, e := range cyrillicEntries {
		if _, ok := s.words[e.Value]; !ok {
			return nil, fmt.Errorf("numtext: %w: missing word for %d", ErrInvalidInput, e.Value)
		}
	}
	if len(s.words) != len(cyrillicEntries) {
		return nil, fmt.Errorf("numtext: %w: unexpected values in scale", ErrInvalidInput)
	}

	return s, nil
}

func mustScale(entries []Entry) *Scale {
	s, err := NewScale(entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Map returns a new Scale with every word passed through f.
// The facade uses it to derive the Latin vocabulary from the Cyrillic one.
func (s *Scale) Map(f func(string) string) (*Scale, error) {
	entries := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		entries[i] = Entry{Value: e.Value, Word: f(e.Word)}
	}
	return NewScale(entries)
}

// Entries returns a copy of the table in its original order.
func (s *Scale) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Word returns the number word for an exact table value.
func (s *Scale) Word(v int64) (string, bool) {
	w, ok := s.words[v]
	return w, ok
}

// Lookup returns the value of a single number word. Matching is
// case-insensitive; a two-token word must be passed with one space.
func (s *Scale) Lookup(word string) (int64, bool) {
	v, ok := s.values[strings.Join(strings.Fields(mncase.Fold(word)), " ")]
	return v, ok
}

// Compound reports whether token is the first half of a two-token word
// and, if so, returns the folded second half.
func (s *Scale) Compound(token string) (string, bool) {
	second, ok := s.compounds[mncase.Fold(token)]
	return second, ok
}

// IsWord reports whether token is a number word or one half of a
// two-token number word.
func (s *Scale) IsWord(token string) bool {
	tok := mncase.Fold(token)
	if _, ok := s.values[tok]; ok {
		return true
	}
	for first, second := range s.compounds {
		if tok == first || tok == second {
			return true
		}
	}
	return false
}
