package translit

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	maxKeyRunes   = 4 // longest grapheme cluster a table may key on
	maxValueRunes = 5 // longest replacement a table may produce
)

// Glyph is a single substitution rule: From is replaced by To.
// To may be empty, in which case From is deleted.
type Glyph struct {
	From string
	To   string
}

// GlyphMap is an immutable substitution table applied with longest-match
// (maximal munch) semantics. A GlyphMap is safe for concurrent use.
type GlyphMap struct {
	glyphs []Glyph             // match priority: longest key first, table order within a length
	byLen  []map[string]string // byLen[n] holds the keys that are n bytes long
	maxLen int                 // longest key in bytes
}

// NewGlyphMap builds a GlyphMap from glyphs. Keys must be non-empty valid
// UTF-8 of at most four runes and must be unique; values are at most five runes.
func NewGlyphMap(glyphs []Glyph) (*GlyphMap, error) {
	m := &GlyphMap{glyphs: make([]Glyph, 0, len(glyphs))}
	seen := make(map[string]struct{}, len(glyphs))

	for _, g := range glyphs {
		if g.From == "" {
			return nil, fmt.Errorf("translit: empty key")
		}
		if !utf8.ValidString(g.From) || !utf8.ValidString(g.To) {
			return nil, fmt.Errorf("translit: invalid UTF-8 in glyph %q -> %q", g.From, g.To)
		}
		if n := utf8.RuneCountInString(g.From); n > maxKeyRunes {
			return nil, fmt.Errorf("translit: key %q has %d runes, max %d", g.From, n, maxKeyRunes)
		}
		if n := utf8.RuneCountInString(g.To); n > maxValueRunes {
			return nil, fmt.Errorf("translit: value %q has %d runes, max %d", g.To, n, maxValueRunes)
		}
		if _, dup := seen[g.From]; dup {
			return nil, fmt.Errorf("translit: duplicate key %q", g.From)
		}
		seen[g.From] = struct{}{}

		m.glyphs = append(m.glyphs, g)
		m.maxLen = max(m.maxLen, len(g.From))
	}

	// Stable sort keeps table order among keys of equal length.
	slices.SortStableFunc(m.glyphs, func(a, b Glyph) int {
		return utf8.RuneCountInString(b.From) - utf8.RuneCountInString(a.From)
	})

	m.byLen = make([]map[string]string, m.maxLen+1)
	for _, g := range m.glyphs {
		n := len(g.From)
		if m.byLen[n] == nil {
			m.byLen[n] = make(map[string]string)
		}
		m.byLen[n][g.From] = g.To
	}

	return m, nil
}

// MustGlyphMap is like NewGlyphMap but panics on an invalid table.
// It is meant for package-level tables built from literals.
func MustGlyphMap(glyphs []Glyph) *GlyphMap {
	m, err := NewGlyphMap(glyphs)
	if err != nil {
		panic(err)
	}
	return m
}

// Replace applies the table to s in a single left-to-right pass.
// At every position the longest matching key wins; runes that start no key
// are copied unchanged. Replaced output is never re-scanned.
func (m *GlyphMap) Replace(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	for i := 0; i < len(s); {
		if to, n, ok := m.match(s[i:]); ok {
			b.WriteString(to)
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}

	return b.String()
}

// match returns the replacement for the longest key that prefixes rest.
// Keys are complete UTF-8 sequences, so a byte-level prefix hit always ends
// on a rune boundary.
func (m *GlyphMap) match(rest string) (to string, n int, ok bool) {
	for l := min(m.maxLen, len(rest)); l > 0; l-- {
		keys := m.byLen[l]
		if keys == nil {
			continue
		}
		if to, ok := keys[rest[:l]]; ok {
			return to, l, true
		}
	}
	return "", 0, false
}

// Lookup returns the replacement for the exact key from.
func (m *GlyphMap) Lookup(from string) (string, bool) {
	if len(from) == 0 || len(from) > m.maxLen {
		return "", false
	}
	to, ok := m.byLen[len(from)][from]
	return to, ok
}

// Glyphs returns a copy of the table in match-priority order.
func (m *GlyphMap) Glyphs() []Glyph {
	return slices.Clone(m.glyphs)
}

// Len returns the number of entries in the table.
func (m *GlyphMap) Len() int {
	return len(m.glyphs)
}
