// Number-to-text conversion for Mongolian cardinal numbers.
package numtext

import (
	"fmt"
	"strings"
)

// Convert returns the cardinal text for n using this scale's words.
// Returns an error wrapping ErrInvalidInput if n is negative or ≥ 10^15.
func (s *Scale) Convert(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("numtext: %w: negative number %d", ErrInvalidInput, n)
	}
	if n >= limit {
		return "", fmt.Errorf("numtext: %w: %d is out of range", ErrInvalidInput, n)
	}

	var b strings.Builder
	b.Grow(growConvert)
	s.writeNumber(&b, n)
	return b.String(), nil
}

// writeNumber writes n in [0, limit) into b, largest magnitude first.
func (s *Scale) writeNumber(b *strings.Builder, n int64) {
	// Exact table hits: 0–10, round tens, and every scale word.
	if w, ok := s.words[n]; ok {
		b.WriteString(w)
		return
	}

	switch {
	case n < 20:
		b.WriteString(s.words[10])
		b.WriteByte(' ')
		b.WriteString(s.words[n%10])

	case n < hundred:
		b.WriteString(s.words[n/10*10])
		if o := n % 10; o != 0 {
			b.WriteByte(' ')
			b.WriteString(s.words[o])
		}

	case n < thousand:
		// "зуун", not "нэг зуун"
		h, r := n/hundred, n%hundred
		if h > 1 {
			b.WriteString(s.words[h])
			b.WriteByte(' ')
		}
		b.WriteString(s.words[hundred])
		if r > 0 {
			b.WriteByte(' ')
			s.writeNumber(b, r)
		}

	default:
		for _, br := range brackets {
			if n < br.value {
				continue
			}
			q, r := n/br.value, n%br.value
			if q == 1 && br.bare {
				b.WriteString(s.words[br.value])
			} else {
				s.writeNumber(b, q)
				b.WriteByte(' ')
				b.WriteString(s.words[br.value])
			}
			if r > 0 {
				b.WriteByte(' ')
				s.writeNumber(b, r)
			}
			return
		}
	}
}
