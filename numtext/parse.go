// Text-to-number parsing for Mongolian cardinal text.
package numtext

import (
	"fmt"
	"strings"

	"github.com/btseee/mn-translit/internal/mncase"
)

// Parse converts number words of this scale to an integer.
//
// Tokens are matched case-insensitively after whitespace splitting. The two
// tokens of a compound word ("их наяд") are consumed together. Values are
// accumulated left to right:
//
//   - a word ≥ 1000 closes the group: total += (current or 1) × value
//   - "зуун" multiplies the open group: current = (current or 1) × 100
//   - any other word adds to the open group
func (s *Scale) Parse(text string) (int64, error) {
	tokens := strings.Fields(mncase.Fold(text))
	if len(tokens) == 0 {
		return 0, fmt.Errorf("numtext: %w: empty input", ErrInvalidInput)
	}

	// A lone number word is its own value.
	if len(tokens) == 1 {
		if v, ok := s.values[tokens[0]]; ok {
			return v, nil
		}
	}

	var (
		total   int64 // sum of closed magnitude groups
		current int64 // open group below one thousand
	)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if second, ok := s.compounds[tok]; ok && i+1 < len(tokens) && tokens[i+1] == second {
			tok += " " + second
			i++
		}

		val, ok := s.values[tok]
		if !ok {
			return 0, fmt.Errorf("numtext: %w: unknown word %q", ErrInvalidInput, tok)
		}

		switch {
		case val >= thousand:
			mult := current
			if mult == 0 {
				mult = 1
			}
			if mult > (limit-1-total)/val {
				return 0, fmt.Errorf("numtext: %w: out of range", ErrInvalidInput)
			}
			total += mult * val
			current = 0
		case val == hundred:
			if current == 0 {
				current = 1
			}
			current *= hundred
		default:
			current += val
		}

		if total+current >= limit {
			return 0, fmt.Errorf("numtext: %w: out of range", ErrInvalidInput)
		}
	}

	return total + current, nil
}
