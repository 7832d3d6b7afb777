package numtext

import (
	"errors"
	"testing"
)

// FuzzConvert verifies that Convert never panics and only fails with
// ErrInvalidInput outside [0, 10^15).
func FuzzConvert(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(-1))
	f.Add(int64(100))
	f.Add(int64(1000))
	f.Add(int64(1_000_000))
	f.Add(int64(1_000_000_000_000))
	f.Add(int64(999_999_999_999_999))
	f.Add(int64(1_000_000_000_000_000))
	f.Add(int64(9223372036854775807))  // math.MaxInt64
	f.Add(int64(-9223372036854775808)) // math.MinInt64

	f.Fuzz(func(t *testing.T, n int64) {
		_, err := Convert(n)
		inRange := n >= 0 && n < limit
		if inRange && err != nil {
			t.Errorf("Convert(%d) error: %v", n, err)
		}
		if !inRange && !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Convert(%d) error = %v, want ErrInvalidInput", n, err)
		}
	})
}

// FuzzParse verifies that Parse never panics for any string input.
func FuzzParse(f *testing.F) {
	f.Add("")
	f.Add("тэг")
	f.Add("зуун")
	f.Add("зуун хорин гурав")
	f.Add("хоёр их наяд")
	f.Add("их")
	f.Add("hello world")
	f.Add("\xff\xfe")
	f.Add(string([]byte{0x00}))

	f.Fuzz(func(t *testing.T, s string) {
		n, err := Parse(s)
		if err == nil && (n < 0 || n >= limit) {
			t.Errorf("Parse(%q) = %d, outside [0, 10^15)", s, n)
		}
	})
}

// FuzzRoundTrip verifies that Parse(Convert(n)) == n for all valid n.
func FuzzRoundTrip(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(1))
	f.Add(int64(42))
	f.Add(int64(123))
	f.Add(int64(1000))
	f.Add(int64(110_000))
	f.Add(int64(2_300_095))
	f.Add(int64(999_999_999_999))
	f.Add(int64(999_999_999_999_999))

	f.Fuzz(func(t *testing.T, n int64) {
		text, err := Convert(n)
		if err != nil {
			return // out of range, skip
		}
		got, err := Parse(text)
		if err != nil {
			t.Errorf("Parse(Convert(%d)) = %q, error: %v", n, text, err)
		}
		if got != n {
			t.Errorf("Parse(Convert(%d)) = %d, want %d (text: %q)", n, got, n, text)
		}
	})
}
