// Word tables for Mongolian number-to-text conversion.
package numtext

const (
	hundred  int64 = 100
	thousand int64 = 1_000
	tenK     int64 = 10_000
	hundredK int64 = 100_000
	million  int64 = 1_000_000
	billion  int64 = 1_000_000_000
	trillion int64 = 1_000_000_000_000

	// limit is the first value Convert rejects and Parse refuses to reach.
	limit int64 = 1_000_000_000_000_000
)

// cyrillicEntries is the canonical scale table, smallest value first.
var cyrillicEntries = []Entry{
	{0, "тэг"},
	{1, "нэг"},
	{2, "хоёр"},
	{3, "гурав"},
	{4, "дөрөв"},
	{5, "тав"},
	{6, "зургаа"},
	{7, "долоо"},
	{8, "найм"},
	{9, "ес"},
	{10, "арав"},
	{20, "хорин"},
	{30, "гучин"},
	{40, "дөчин"},
	{50, "тавин"},
	{60, "жаран"},
	{70, "далан"},
	{80, "наян"},
	{90, "ерэн"},
	{hundred, "зуун"},
	{thousand, "мянга"},
	{tenK, "түм"},
	{hundredK, "бум"},
	{million, "сая"},
	{billion, "тэрбум"},
	{trillion, "их наяд"},
}

// brackets lists the magnitudes above the hundreds, largest first.
// bare marks tiers where a multiplier of one is omitted ("түм", not "нэг түм").
var brackets = []struct {
	value int64
	bare  bool
}{
	{trillion, false},
	{billion, false},
	{million, false},
	{hundredK, true},
	{tenK, true},
	{thousand, false},
}

// Cyrillic is the canonical Mongolian Cyrillic scale.
var Cyrillic = mustScale(cyrillicEntries)
