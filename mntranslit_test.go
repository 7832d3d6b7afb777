package mntranslit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
)

func TestLatinToCyrillic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       string
		transNum bool
		want     string
	}{
		{"empty", "", true, ""},
		{"plain", "Khökh tenger", false, "Хөх тэнгэр"},
		{"digits kept", "5 degrees", false, "5 дэгрээс"},
		{"digits spelled", "5 degrees", true, "тав дэгрээс"},
		{"year", "2024 on", true, "хоёр мянга хорин дөрөв он"},
		{"zero", "0", true, "тэг"},
		{"glued to word", "5km", true, "тавкм"},
		{"several runs", "1, 2, 3", true, "нэг, хоёр, гурав"},
		{"at limit", "1000000000000000", true, "1000000000000000"},
		{"int64 overflow", "99999999999999999999 x", true, "99999999999999999999 x"},
		{"non-ascii digits", "٣ ta", true, "٣ та"},
		{"fullwidth digits", "３ ta", true, "３ та"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := LatinToCyrillic(tt.in, tt.transNum)
			if got != tt.want {
				t.Errorf("LatinToCyrillic(%q, %v) = %q, want %q", tt.in, tt.transNum, got, tt.want)
			}
		})
	}
}

func TestCyrillicToLatin(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       string
		transNum bool
		want     string
	}{
		{"empty", "", true, ""},
		{"plain", "Монгол Улс", false, "Mongol Uls"},
		{"words kept", "тав градус", false, "tav gradus"},
		{"single word", "тав", true, "5"},
		{"title case", "Тав", true, "5"},
		{"words collapsed", "тав градус", true, "5 gradus"},
		{"year", "хоёр мянга хорин дөрөв он", true, "2024 on"},
		{"compound scale", "нэг их наяд.", true, "1000000000000."},
		{"bare compound", "их наяд", true, "1000000000000"},
		{"compound first half alone", "их байшин", true, "ikh bayshin"},
		{"second half alone", "наяд", true, "nayad"},
		{"punctuation splits runs", "тав,  хоёр", true, "5,  2"},
		{"whitespace inside run", "тав  зуун\nмянга", true, "500000"},
		{"surrounding text kept", "Би  арав тав\tнастай", true, "Bi  15\tnastay"},
		{"broken compound", "тав их тав", true, "5 ikh 5"},
		{"hyphenated word", "тав-зуун", true, "tav-zuun"},
		{"glued to trailing digits", "тав5 ном", true, "tav5 nom"},
		{"glued to leading digits", "5тав", true, "5tav"},
		{"run glued to digits", "хоёр2", true, "khoyor2"},
		{"hyphen before digits", "тав-5", true, "tav-5"},
		{"digits before hyphen", "5-тав", true, "5-tav"},
		{"glued to symbol", "тав°", true, "tav°"},
		{"bracketed", "(тав)", true, "(5)"},
		{"multi-word run glued", "тав зуун5", true, "5 zuun5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CyrillicToLatin(tt.in, tt.transNum)
			if got != tt.want {
				t.Errorf("CyrillicToLatin(%q, %v) = %q, want %q", tt.in, tt.transNum, got, tt.want)
			}
		})
	}
}

func TestNumberWordsRoundTrip(t *testing.T) {
	t.Parallel()
	values := []int64{0, 1, 10, 11, 99, 100, 101, 999, 1000, 10000, 12345, 100000,
		1000000, 2024, 999999999, 1000000000000, 999999999999999}

	for _, n := range values {
		words, err := NumberToWords(n)
		if err != nil {
			t.Fatalf("NumberToWords(%d): %v", n, err)
		}
		if got := CyrillicToLatin(words, true); got != strconv.FormatInt(n, 10) {
			t.Errorf("CyrillicToLatin(%q) = %q, want %d", words, got, n)
		}
		if got := LatinToCyrillic(strconv.FormatInt(n, 10), true); got != words {
			t.Errorf("LatinToCyrillic(%d) = %q, want %q", n, got, words)
		}
	}
}

func TestTransliterate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		script   string
		transNum bool
		want     string
	}{
		{"Sain", "cyrillic", false, "Сайн"},
		{"Sain", "C", false, "Сайн"},
		{"Сайн", "latin", false, "Sayn"},
		{"Сайн", " LAT ", false, "Sayn"},
		{"5 degrees", "cyr", true, "тав дэгрээс"},
		{"тав", "l", true, "5"},
		{"", "latn", false, ""},
	}

	for _, tt := range tests {
		got, err := Transliterate(tt.in, tt.script, tt.transNum)
		if err != nil {
			t.Errorf("Transliterate(%q, %q): %v", tt.in, tt.script, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Transliterate(%q, %q) = %q, want %q", tt.in, tt.script, got, tt.want)
		}
	}
}

func TestTransliterateErrors(t *testing.T) {
	t.Parallel()
	for _, script := range []string{"klingon", "", "cyrillicx", "лат"} {
		if _, err := Transliterate("text", script, false); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Transliterate(_, %q): err = %v, want ErrInvalidInput", script, err)
		}
	}
	if _, err := TransliterateTo("text", Script(0), false); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("TransliterateTo(unknown): err = %v, want ErrInvalidInput", err)
	}
}

func TestParseScript(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want Script
	}{
		{"cyrillic", Cyrillic},
		{"CYRILLIC", Cyrillic},
		{"cyr", Cyrillic},
		{"Cyrl", Cyrillic},
		{"c", Cyrillic},
		{"latin", Latin},
		{"Lat", Latin},
		{"latn", Latin},
		{"L", Latin},
	}
	for _, tt := range tests {
		got, err := ParseScript(tt.in)
		if err != nil {
			t.Errorf("ParseScript(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseScript(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNumeralErrors(t *testing.T) {
	t.Parallel()
	if _, err := NumberToWords(-1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NumberToWords(-1): err = %v, want ErrInvalidInput", err)
	}
	for _, in := range []string{"", "   ", "тав градус"} {
		if _, err := WordsToNumber(in); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("WordsToNumber(%q): err = %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()
	const goroutines = 32
	in := strings.Repeat("Би 2024 онд 5 ном уншсан. ", 20)

	var wg sync.WaitGroup
	for range goroutines {
		wg.Go(func() {
			cyr := LatinToCyrillic(in, true)
			lat := CyrillicToLatin(cyr, true)
			if !strings.Contains(lat, "2024") {
				t.Errorf("lost number after round trip: %q", lat[:40])
			}
		})
	}
	wg.Wait()
}

func ExampleLatinToCyrillic() {
	fmt.Println(LatinToCyrillic("Khökh tenger", false))
	fmt.Println(LatinToCyrillic("5 degrees", true))
	// Output:
	// Хөх тэнгэр
	// тав дэгрээс
}

func ExampleCyrillicToLatin() {
	fmt.Println(CyrillicToLatin("хоёр мянга хорин дөрөв он", true))
	// Output:
	// 2024 on
}

func ExampleTransliterate() {
	out, err := Transliterate("Sain baina uu", "c", false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// Сайн байна уу
}

func TestNumbersInScript(t *testing.T) {
	t.Parallel()
	tests := []struct {
		n      int64
		script Script
		words  string
	}{
		{5, Cyrillic, "тав"},
		{5, Latin, "tav"},
		{2024, Latin, "khoyor myanga khorin döröv"},
		{1000000000000, Latin, "ikh nayad"},
		{9, Latin, "yes"},
	}
	for _, tt := range tests {
		got, err := NumberToWordsIn(tt.n, tt.script)
		if err != nil {
			t.Fatalf("NumberToWordsIn(%d, %v): %v", tt.n, tt.script, err)
		}
		if got != tt.words {
			t.Errorf("NumberToWordsIn(%d, %v) = %q, want %q", tt.n, tt.script, got, tt.words)
		}
		back, err := WordsToNumberIn(got, tt.script)
		if err != nil {
			t.Fatalf("WordsToNumberIn(%q, %v): %v", got, tt.script, err)
		}
		if back != tt.n {
			t.Errorf("WordsToNumberIn(%q, %v) = %d, want %d", got, tt.script, back, tt.n)
		}
	}

	if _, err := NumberToWordsIn(1, Script(0)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NumberToWordsIn(unknown): err = %v, want ErrInvalidInput", err)
	}
	if _, err := WordsToNumberIn("tav", Script(0)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("WordsToNumberIn(unknown): err = %v, want ErrInvalidInput", err)
	}
	if _, err := WordsToNumberIn("тав", Latin); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("WordsToNumberIn(cyrillic as latin): err = %v, want ErrInvalidInput", err)
	}
}
