package detect

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestDetect(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		in            string
		wantScript    Script
		wantConf      float64
		wantMongolian bool
	}{
		{
			name:       "cyrillic greeting",
			in:         "Сайн байна уу?",
			wantScript: ScriptCyrillic,
			wantConf:   1,
		},
		{
			name:          "cyrillic with mongolian letters",
			in:            "Өнөөдөр цаг агаар сайхан байна.",
			wantScript:    ScriptCyrillic,
			wantConf:      1,
			wantMongolian: true,
		},
		{
			name:       "latin greeting",
			in:         "Sain baina uu?",
			wantScript: ScriptLatin,
			wantConf:   1,
		},
		{
			name:          "latin with mongolian letters",
			in:            "Öndör üg",
			wantScript:    ScriptLatin,
			wantConf:      1,
			wantMongolian: true,
		},
		{
			name:       "mixed latin dominant",
			in:         "Сайн bainuu",
			wantScript: ScriptLatin,
			wantConf:   6.0 / 10.0,
		},
		{
			name:       "mixed cyrillic dominant",
			in:         "Улаанбаатар city",
			wantScript: ScriptCyrillic,
			wantConf:   11.0 / 15.0,
		},
		{
			name:       "digits ignored",
			in:         "2024 онд",
			wantScript: ScriptCyrillic,
			wantConf:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detect(tt.in)
			if got.Script != tt.wantScript {
				t.Errorf("Script: got %v, want %v", got.Script, tt.wantScript)
			}
			if math.Abs(got.Confidence-tt.wantConf) > 1e-9 {
				t.Errorf("Confidence: got %f, want %f", got.Confidence, tt.wantConf)
			}
			if got.Mongolian != tt.wantMongolian {
				t.Errorf("Mongolian: got %v, want %v", got.Mongolian, tt.wantMongolian)
			}
		})
	}
}

func TestDetectEdgeCases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"whitespace", "   \t\n"},
		{"digits_only", "1234567890"},
		{"punctuation_only", "!!!...???"},
		{"few_letters", "ab"},
		{"tie", "abc где"},
		{"greek", "αβγδε"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Detect(tt.in)
			if got != (Result{}) {
				t.Errorf("got %+v, want zero Result", got)
			}
		})
	}
}

func TestScriptOpposite(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in, want Script
	}{
		{ScriptLatin, ScriptCyrillic},
		{ScriptCyrillic, ScriptLatin},
		{ScriptUnknown, ScriptUnknown},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScriptJSON(t *testing.T) {
	t.Parallel()
	scripts := []Script{ScriptUnknown, ScriptLatin, ScriptCyrillic}

	for _, sc := range scripts {
		name := sc.String()
		if name == "" {
			name = "ScriptUnknown"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(sc)
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}

			var decoded Script
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("UnmarshalJSON: %v", err)
			}

			if decoded != sc {
				t.Errorf("round-trip: got %v, want %v", decoded, sc)
			}
		})
	}

	t.Run("result", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(Result{Script: ScriptCyrillic, Confidence: 1, Mongolian: true})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		want := `{"script":"Cyrl","confidence":1,"mongolian":true}`
		if string(data) != want {
			t.Errorf("got %s, want %s", data, want)
		}
	})

	t.Run("unmarshal unknown string", func(t *testing.T) {
		t.Parallel()
		var s Script
		if err := s.UnmarshalJSON([]byte(`"Mong"`)); err == nil {
			t.Error("want error for unknown script, got nil")
		}
	})

	t.Run("unmarshal non-string", func(t *testing.T) {
		t.Parallel()
		var s Script
		if err := s.UnmarshalJSON([]byte(`42`)); err == nil {
			t.Error("want error for non-string JSON, got nil")
		}
	})
}

func TestScriptString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		script Script
		want   string
	}{
		{ScriptUnknown, ""},
		{ScriptLatin, "Latn"},
		{ScriptCyrillic, "Cyrl"},
		{Script(99), "Script(99)"},
	}

	for _, tt := range tests {
		name := tt.want
		if name == "" {
			name = "ScriptUnknown"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := tt.script.String()
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOversizedInputTruncated(t *testing.T) {
	t.Parallel()
	sentence := "Монгол улсын нийслэл Улаанбаатар хот. "
	// Repeat until we exceed 1 MiB.
	repeat := (maxInputBytes / len(sentence)) + 2
	input := strings.Repeat(sentence, repeat)

	if len(input) <= maxInputBytes {
		t.Fatalf("test setup: input length %d must exceed maxInputBytes %d", len(input), maxInputBytes)
	}

	got := Detect(input)
	if got.Script != ScriptCyrillic {
		t.Errorf("got %v, want Cyrl", got.Script)
	}
}

func BenchmarkDetect(b *testing.B) {
	input := strings.Repeat("Өнөөдөр цаг агаар сайхан байна. ", 100)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		Detect(input)
	}
}

func BenchmarkDetectShort(b *testing.B) {
	input := "Sain baina uu?"
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for b.Loop() {
		Detect(input)
	}
}

func ExampleDetect() {
	r := Detect("Өнөөдөр сайхан өдөр байна.")
	fmt.Println(r.Script, r.Confidence, r.Mongolian)
	// Output:
	// Cyrl 1 true
}
