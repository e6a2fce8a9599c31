package reform

import (
	"math"
	"testing"
)

// Formatting a value and parsing the result back must recover the value
// exactly for integer types and within the rendered precision for floats.

func TestRoundtripIntegers(t *testing.T) {
	tests := []struct {
		name     string
		template string
		value    Value
	}{
		{"plain decimal", "{n:d}", Int(42)},
		{"negative", "{n:d}", Int(-17)},
		{"forced sign", "{n:+d}", Int(5)},
		{"zero padded", "{n:08d}", Int(123)},
		{"comma grouping", "{n:,d}", Int(1234567)},
		{"underscore grouping", "{n:_d}", Int(1000000)},
		{"grouped and padded", "{n:012,d}", Int(98765)},
		{"binary", "{n:b}", Int(10)},
		{"binary with prefix", "{n:#b}", Int(10)},
		{"octal with prefix", "{n:#o}", Int(493)},
		{"hex", "{n:x}", Int(255)},
		{"hex with prefix", "{n:#x}", Int(255)},
		{"uppercase hex with prefix", "{n:#X}", Int(57005)},
		{"grouped hex", "{n:_x}", Int(0xABCDE)},
		{"min int", "{n:d}", Int(math.MinInt64)},
		{"max int", "{n:d}", Int(math.MaxInt64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormatter(t, tt.template)
			p := mustParser(t, tt.template)

			text, err := f.FormatMap(map[string]Value{"n": tt.value})
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			result, err := p.Match(text)
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if result == nil {
				t.Fatalf("parse %q: no match", text)
			}

			got, _ := result.Get("n")
			gotInt, _ := got.AsInt()
			wantInt, _ := tt.value.AsInt()
			if gotInt != wantInt {
				t.Errorf("roundtrip of %v through %q = %v", tt.value, text, got)
			}
		})
	}
}

func TestRoundtripFloats(t *testing.T) {
	tests := []struct {
		name     string
		template string
		value    float64
		epsilon  float64
	}{
		{"fixed two places", "{v:.2f}", 3.14159, 0.01},
		{"fixed negative", "{v:.2f}", -2.71828, 0.01},
		{"fixed four places", "{v:.4f}", 0.123456, 0.0001},
		{"exponent", "{v:.3e}", 1234.5, 1.0},
		{"percentage", "{v:.1%}", 0.875, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFormatter(t, tt.template)
			p := mustParser(t, tt.template)

			text, err := f.FormatMap(map[string]Value{"v": Float(tt.value)})
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			result, err := p.Match(text)
			if err != nil {
				t.Fatalf("parse %q: %v", text, err)
			}
			if result == nil {
				t.Fatalf("parse %q: no match", text)
			}

			got, _ := result.Get("v")
			gotFloat, _ := got.AsFloat()
			if math.Abs(gotFloat-tt.value) > tt.epsilon {
				t.Errorf("roundtrip of %v through %q = %v", tt.value, text, gotFloat)
			}
		})
	}
}

func TestRoundtripMixedTemplate(t *testing.T) {
	template := "{name} scored {score:05d} ({rate:.1%})"
	f := mustFormatter(t, template)
	p := mustParser(t, template)

	values := map[string]Value{
		"name":  String("ada"),
		"score": Int(42),
		"rate":  Float(0.875),
	}
	text, err := f.FormatMap(values)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if text != "ada scored 00042 (87.5%)" {
		t.Fatalf("formatted = %q", text)
	}

	result, err := p.Match(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if result == nil {
		t.Fatal("no match")
	}
	if v, _ := result.Get("name"); v != String("ada") {
		t.Errorf("name = %v", v)
	}
	if v, _ := result.Get("score"); v != Int(42) {
		t.Errorf("score = %v", v)
	}
	if v, _ := result.Get("rate"); v != Float(0.875) {
		t.Errorf("rate = %v", v)
	}
}

// Parsing then re-formatting with the same template must reproduce the
// input whenever the input is already in the template's canonical shape.
func TestRoundtripParseThenFormat(t *testing.T) {
	tests := []struct {
		template string
		input    string
	}{
		{"{n:d}", "42"},
		{"{n:05d}", "00042"},
		{"{n:,d}", "1,234,567"},
		{"{n:#x}", "0xff"},
		{"{v:.2f}", "3.14"},
		{"{rate:.1%}", "87.5%"},
		{"{a:d}-{b:d}", "1-2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := mustFormatter(t, tt.template)
			p := mustParser(t, tt.template)

			result, err := p.Match(tt.input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if result == nil {
				t.Fatal("no match")
			}
			text, err := f.FormatMap(result.Values())
			if err != nil {
				t.Fatalf("format: %v", err)
			}
			if text != tt.input {
				t.Errorf("parse+format of %q = %q", tt.input, text)
			}
		})
	}
}
