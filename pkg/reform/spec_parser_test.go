package reform

import "testing"

func TestParseSpecEmpty(t *testing.T) {
	spec, err := ParseSpec("")
	if err != nil {
		t.Fatalf("ParseSpec(\"\") error: %v", err)
	}
	if spec != DefaultSpec() {
		t.Errorf("ParseSpec(\"\") = %+v, want default", spec)
	}
}

func TestParseSpecAlignment(t *testing.T) {
	tests := []struct {
		input string
		want  Alignment
	}{
		{"<", AlignLeft},
		{">", AlignRight},
		{"^", AlignCenter},
		{"=", AlignAfterSign},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Align != tt.want {
				t.Errorf("align = %v, want %v", spec.Align, tt.want)
			}
			if spec.Fill != 0 {
				t.Errorf("fill = %q, want unset", spec.Fill)
			}
		})
	}
}

func TestParseSpecFillAndAlign(t *testing.T) {
	tests := []struct {
		input     string
		wantFill  rune
		wantAlign Alignment
	}{
		{"*<", '*', AlignLeft},
		{"0>", '0', AlignRight},
		{"-^", '-', AlignCenter},
		{"_=", '_', AlignAfterSign},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Fill != tt.wantFill {
				t.Errorf("fill = %q, want %q", spec.Fill, tt.wantFill)
			}
			if spec.Align != tt.wantAlign {
				t.Errorf("align = %v, want %v", spec.Align, tt.wantAlign)
			}
		})
	}
}

func TestParseSpecSign(t *testing.T) {
	tests := []struct {
		input string
		want  Sign
	}{
		{"+", SignPlus},
		{"-", SignMinus},
		{" ", SignSpace},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Sign != tt.want {
				t.Errorf("sign = %v, want %v", spec.Sign, tt.want)
			}
		})
	}
}

func TestParseSpecFlags(t *testing.T) {
	spec, err := ParseSpec("z")
	if err != nil {
		t.Fatalf("ParseSpec(\"z\") error: %v", err)
	}
	if !spec.ZeroFlag {
		t.Error("zero flag not set")
	}

	spec, err = ParseSpec("#")
	if err != nil {
		t.Fatalf("ParseSpec(\"#\") error: %v", err)
	}
	if !spec.Alternate {
		t.Error("alternate not set")
	}

	spec, err = ParseSpec("#0")
	if err != nil {
		t.Fatalf("ParseSpec(\"#0\") error: %v", err)
	}
	if !spec.Alternate || !spec.ZeroPad {
		t.Errorf("got alternate=%v zeroPad=%v, want both true", spec.Alternate, spec.ZeroPad)
	}
}

func TestParseSpecWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"5", 5},
		{"10", 10},
		{"123", 123},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Width != tt.want {
				t.Errorf("width = %d, want %d", spec.Width, tt.want)
			}
		})
	}
}

func TestParseSpecWidthOverflow(t *testing.T) {
	_, err := ParseSpec("99999999999999999999999999d")
	if err == nil {
		t.Fatal("expected error for overflowing width")
	}
	if !IsWidthError(err) {
		t.Errorf("got %T, want WidthError", err)
	}
}

func TestParseSpecGrouping(t *testing.T) {
	spec, err := ParseSpec(",")
	if err != nil {
		t.Fatalf("ParseSpec(\",\") error: %v", err)
	}
	if spec.Grouping != GroupComma {
		t.Errorf("grouping = %v, want comma", spec.Grouping)
	}

	spec, err = ParseSpec("10_d")
	if err != nil {
		t.Fatalf("ParseSpec(\"10_d\") error: %v", err)
	}
	if spec.Width != 10 || spec.Grouping != GroupUnderscore || spec.Type != TypeDecimal {
		t.Errorf("got %+v, want width=10 grouping=underscore type=d", spec)
	}
}

func TestParseSpecPrecision(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{".2", 2},
		{".10", 10},
		{".0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Precision != tt.want {
				t.Errorf("precision = %d, want %d", spec.Precision, tt.want)
			}
		})
	}
}

func TestParseSpecPrecisionWithoutDigits(t *testing.T) {
	for _, input := range []string{".", ".f"} {
		if _, err := ParseSpec(input); err == nil {
			t.Errorf("ParseSpec(%q): expected error", input)
		}
	}
}

func TestParseSpecTypes(t *testing.T) {
	tests := []struct {
		input string
		want  TypeSpec
	}{
		{"s", TypeString},
		{"b", TypeBinary},
		{"c", TypeCharacter},
		{"d", TypeDecimal},
		{"o", TypeOctal},
		{"x", TypeHexLower},
		{"X", TypeHexUpper},
		{"n", TypeNumber},
		{"e", TypeExponentLower},
		{"E", TypeExponentUpper},
		{"f", TypeFixedLower},
		{"F", TypeFixedUpper},
		{"g", TypeGeneralLower},
		{"G", TypeGeneralUpper},
		{"%", TypePercentage},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec.Type != tt.want {
				t.Errorf("type = %v, want %v", spec.Type, tt.want)
			}
		})
	}
}

func TestParseSpecUnknownTrailingCharacter(t *testing.T) {
	// Characters that match no known type specifier are hard errors, not
	// silently accepted untyped specs.
	for _, input := range []string{"j", "10j", "d!", "5dd"} {
		_, err := ParseSpec(input)
		if err == nil {
			t.Errorf("ParseSpec(%q): expected error", input)
			continue
		}
		if !IsSpecSyntaxError(err) {
			t.Errorf("ParseSpec(%q): got %T, want SpecSyntaxError", input, err)
		}
	}
}

func TestParseSpecComplex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FormatSpec
	}{
		{
			name:  "right aligned float",
			input: ">10.2f",
			want: FormatSpec{
				Align:     AlignRight,
				Width:     10,
				Grouping:  GroupNone,
				Precision: 2,
				Type:      TypeFixedLower,
			},
		},
		{
			name:  "sign aware zero fill",
			input: "0=+10,.2f",
			want: FormatSpec{
				Fill:      '0',
				Align:     AlignAfterSign,
				Sign:      SignPlus,
				Width:     10,
				Grouping:  GroupComma,
				Precision: 2,
				Type:      TypeFixedLower,
			},
		},
		{
			name:  "zero padded decimal",
			input: "05d",
			want: FormatSpec{
				ZeroPad:   true,
				Width:     5,
				Precision: NoPrecision,
				Type:      TypeDecimal,
			},
		},
		{
			name:  "alternate hex with zero pad",
			input: "#010x",
			want: FormatSpec{
				Alternate: true,
				ZeroPad:   true,
				Width:     10,
				Precision: NoPrecision,
				Type:      TypeHexLower,
			},
		},
		{
			name:  "padded string",
			input: "*<20s",
			want: FormatSpec{
				Fill:      '*',
				Align:     AlignLeft,
				Width:     20,
				Precision: NoPrecision,
				Type:      TypeString,
			},
		},
		{
			name:  "every stage at once",
			input: "0<+z#010,.2f",
			want: FormatSpec{
				Fill:      '0',
				Align:     AlignLeft,
				Sign:      SignPlus,
				ZeroFlag:  true,
				Alternate: true,
				ZeroPad:   true,
				Width:     10,
				Grouping:  GroupComma,
				Precision: 2,
				Type:      TypeFixedLower,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpec(tt.input)
			if err != nil {
				t.Fatalf("ParseSpec(%q) error: %v", tt.input, err)
			}
			if spec != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.input, spec, tt.want)
			}
		})
	}
}
