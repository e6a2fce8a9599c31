package reform

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		check   func(error) bool
		message string
	}{
		{
			"spec syntax",
			NewSpecSyntaxError("unexpected character 'j'", "10j", 2),
			IsSpecSyntaxError,
			`invalid format specification "10j" at position 2`,
		},
		{
			"spec syntax without spec",
			NewSpecSyntaxError("bad template", "", 0),
			IsSpecSyntaxError,
			"invalid format specification: bad template",
		},
		{
			"width",
			NewWidthError("99999999999999999999"),
			IsWidthError,
			"invalid width or precision",
		},
		{
			"field name",
			NewFieldNameError("not good"),
			IsFieldNameError,
			"invalid field name",
		},
		{
			"missing field",
			NewMissingFieldError("score"),
			IsMissingFieldError,
			"missing field: score",
		},
		{
			"conversion",
			NewConversionError("cannot convert string value to int", nil),
			IsConversionError,
			"type conversion error",
		},
		{
			"pattern",
			NewPatternError("{v:d}", errors.New("boom")),
			IsPatternError,
			"pattern compilation error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.check(tt.err) {
				t.Errorf("kind check failed for %v", tt.err)
			}
			if !strings.Contains(tt.err.Error(), tt.message) {
				t.Errorf("Error() = %q, want substring %q", tt.err.Error(), tt.message)
			}
		})
	}
}

func TestErrorKindsAreDisjoint(t *testing.T) {
	err := NewMissingFieldError("x")
	if IsSpecSyntaxError(err) || IsConversionError(err) || IsWidthError(err) {
		t.Errorf("missing field error reported as another kind")
	}
	if IsMissingFieldError(nil) {
		t.Error("nil reported as missing field error")
	}
}

func TestConversionErrorUnwrap(t *testing.T) {
	cause := errors.New("strconv failure")
	err := NewConversionError("failed to parse integer", cause)
	if !errors.Is(err, cause) {
		t.Error("conversion error does not unwrap to its cause")
	}
}

func TestPatternErrorUnwrap(t *testing.T) {
	cause := errors.New("missing closing )")
	err := NewPatternError("{v}", cause)
	if !errors.Is(err, cause) {
		t.Error("pattern error does not unwrap to its cause")
	}
}

func TestWrappedKindDetection(t *testing.T) {
	inner := NewWidthError("123456789012345")
	wrapped := NewConversionError("while compiling", inner)
	if !IsWidthError(wrapped) {
		t.Error("wrapped width error not detected through errors.As")
	}
}
