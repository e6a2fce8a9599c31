package reform

import (
	"fmt"
	"regexp"
	"strconv"
)

// CaptureInfo describes one capture slot of a compiled matcher: the name
// values are stored under, the format specification that both shaped the
// slot's pattern and drives conversion of its captured text, and the
// 1-based group index in the generated expression.
type CaptureInfo struct {
	Name  string
	Spec  FormatSpec
	Group int
}

// buildPattern compiles a field sequence into regular expression source
// plus the capture list. Literal prefixes are escaped; every placeholder
// becomes one capture group whose inner pattern accepts the widest
// textually valid input for the field's resolved type, not only what the
// formatter would emit.
func buildPattern(fields []Field) (string, []CaptureInfo) {
	var pattern []byte
	var captures []CaptureInfo

	group := 1
	for _, field := range fields {
		pattern = append(pattern, regexp.QuoteMeta(field.Prefix)...)
		if field.IsTrailing() {
			continue
		}

		pattern = append(pattern, '(')
		pattern = append(pattern, fieldPattern(field.Spec)...)
		pattern = append(pattern, ')')

		captures = append(captures, CaptureInfo{
			Name:  field.captureName(),
			Spec:  field.Spec,
			Group: group,
		})
		group++
	}
	return string(pattern), captures
}

// fieldPattern returns the inner pattern for one capture slot, chosen
// purely from the slot's resolved type.
func fieldPattern(spec FormatSpec) string {
	// When the spec carries a grouping flag the digit runs admit that
	// separator; convertCapture strips it before parsing. Ungrouped specs
	// accept plain digit runs only.
	switch spec.Type {
	case TypeDecimal, TypeNumber:
		return `[-+]?` + digitRun("0-9", spec.Grouping)
	case TypeBinary:
		return `(?:0[bB])?` + digitRun("01", spec.Grouping)
	case TypeOctal:
		return `(?:0[oO])?` + digitRun("0-7", spec.Grouping)
	case TypeHexLower, TypeHexUpper:
		return `(?:0[xX])?` + digitRun("0-9a-fA-F", spec.Grouping)
	case TypeFixedLower, TypeFixedUpper,
		TypeExponentLower, TypeExponentUpper,
		TypeGeneralLower, TypeGeneralUpper:
		return `[-+]?(?:` + digitRun("0-9", spec.Grouping) + `\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?`
	case TypePercentage:
		return `[-+]?(?:` + digitRun("0-9", spec.Grouping) + `\.?[0-9]*|\.[0-9]+)%`
	case TypeCharacter:
		return `.`
	default:
		// String captures. Width and precision bound the length when
		// given; otherwise the slot is non-greedy so adjacent literal
		// text anchors the boundary.
		switch {
		case spec.Width != NoWidth && spec.Precision != NoPrecision:
			return fmt.Sprintf(`.{%d,%d}`, spec.Width, spec.Precision)
		case spec.Width != NoWidth:
			return fmt.Sprintf(`.{%d,}`, spec.Width)
		case spec.Precision != NoPrecision:
			return fmt.Sprintf(`.{1,%d}`, spec.Precision)
		default:
			return `.+?`
		}
	}
}

// digitRun returns the pattern for one run of digits from the given
// character range, admitting the grouping separator after the first
// digit when the spec asked for one.
func digitRun(digits string, grouping Grouping) string {
	if grouping == GroupNone {
		return "[" + digits + "]+"
	}
	return "[" + digits + "][" + digits + string(grouping.Separator()) + "]*"
}

// convertCapture converts one captured substring to a typed Value using
// the format specification that produced the capture's pattern. Grouping
// separators, radix prefixes and the percent suffix are stripped before
// numeric parsing.
func convertCapture(text string, spec FormatSpec) (Value, error) {
	switch spec.Type {
	case TypeDecimal, TypeNumber:
		cleaned := stripGrouping(text)
		n, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			return Value{}, NewConversionError("failed to parse integer "+strconv.Quote(text), err)
		}
		return Int(n), nil

	case TypeBinary:
		return parseRadix(text, "0b", "0B", 2)

	case TypeOctal:
		return parseRadix(text, "0o", "0O", 8)

	case TypeHexLower, TypeHexUpper:
		return parseRadix(text, "0x", "0X", 16)

	case TypeFixedLower, TypeFixedUpper,
		TypeExponentLower, TypeExponentUpper,
		TypeGeneralLower, TypeGeneralUpper:
		cleaned := stripGrouping(text)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Value{}, NewConversionError("failed to parse float "+strconv.Quote(text), err)
		}
		return Float(f), nil

	case TypePercentage:
		cleaned := stripGrouping(text)
		if len(cleaned) > 0 && cleaned[len(cleaned)-1] == '%' {
			cleaned = cleaned[:len(cleaned)-1]
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return Value{}, NewConversionError("failed to parse percentage "+strconv.Quote(text), err)
		}
		return Float(f / 100), nil

	case TypeCharacter:
		runes := []rune(text)
		if len(runes) != 1 {
			return Value{}, NewConversionError("expected single character, got "+strconv.Quote(text), nil)
		}
		return Char(runes[0]), nil

	default:
		return String(text), nil
	}
}

// parseRadix parses an integer capture after removing grouping separators
// and the optional radix prefix.
func parseRadix(text, prefix, prefixUpper string, base int) (Value, error) {
	cleaned := stripGrouping(text)
	if len(cleaned) >= 2 && (cleaned[:2] == prefix || cleaned[:2] == prefixUpper) {
		cleaned = cleaned[2:]
	}
	n, err := strconv.ParseInt(cleaned, base, 64)
	if err != nil {
		return Value{}, NewConversionError("failed to parse base-"+strconv.Itoa(base)+" integer "+strconv.Quote(text), err)
	}
	return Int(n), nil
}

// stripGrouping removes comma and underscore separators.
func stripGrouping(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == ',' || s[i] == '_' {
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
