package reform

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Per-type writers. Each writer produces the fully assembled body for one
// type character (grouping, sign, radix prefix and zero padding applied);
// the final width/fill alignment pass happens in formatValue.

// formatStringValue renders the value's textual form, truncated to the
// precision in code points when one is given.
func formatStringValue(v Value, spec FormatSpec) (string, error) {
	s := v.String()
	if spec.Precision != NoPrecision {
		runes := []rune(s)
		if len(runes) > spec.Precision {
			s = string(runes[:spec.Precision])
		}
	}
	return s, nil
}

// formatDecimal renders a signed base-10 integer with grouping in threes.
func formatDecimal(v Value, spec FormatSpec) (string, error) {
	num, err := v.ToInt()
	if err != nil {
		return "", err
	}

	mag := uint64(num)
	if num < 0 {
		mag = -mag
	}
	result := strconv.FormatUint(mag, 10)

	if spec.Grouping != GroupNone {
		result = applyGrouping(result, spec.Grouping, 3)
	}
	result = signPrefix(num < 0, spec) + result

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth {
		result = applyZeroPadding(result, spec.Width)
	}
	return result, nil
}

// formatBinary renders an unsigned base-2 integer.
func formatBinary(v Value, spec FormatSpec) (string, error) {
	return formatRadix(v, spec, 2, "0b")
}

// formatOctal renders an unsigned base-8 integer.
func formatOctal(v Value, spec FormatSpec) (string, error) {
	return formatRadix(v, spec, 8, "0o")
}

// formatHex renders an unsigned base-16 integer.
func formatHex(v Value, spec FormatSpec, uppercase bool) (string, error) {
	prefix := "0x"
	if uppercase {
		prefix = "0X"
	}
	return formatRadix(v, spec, 16, prefix)
}

// formatRadix is the shared writer for the binary, octal and hex types:
// unsigned magnitude, grouping in fours, alternate-form prefix on non-zero
// values. Negative values are a conversion error.
func formatRadix(v Value, spec FormatSpec, base int, prefix string) (string, error) {
	num, err := v.ToUint()
	if err != nil {
		return "", err
	}

	result := strconv.FormatUint(num, base)
	if prefix == "0X" {
		result = strings.ToUpper(result)
	}

	if spec.Grouping != GroupNone {
		result = applyGrouping(result, spec.Grouping, 4)
	}
	if spec.Alternate && num != 0 {
		result = prefix + result
	}

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth {
		result = applyZeroPadding(result, spec.Width)
	}
	return result, nil
}

// formatFixed renders fixed-point notation with grouping applied to the
// integer part only.
func formatFixed(v Value, spec FormatSpec) (string, error) {
	num, err := floatOperand(v, spec)
	if err != nil {
		return "", err
	}

	precision := spec.Precision
	if precision == NoPrecision {
		precision = 6
	}

	result := strconv.FormatFloat(math.Abs(num), 'f', precision, 64)

	if spec.Grouping != GroupNone {
		if dot := strings.IndexByte(result, '.'); dot >= 0 {
			result = applyGrouping(result[:dot], spec.Grouping, 3) + result[dot:]
		} else {
			result = applyGrouping(result, spec.Grouping, 3)
		}
	}
	result = signPrefix(math.Signbit(num), spec) + result

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth {
		result = applyZeroPadding(result, spec.Width)
	}
	return result, nil
}

// formatExponent renders scientific notation.
func formatExponent(v Value, spec FormatSpec, uppercase bool) (string, error) {
	num, err := floatOperand(v, spec)
	if err != nil {
		return "", err
	}

	precision := spec.Precision
	if precision == NoPrecision {
		precision = 6
	}

	verb := byte('e')
	if uppercase {
		verb = 'E'
	}
	result := strconv.FormatFloat(math.Abs(num), verb, precision, 64)
	result = signPrefix(math.Signbit(num), spec) + result

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth {
		result = applyZeroPadding(result, spec.Width)
	}
	return result, nil
}

// formatGeneral renders the general float format. It keeps fixed-point
// notation at the requested precision rather than switching to scientific
// form, so formatted output stays parseable by the matcher's float
// pattern under every precision.
func formatGeneral(v Value, spec FormatSpec) (string, error) {
	num, err := floatOperand(v, spec)
	if err != nil {
		return "", err
	}

	precision := spec.Precision
	if precision == NoPrecision {
		precision = 6
	}

	result := strconv.FormatFloat(math.Abs(num), 'f', precision, 64)
	result = signPrefix(math.Signbit(num), spec) + result

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth {
		result = applyZeroPadding(result, spec.Width)
	}
	return result, nil
}

// formatPercentage multiplies by 100 and appends '%'. Zero padding is
// computed against width-1 so the suffix does not count toward the width.
func formatPercentage(v Value, spec FormatSpec) (string, error) {
	f, err := floatOperand(v, spec)
	if err != nil {
		return "", err
	}
	num := f * 100

	precision := spec.Precision
	if precision == NoPrecision {
		precision = 6
	}

	result := strconv.FormatFloat(math.Abs(num), 'f', precision, 64)
	result = signPrefix(math.Signbit(num), spec) + result

	if spec.ZeroPad && spec.Align == AlignNone && spec.Width != NoWidth && spec.Width > 0 {
		result = applyZeroPadding(result, spec.Width-1)
	}
	return result + "%", nil
}

// formatCharacter renders a char value verbatim, an integer as its Unicode
// scalar value, or a single-character string.
func formatCharacter(v Value) (string, error) {
	switch v.Kind() {
	case KindChar:
		c, _ := v.AsChar()
		return string(c), nil
	case KindInt:
		i, _ := v.AsInt()
		if i < 0 || i > utf8.MaxRune || !utf8.ValidRune(rune(i)) {
			return "", NewConversionError("invalid character code: "+strconv.FormatInt(i, 10), nil)
		}
		return string(rune(i)), nil
	case KindString:
		if c, ok := v.AsChar(); ok {
			return string(c), nil
		}
	}
	return "", NewConversionError("cannot format "+v.Kind().String()+" value as character", nil)
}

// floatOperand coerces the value to a float and applies the z flag, which
// forces negative zero to positive zero.
func floatOperand(v Value, spec FormatSpec) (float64, error) {
	num, err := v.ToFloat()
	if err != nil {
		return 0, err
	}
	if spec.ZeroFlag && num == 0 {
		num = 0
	}
	return num, nil
}

// applyGrouping inserts the grouping separator every groupSize digits,
// counting from the right; the leftmost group may be shorter.
func applyGrouping(s string, grouping Grouping, groupSize int) string {
	sep := grouping.Separator()
	runes := []rune(s)

	var result strings.Builder
	for i, r := range runes {
		if i > 0 && (len(runes)-i)%groupSize == 0 {
			result.WriteRune(sep)
		}
		result.WriteRune(r)
	}
	return result.String()
}

// signPrefix returns the sign character mandated by the spec for a value
// of the given negativity: Plus always signs, Space signs non-negative
// values with a space, the default signs only negative values.
func signPrefix(negative bool, spec FormatSpec) string {
	switch spec.Sign {
	case SignPlus:
		if negative {
			return "-"
		}
		return "+"
	case SignSpace:
		if negative {
			return "-"
		}
		return " "
	default:
		if negative {
			return "-"
		}
		return ""
	}
}

// applyZeroPadding inserts '0' runes so the result reaches width
// characters, skipping a leading sign or a two-character radix prefix so
// the fill lands between prefix and digits.
func applyZeroPadding(s string, width int) string {
	length := utf8.RuneCountInString(s)
	if length >= width {
		return s
	}

	prefix := ""
	rest := s
	switch {
	case strings.HasPrefix(s, "+"), strings.HasPrefix(s, "-"), strings.HasPrefix(s, " "):
		prefix, rest = s[:1], s[1:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"),
		strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"),
		strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		prefix, rest = s[:2], s[2:]
	}

	return prefix + strings.Repeat("0", width-length) + rest
}
