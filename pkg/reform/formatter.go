package reform

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Formatter renders typed values into text according to a template with
// {field:spec} placeholders. A Formatter is immutable after construction
// and safe to share across goroutines.
type Formatter struct {
	template string
	fields   []Field
}

// NewFormatter compiles a template into a Formatter.
//
// The template may contain named fields ({name} or {name:spec}),
// positional fields ({}, {:spec}, {0:spec}) and literal braces ({{, }}).
func NewFormatter(template string) (*Formatter, error) {
	fields, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	return &Formatter{template: template, fields: fields}, nil
}

// Template returns the template the formatter was compiled from.
func (f *Formatter) Template() string {
	return f.template
}

// FormatMap formats values looked up by field name. Positional fields are
// rejected; a name absent from the map is a MissingFieldError.
func (f *Formatter) FormatMap(values map[string]Value) (string, error) {
	return f.FormatFunc(func(name string) (Value, bool) {
		v, ok := values[name]
		return v, ok
	})
}

// FormatFunc formats values supplied by a lookup callback. The callback
// is invoked once per named field in template order.
func (f *Formatter) FormatFunc(lookup func(name string) (Value, bool)) (string, error) {
	var result strings.Builder

	for _, field := range f.fields {
		result.WriteString(field.Prefix)
		if field.IsTrailing() {
			continue
		}
		if field.Name == "" {
			return "", NewSpecSyntaxError("positional fields require FormatArgs", f.template, 0)
		}

		value, ok := lookup(field.Name)
		if !ok {
			return "", NewMissingFieldError(field.Name)
		}
		formatted, err := formatValue(value, field.Spec)
		if err != nil {
			return "", err
		}
		result.WriteString(formatted)
	}
	return result.String(), nil
}

// FormatArgs formats a positional value sequence. Named fields are
// rejected; an index beyond the sequence is a MissingFieldError.
func (f *Formatter) FormatArgs(values ...Value) (string, error) {
	var result strings.Builder

	for _, field := range f.fields {
		result.WriteString(field.Prefix)
		if field.IsTrailing() {
			continue
		}
		if !field.HasIndex {
			return "", NewSpecSyntaxError("named fields require FormatMap", f.template, 0)
		}
		if field.Index >= len(values) {
			return "", NewMissingFieldError("position " + strconv.Itoa(field.Index))
		}

		formatted, err := formatValue(values[field.Index], field.Spec)
		if err != nil {
			return "", err
		}
		result.WriteString(formatted)
	}
	return result.String(), nil
}

// formatValue renders one value under one format specification: a
// type-specific writer assembles the body, then the final alignment pass
// pads it to the field width.
func formatValue(value Value, spec FormatSpec) (string, error) {
	typeSpec := spec.Type
	if typeSpec == TypeNone {
		switch value.Kind() {
		case KindString, KindChar:
			typeSpec = TypeString
		case KindFloat:
			typeSpec = TypeGeneralLower
		default:
			typeSpec = TypeDecimal
		}
	}

	var formatted string
	var err error
	switch typeSpec {
	case TypeString:
		formatted, err = formatStringValue(value, spec)
	case TypeDecimal, TypeNumber:
		formatted, err = formatDecimal(value, spec)
	case TypeBinary:
		formatted, err = formatBinary(value, spec)
	case TypeOctal:
		formatted, err = formatOctal(value, spec)
	case TypeHexLower:
		formatted, err = formatHex(value, spec, false)
	case TypeHexUpper:
		formatted, err = formatHex(value, spec, true)
	case TypeFixedLower, TypeFixedUpper:
		formatted, err = formatFixed(value, spec)
	case TypeExponentLower:
		formatted, err = formatExponent(value, spec, false)
	case TypeExponentUpper:
		formatted, err = formatExponent(value, spec, true)
	case TypeGeneralLower, TypeGeneralUpper:
		formatted, err = formatGeneral(value, spec)
	case TypePercentage:
		formatted, err = formatPercentage(value, spec)
	case TypeCharacter:
		formatted, err = formatCharacter(value)
	}
	if err != nil {
		return "", err
	}

	// Alignment defaults depend on the resolved type, not the raw spec: an
	// integer with no type character still right-aligns.
	spec.Type = typeSpec
	return applyAlignment(formatted, spec), nil
}

// applyAlignment pads the assembled body with the fill character when the
// field width exceeds its length. Numeric types default to right
// alignment, everything else to left.
func applyAlignment(s string, spec FormatSpec) string {
	length := utf8.RuneCountInString(s)
	if spec.Width == NoWidth || spec.Width <= length {
		return s
	}

	fill := string(spec.FillRune())
	padding := spec.Width - length

	align := spec.Align
	if align == AlignNone {
		if spec.IsNumeric() {
			align = AlignRight
		} else {
			align = AlignLeft
		}
	}

	switch align {
	case AlignLeft:
		return s + strings.Repeat(fill, padding)
	case AlignCenter:
		left := padding / 2
		return strings.Repeat(fill, left) + s + strings.Repeat(fill, padding-left)
	case AlignAfterSign:
		if len(s) > 0 && (s[0] == '+' || s[0] == '-' || s[0] == ' ') {
			return s[:1] + strings.Repeat(fill, padding) + s[1:]
		}
		return strings.Repeat(fill, padding) + s
	default:
		return strings.Repeat(fill, padding) + s
	}
}
