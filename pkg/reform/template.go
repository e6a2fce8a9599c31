package reform

import (
	"strconv"
	"unicode"
)

// Field is one element of a compiled template: the literal text preceding
// a placeholder plus the placeholder itself. The last Field of every
// template is synthetic and holds only the text after the final
// placeholder (it has neither name nor index).
type Field struct {
	// Prefix is the literal text before the placeholder, with {{ and }}
	// escapes already resolved
	Prefix string
	// Name is the field identifier, "" for positional and trailing fields
	Name string
	// Index is the positional slot, valid only when HasIndex is true
	Index int
	// HasIndex reports whether this is a positional field
	HasIndex bool
	// Auto reports whether the index came from auto-numbering of an
	// empty placeholder rather than an explicit {N}
	Auto bool
	// Spec is the parsed format specification of the placeholder
	Spec FormatSpec
}

// IsTrailing reports whether this is the synthetic field holding the text
// after the last placeholder.
func (f Field) IsTrailing() bool {
	return f.Name == "" && !f.HasIndex
}

// captureName returns the name under which a parsed value for this field
// is stored: the field name, the explicit index digits, or a synthetic
// "_N" for auto-numbered fields.
func (f Field) captureName() string {
	if f.Name != "" {
		return f.Name
	}
	if f.Auto {
		return "_" + strconv.Itoa(f.Index)
	}
	return strconv.Itoa(f.Index)
}

// parseTemplate scans a template string into its ordered field sequence.
// {{ and }} become literal braces; an unescaped stray '}' or an
// unterminated '{' is an error. Empty placeholders receive strictly
// increasing auto-indices starting at 0; explicit {N} placeholders do not
// advance that counter.
func parseTemplate(template string) ([]Field, error) {
	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithField("template_length", len(template)).Debug("Scanning template")
	}

	var fields []Field
	var prefix []rune
	runes := []rune(template)
	autoIndex := 0

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			if i+1 < len(runes) && runes[i+1] == '{' {
				prefix = append(prefix, '{')
				i++
				continue
			}
			body, next, err := scanPlaceholder(runes, i+1)
			if err != nil {
				return nil, err
			}
			field, err := parsePlaceholder(body, &autoIndex)
			if err != nil {
				return nil, err
			}
			field.Prefix = string(prefix)
			fields = append(fields, field)
			prefix = prefix[:0]
			i = next
		case '}':
			if i+1 < len(runes) && runes[i+1] == '}' {
				prefix = append(prefix, '}')
				i++
				continue
			}
			return nil, NewSpecSyntaxError("unmatched '}' in template", template, i)
		default:
			prefix = append(prefix, runes[i])
		}
	}

	// Synthetic trailing field for the text after the last placeholder.
	fields = append(fields, Field{
		Prefix: string(prefix),
		Spec:   DefaultSpec(),
	})

	if logger.IsDebugMode() {
		logger.WithField("field_count", len(fields)).Debug("Template scan complete")
	}
	return fields, nil
}

// scanPlaceholder consumes runes from start until the matching closing
// brace and returns the placeholder body and the index of that brace.
func scanPlaceholder(runes []rune, start int) (string, int, error) {
	depth := 0
	for i := start; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return string(runes[start:i]), i, nil
			}
			depth--
		}
	}
	return "", 0, NewSpecSyntaxError("unclosed '{' in template", string(runes), start-1)
}

// parsePlaceholder splits a placeholder body into its name/index part and
// its format specification.
func parsePlaceholder(body string, autoIndex *int) (Field, error) {
	namePart := body
	specPart := ""
	for i, r := range body {
		if r == ':' {
			namePart = body[:i]
			specPart = body[i+1:]
			break
		}
	}

	spec, err := ParseSpec(specPart)
	if err != nil {
		return Field{}, err
	}

	field := Field{Spec: spec}
	switch {
	case namePart == "":
		field.Index = *autoIndex
		field.HasIndex = true
		field.Auto = true
		*autoIndex++
	case isInteger(namePart):
		index, err := strconv.Atoi(namePart)
		if err != nil {
			return Field{}, NewFieldNameError(namePart)
		}
		field.Index = index
		field.HasIndex = true
	case isIdentifier(namePart):
		field.Name = namePart
	default:
		return Field{}, NewFieldNameError(namePart)
	}
	return field, nil
}

// isInteger reports whether s is a non-empty run of ASCII digits.
func isInteger(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// isIdentifier reports whether s is a valid field name: one or more
// alphanumeric-or-underscore characters.
func isIdentifier(s string) bool {
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return s != ""
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
