package reform

// Alignment controls how a formatted value is padded to its field width.
type Alignment int

const (
	// AlignNone means no explicit alignment was given.
	AlignNone Alignment = iota
	// AlignLeft pads on the right: '<'
	AlignLeft
	// AlignRight pads on the left: '>'
	AlignRight
	// AlignCenter splits the padding: '^'
	AlignCenter
	// AlignAfterSign inserts padding between the sign and the digits: '='
	AlignAfterSign
)

// alignmentFromRune maps an alignment character to its Alignment.
func alignmentFromRune(r rune) Alignment {
	switch r {
	case '<':
		return AlignLeft
	case '>':
		return AlignRight
	case '^':
		return AlignCenter
	case '=':
		return AlignAfterSign
	default:
		return AlignNone
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "<"
	case AlignRight:
		return ">"
	case AlignCenter:
		return "^"
	case AlignAfterSign:
		return "="
	default:
		return ""
	}
}

// Sign controls when a sign character is emitted for numeric values.
type Sign int

const (
	// SignDefault means no explicit sign option was given; negative
	// values get '-', non-negative values get nothing.
	SignDefault Sign = iota
	// SignMinus is the explicit form of the default: '-'
	SignMinus
	// SignPlus always emits a sign: '+'
	SignPlus
	// SignSpace emits ' ' for non-negative and '-' for negative: ' '
	SignSpace
)

func signFromRune(r rune) Sign {
	switch r {
	case '-':
		return SignMinus
	case '+':
		return SignPlus
	case ' ':
		return SignSpace
	default:
		return SignDefault
	}
}

func (s Sign) String() string {
	switch s {
	case SignMinus:
		return "-"
	case SignPlus:
		return "+"
	case SignSpace:
		return " "
	default:
		return ""
	}
}

// Grouping selects the digit-group separator for numeric values.
type Grouping int

const (
	// GroupNone means no grouping separator.
	GroupNone Grouping = iota
	// GroupComma separates digit groups with ','
	GroupComma
	// GroupUnderscore separates digit groups with '_'
	GroupUnderscore
)

func groupingFromRune(r rune) Grouping {
	switch r {
	case ',':
		return GroupComma
	case '_':
		return GroupUnderscore
	default:
		return GroupNone
	}
}

// Separator returns the separator character for this grouping.
func (g Grouping) Separator() rune {
	switch g {
	case GroupComma:
		return ','
	case GroupUnderscore:
		return '_'
	default:
		return 0
	}
}

// TypeSpec is the type character of a format specification.
type TypeSpec int

const (
	// TypeNone means no type character was given.
	TypeNone TypeSpec = iota
	// TypeString formats as text: 's'
	TypeString
	// TypeBinary formats as a base-2 integer: 'b'
	TypeBinary
	// TypeCharacter formats an integer as its Unicode character: 'c'
	TypeCharacter
	// TypeDecimal formats as a base-10 integer: 'd'
	TypeDecimal
	// TypeOctal formats as a base-8 integer: 'o'
	TypeOctal
	// TypeHexLower formats as lowercase base-16: 'x'
	TypeHexLower
	// TypeHexUpper formats as uppercase base-16: 'X'
	TypeHexUpper
	// TypeNumber is the locale-aware integer type 'n'; rendered as plain
	// decimal since locale-aware numerals are out of scope
	TypeNumber
	// TypeExponentLower formats in scientific notation: 'e'
	TypeExponentLower
	// TypeExponentUpper formats in scientific notation: 'E'
	TypeExponentUpper
	// TypeFixedLower formats in fixed-point notation: 'f'
	TypeFixedLower
	// TypeFixedUpper formats in fixed-point notation: 'F'
	TypeFixedUpper
	// TypeGeneralLower is the general float format: 'g'
	TypeGeneralLower
	// TypeGeneralUpper is the general float format: 'G'
	TypeGeneralUpper
	// TypePercentage multiplies by 100 and appends '%'
	TypePercentage
)

func typeSpecFromRune(r rune) TypeSpec {
	switch r {
	case 's':
		return TypeString
	case 'b':
		return TypeBinary
	case 'c':
		return TypeCharacter
	case 'd':
		return TypeDecimal
	case 'o':
		return TypeOctal
	case 'x':
		return TypeHexLower
	case 'X':
		return TypeHexUpper
	case 'n':
		return TypeNumber
	case 'e':
		return TypeExponentLower
	case 'E':
		return TypeExponentUpper
	case 'f':
		return TypeFixedLower
	case 'F':
		return TypeFixedUpper
	case 'g':
		return TypeGeneralLower
	case 'G':
		return TypeGeneralUpper
	case '%':
		return TypePercentage
	default:
		return TypeNone
	}
}

func (t TypeSpec) String() string {
	switch t {
	case TypeString:
		return "s"
	case TypeBinary:
		return "b"
	case TypeCharacter:
		return "c"
	case TypeDecimal:
		return "d"
	case TypeOctal:
		return "o"
	case TypeHexLower:
		return "x"
	case TypeHexUpper:
		return "X"
	case TypeNumber:
		return "n"
	case TypeExponentLower:
		return "e"
	case TypeExponentUpper:
		return "E"
	case TypeFixedLower:
		return "f"
	case TypeFixedUpper:
		return "F"
	case TypeGeneralLower:
		return "g"
	case TypeGeneralUpper:
		return "G"
	case TypePercentage:
		return "%"
	default:
		return ""
	}
}

// IsNumeric reports whether this type character denotes a numeric type.
func (t TypeSpec) IsNumeric() bool {
	switch t {
	case TypeBinary, TypeDecimal, TypeOctal, TypeHexLower, TypeHexUpper,
		TypeNumber, TypeExponentLower, TypeExponentUpper,
		TypeFixedLower, TypeFixedUpper, TypeGeneralLower, TypeGeneralUpper,
		TypePercentage:
		return true
	default:
		return false
	}
}

// IsInteger reports whether this type character denotes an integer type.
func (t TypeSpec) IsInteger() bool {
	switch t {
	case TypeBinary, TypeCharacter, TypeDecimal, TypeOctal,
		TypeHexLower, TypeHexUpper, TypeNumber:
		return true
	default:
		return false
	}
}

// IsFloat reports whether this type character denotes a float type.
func (t TypeSpec) IsFloat() bool {
	switch t {
	case TypeExponentLower, TypeExponentUpper, TypeFixedLower,
		TypeFixedUpper, TypeGeneralLower, TypeGeneralUpper, TypePercentage:
		return true
	default:
		return false
	}
}

// NoWidth and NoPrecision mark absent width/precision in a FormatSpec.
const (
	NoWidth     = -1
	NoPrecision = -1
)

// FormatSpec is the structured result of parsing the mini-language text
// after ':' in a placeholder:
//
//	[[fill]align][sign][z][#][0][width][grouping][.precision][type]
type FormatSpec struct {
	// Fill is the padding character; 0 means unset (effective default is space)
	Fill rune
	// Align is the requested alignment, AlignNone if absent
	Align Alignment
	// Sign is the sign option, SignDefault if absent
	Sign Sign
	// ZeroFlag coerces negative zero to positive zero for floats ('z')
	ZeroFlag bool
	// Alternate requests a radix prefix ('#')
	Alternate bool
	// ZeroPad requests zero padding to the field width ('0')
	ZeroPad bool
	// Width is the minimum field width, NoWidth if absent
	Width int
	// Grouping is the digit-group separator option, GroupNone if absent
	Grouping Grouping
	// Precision is the precision, NoPrecision if absent
	Precision int
	// Type is the type character, TypeNone if absent
	Type TypeSpec
}

// DefaultSpec returns the all-absent format specification produced by an
// empty spec string.
func DefaultSpec() FormatSpec {
	return FormatSpec{
		Width:     NoWidth,
		Precision: NoPrecision,
	}
}

// IsNumeric reports whether the spec's type character is numeric.
func (s FormatSpec) IsNumeric() bool {
	return s.Type.IsNumeric()
}

// FillRune returns the effective fill character (default: space).
func (s FormatSpec) FillRune() rune {
	if s.Fill == 0 {
		return ' '
	}
	return s.Fill
}
