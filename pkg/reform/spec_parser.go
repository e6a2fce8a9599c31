package reform

import "strconv"

// ParseSpec parses a format specification string such as ">10.2f" into a
// FormatSpec. The grammar is strictly ordered and every part is optional:
//
//	[[fill]align][sign][z][#][0][width][grouping][.precision][type]
//
// An empty string yields DefaultSpec. The whole input must be consumed;
// any character left over after the type stage, including a character that
// matches no known type specifier, is a syntax error. Accepting unknown
// trailing characters would silently mask typos like "{n:j}".
func ParseSpec(input string) (FormatSpec, error) {
	spec := DefaultSpec()
	if input == "" {
		return spec, nil
	}

	p := &specParser{input: []rune(input), raw: input, spec: spec}
	return p.parse()
}

// specParser holds the cursor state while parsing one spec string.
// The position indexes runes, not bytes.
type specParser struct {
	input []rune
	raw   string
	pos   int
	spec  FormatSpec
}

func (p *specParser) parse() (FormatSpec, error) {
	p.parseFillAndAlign()
	p.parseSign()

	if p.peek() == 'z' {
		p.spec.ZeroFlag = true
		p.pos++
	}
	if p.peek() == '#' {
		p.spec.Alternate = true
		p.pos++
	}
	if p.peek() == '0' {
		p.spec.ZeroPad = true
		p.pos++
	}

	if err := p.parseWidth(); err != nil {
		return p.spec, err
	}
	p.parseGrouping()
	if err := p.parsePrecision(); err != nil {
		return p.spec, err
	}
	p.parseType()

	if p.pos < len(p.input) {
		return p.spec, NewSpecSyntaxError(
			"unexpected character '"+string(p.input[p.pos])+"'", p.raw, p.pos)
	}
	return p.spec, nil
}

// parseFillAndAlign resolves the fill/align ambiguity with one rune of
// lookahead: a leading alignment character is alignment with no fill,
// otherwise (any rune, alignment rune) is a fill/align pair. A leading
// digit that is not followed by an alignment character falls through to
// the zero-pad and width stages.
func (p *specParser) parseFillAndAlign() {
	if a := alignmentFromRune(p.peek()); a != AlignNone {
		p.spec.Align = a
		p.pos++
		return
	}
	if len(p.input)-p.pos >= 2 {
		if a := alignmentFromRune(p.input[p.pos+1]); a != AlignNone {
			p.spec.Fill = p.input[p.pos]
			p.spec.Align = a
			p.pos += 2
		}
	}
}

func (p *specParser) parseSign() {
	if s := signFromRune(p.peek()); s != SignDefault {
		p.spec.Sign = s
		p.pos++
	}
}

func (p *specParser) parseWidth() error {
	digits := p.takeDigits()
	if digits == "" {
		return nil
	}
	width, err := strconv.Atoi(digits)
	if err != nil {
		return NewWidthError(digits)
	}
	p.spec.Width = width
	return nil
}

func (p *specParser) parseGrouping() {
	if g := groupingFromRune(p.peek()); g != GroupNone {
		p.spec.Grouping = g
		p.pos++
	}
}

func (p *specParser) parsePrecision() error {
	if p.peek() != '.' {
		return nil
	}
	p.pos++

	digits := p.takeDigits()
	if digits == "" {
		return NewSpecSyntaxError("precision must be followed by a number", p.raw, p.pos)
	}
	precision, err := strconv.Atoi(digits)
	if err != nil {
		return NewWidthError(digits)
	}
	p.spec.Precision = precision
	return nil
}

func (p *specParser) parseType() {
	if t := typeSpecFromRune(p.peek()); t != TypeNone {
		p.spec.Type = t
		p.pos++
	}
}

// peek returns the rune at the cursor, or 0 at end of input.
func (p *specParser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// takeDigits consumes and returns the maximal run of ASCII digits.
func (p *specParser) takeDigits() string {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	return string(p.input[start:p.pos])
}
