package reform

import "regexp"

// Parser extracts typed values from text using the same template syntax
// the Formatter renders with. A Parser is immutable after construction
// and safe to share across goroutines.
type Parser struct {
	template string
	search   *regexp.Regexp
	anchored *regexp.Regexp
	captures []CaptureInfo
}

// NewParser compiles a template into a Parser. The placeholder fields
// become typed capture slots; everything else must match literally.
func NewParser(template string) (*Parser, error) {
	fields, err := parseTemplate(template)
	if err != nil {
		return nil, err
	}
	source, captures := buildPattern(fields)

	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithFields(Fields{
			"template": template,
			"pattern":  source,
			"captures": len(captures),
		}).Debug("Compiled matcher")
	}

	search, err := regexp.Compile(source)
	if err != nil {
		return nil, NewPatternError(template, err)
	}
	anchored, err := regexp.Compile(`\A(?:` + source + `)\z`)
	if err != nil {
		return nil, NewPatternError(template, err)
	}

	return &Parser{
		template: template,
		search:   search,
		anchored: anchored,
		captures: captures,
	}, nil
}

// Template returns the template the parser was compiled from.
func (p *Parser) Template() string {
	return p.template
}

// Captures returns the capture slots of the compiled matcher in template
// order.
func (p *Parser) Captures() []CaptureInfo {
	out := make([]CaptureInfo, len(p.captures))
	copy(out, p.captures)
	return out
}

// Match matches the entire input against the pattern. It returns
// (nil, nil) when the input does not match; an error means the captured
// text could not be converted, never that there was no match.
func (p *Parser) Match(text string) (*ParseResult, error) {
	m := p.anchored.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	return p.newResult(m)
}

// Search finds the first, leftmost match of the pattern within the input.
// It returns (nil, nil) when no match exists.
func (p *Parser) Search(text string) (*ParseResult, error) {
	m := p.search.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	return p.newResult(m)
}

// FindAll returns every non-overlapping match in left-to-right order.
func (p *Parser) FindAll(text string) ([]*ParseResult, error) {
	var results []*ParseResult
	iter := p.FindIter(text)
	for {
		result, err := iter.Next()
		if err != nil {
			return nil, err
		}
		if result == nil {
			return results, nil
		}
		results = append(results, result)
	}
}

// FindIter returns a lazy iterator over all non-overlapping matches.
func (p *Parser) FindIter(text string) *MatchIter {
	return &MatchIter{parser: p, text: text}
}

func (p *Parser) newResult(m []string) (*ParseResult, error) {
	values := make(map[string]Value, len(p.captures))
	for _, info := range p.captures {
		value, err := convertCapture(m[info.Group], info.Spec)
		if err != nil {
			return nil, err
		}
		values[info.Name] = value
	}
	return &ParseResult{values: values, text: m[0]}, nil
}

// MatchIter walks the non-overlapping matches of a pattern through a
// string lazily. Next returns (nil, nil) when the matches are exhausted;
// Reset restarts the walk from the beginning of the input.
type MatchIter struct {
	parser *Parser
	text   string
	offset int
}

// Next returns the next match, or (nil, nil) when no more matches exist.
func (it *MatchIter) Next() (*ParseResult, error) {
	for it.offset <= len(it.text) {
		loc := it.parser.search.FindStringSubmatchIndex(it.text[it.offset:])
		if loc == nil {
			it.offset = len(it.text) + 1
			return nil, nil
		}

		m := make([]string, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			if loc[i] >= 0 {
				m[i/2] = it.text[it.offset+loc[i] : it.offset+loc[i+1]]
			}
		}

		// Advance past this match; an empty match advances one byte so
		// the walk always terminates.
		if loc[1] > loc[0] {
			it.offset += loc[1]
		} else {
			it.offset += loc[1] + 1
		}
		return it.parser.newResult(m)
	}
	return nil, nil
}

// Reset restarts the iterator at the beginning of its input.
func (it *MatchIter) Reset() {
	it.offset = 0
}

// ParseResult is the immutable outcome of one successful match: the
// extracted values keyed by field name plus the matched text.
type ParseResult struct {
	values map[string]Value
	text   string
}

// Get returns the value extracted for a field name.
func (r *ParseResult) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Contains reports whether a field was captured.
func (r *ParseResult) Contains(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Values returns the extracted values keyed by field name. The returned
// map is a copy; the result itself stays immutable.
func (r *ParseResult) Values() map[string]Value {
	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Text returns the exact span of input the pattern matched: for Match
// that is the whole input, for Search and FindAll only the matched
// region, not the surrounding text.
func (r *ParseResult) Text() string {
	return r.text
}

// Len returns the number of captured fields.
func (r *ParseResult) Len() int {
	return len(r.values)
}
