// Package reform provides runtime string formatting and inverse parsing
// driven by the format specification mini-language
//
//	[[fill]align][sign][z][#][0][width][grouping][.precision][type]
//
// embedded inside {field:spec} placeholders.
//
// Formatting renders typed values into text:
//
//	f, err := reform.NewFormatter("{name:>10} {value:05d}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := f.FormatMap(map[string]reform.Value{
//	    "name":  reform.String("Alice"),
//	    "value": reform.Int(42),
//	})
//	// out == "     Alice 00042"
//
// Parsing extracts typed values back out of text matching the same
// template:
//
//	p, err := reform.NewParser("{name} is {age:d} years old")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := p.Match("Alice is 30 years old")
//	if result != nil {
//	    age, _ := result.Get("age") // reform.Int(30)
//	}
//
// Template syntax: {name}, {name:spec}, {} (auto-numbered positional),
// {0} (explicit positional); {{ and }} are literal braces.
//
// Compiled Formatters and Parsers are immutable and safe for concurrent
// use; build each one once per distinct template and reuse it, or go
// through an Engine, which caches compiled objects by template.
package reform

// Engine compiles and caches Formatters and Parsers.
// Use New() to create a new engine instance.
type Engine struct {
	config     *Config
	formatters *patternCache
	parsers    *patternCache
}

// New creates a new engine with the global configuration.
func New() *Engine {
	return NewWithConfig(GetGlobalConfig())
}

// NewWithConfig creates a new engine with custom configuration.
func NewWithConfig(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	cacheConfig := CacheConfig{MaxSize: config.CacheMaxSize, TTL: config.CacheTTL}
	return &Engine{
		config:     config,
		formatters: newPatternCache(cacheConfig),
		parsers:    newPatternCache(cacheConfig),
	}
}

// Option represents a configuration option for the engine.
type Option func(*Config)

// WithConfig returns an option that replaces the engine configuration.
func WithConfig(config *Config) Option {
	return func(c *Config) {
		*c = *config
	}
}

// WithCacheSize returns an option that sets the cache size (0 disables caching).
func WithCacheSize(maxSize int) Option {
	return func(c *Config) {
		c.CacheMaxSize = maxSize
	}
}

// NewWithOptions creates a new engine with the specified options.
func NewWithOptions(opts ...Option) *Engine {
	config := GetGlobalConfig()
	for _, opt := range opts {
		opt(config)
	}
	return NewWithConfig(config)
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Formatter returns a compiled Formatter for the template, reusing a
// cached one when available.
func (e *Engine) Formatter(template string) (*Formatter, error) {
	if e.config.CacheMaxSize > 0 {
		if cached, ok := e.formatters.get(template); ok {
			return cached.(*Formatter), nil
		}
	}

	f, err := NewFormatter(template)
	if err != nil {
		return nil, err
	}
	if e.config.CacheMaxSize > 0 {
		e.formatters.set(template, f)
	}
	return f, nil
}

// Parser returns a compiled Parser for the template, reusing a cached
// one when available.
func (e *Engine) Parser(template string) (*Parser, error) {
	if e.config.CacheMaxSize > 0 {
		if cached, ok := e.parsers.get(template); ok {
			return cached.(*Parser), nil
		}
	}

	p, err := NewParser(template)
	if err != nil {
		return nil, err
	}
	if e.config.CacheMaxSize > 0 {
		e.parsers.set(template, p)
	}
	return p, nil
}

// ClearCache removes all compiled objects from the engine's caches.
func (e *Engine) ClearCache() {
	e.formatters.clear()
	e.parsers.clear()
}

// CacheSize returns the number of compiled objects currently cached.
func (e *Engine) CacheSize() int {
	return e.formatters.size() + e.parsers.size()
}

// DefaultEngine is the global default engine instance.
var DefaultEngine = New()

// Format compiles the template through the default engine and formats
// the given values.
func Format(template string, values map[string]Value) (string, error) {
	f, err := DefaultEngine.Formatter(template)
	if err != nil {
		return "", err
	}
	return f.FormatMap(values)
}

// FormatArgs compiles the template through the default engine and
// formats the given positional values.
func FormatArgs(template string, values ...Value) (string, error) {
	f, err := DefaultEngine.Formatter(template)
	if err != nil {
		return "", err
	}
	return f.FormatArgs(values...)
}

// Parse compiles the template through the default engine and matches the
// entire input against it. It returns (nil, nil) when the input does not
// match.
func Parse(template, text string) (*ParseResult, error) {
	p, err := DefaultEngine.Parser(template)
	if err != nil {
		return nil, err
	}
	return p.Match(text)
}

// Search compiles the template through the default engine and finds the
// first match within the input.
func Search(template, text string) (*ParseResult, error) {
	p, err := DefaultEngine.Parser(template)
	if err != nil {
		return nil, err
	}
	return p.Search(text)
}

// FindAll compiles the template through the default engine and returns
// every non-overlapping match within the input.
func FindAll(template, text string) ([]*ParseResult, error) {
	p, err := DefaultEngine.Parser(template)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text)
}
