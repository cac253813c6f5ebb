package regex

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine compiles and caches expressions. It is safe for concurrent use.
type Engine struct {
	cache     *compileCache
	cacheSize int
	timeout   time.Duration
}

// New creates an Engine.
func New(opts ...EngineOption) *Engine {
	e := &Engine{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(e)
	}
	e.cache = newCompileCache(e.cacheSize)
	return e
}

var std = New()

// Default returns the Engine behind the package level functions.
func Default() *Engine {
	return std
}

// CacheLen reports how many compiled patterns are cached.
func (e *Engine) CacheLen() int {
	return e.cache.len()
}

func (e *Engine) compile(pattern string, flags regexp2.RegexOptions, opts []Option) (*regexp2.Regexp, error) {
	mo := matchOptions{flags: flags, timeout: e.timeout}
	for _, opt := range opts {
		opt(&mo)
	}

	key := cacheKey{pattern: pattern, flags: mo.flags, timeout: mo.timeout}
	if re, ok := e.cache.get(key); ok {
		return re, nil
	}

	re, err := regexp2.Compile(pattern, mo.flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	if mo.timeout > 0 {
		re.MatchTimeout = mo.timeout
	}
	e.cache.put(key, re)
	return re, nil
}

// MatchPattern reports whether text matches pattern.
func (e *Engine) MatchPattern(text, pattern string, opts ...Option) (bool, error) {
	re, err := e.compile(pattern, regexp2.None, opts)
	if err != nil {
		return false, err
	}
	ok, err := re.MatchString(text)
	if err != nil {
		return false, matchError(err)
	}
	return ok, nil
}

// Match reports whether text matches the template.
func (e *Engine) Match(text string, t Template, opts ...Option) (bool, error) {
	pattern, ok := templatePatterns[t]
	if !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownTemplate, int(t))
	}
	return e.MatchPattern(text, pattern, opts...)
}

// Modify applies the rewrite m to text.
func (e *Engine) Modify(text string, m Modification, opts ...Option) (string, error) {
	rw, ok := modifications[m]
	if !ok {
		return "", fmt.Errorf("%w: modification %d", ErrUnknownTemplate, int(m))
	}
	return e.Replace(text, rw.pattern, rw.replacement, opts...)
}

// Replace substitutes every match of pattern. The replacement uses .NET
// syntax: $0 is the whole match, $1 the first group.
func (e *Engine) Replace(text, pattern, replacement string, opts ...Option) (string, error) {
	re, err := e.compile(pattern, regexp2.None, opts)
	if err != nil {
		return "", err
	}
	out, err := re.Replace(text, replacement, -1, -1)
	if err != nil {
		return "", matchError(err)
	}
	return out, nil
}

// Extract returns every occurrence of x in text.
func (e *Engine) Extract(text string, x Extraction, opts ...Option) ([]string, error) {
	pattern, ok := extractions[x]
	if !ok {
		return nil, fmt.Errorf("%w: extraction %d", ErrUnknownTemplate, int(x))
	}
	return e.FindAll(text, pattern, opts...)
}

// FindAll returns the text of every match of pattern. Patterns run in
// multiline mode.
func (e *Engine) FindAll(text, pattern string, opts ...Option) ([]string, error) {
	re, err := e.compile(pattern, regexp2.Multiline, opts)
	if err != nil {
		return nil, err
	}

	out := []string{}
	m, err := re.FindStringMatch(text)
	for m != nil && err == nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	if err != nil {
		return nil, matchError(err)
	}
	return out, nil
}

// regexp2 reports timeouts only through the error text.
func matchError(err error) error {
	if strings.Contains(err.Error(), "timeout") {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
}

// Match reports whether text matches the template using the default Engine.
func Match(text string, t Template, opts ...Option) (bool, error) {
	return std.Match(text, t, opts...)
}

// IsMatch is like Match but treats every error as a mismatch.
func IsMatch(text string, t Template, opts ...Option) bool {
	ok, err := std.Match(text, t, opts...)
	return err == nil && ok
}

// MatchPattern reports whether text matches pattern using the default Engine.
func MatchPattern(text, pattern string, opts ...Option) (bool, error) {
	return std.MatchPattern(text, pattern, opts...)
}

// Modify applies m to text using the default Engine.
func Modify(text string, m Modification, opts ...Option) (string, error) {
	return std.Modify(text, m, opts...)
}

// Replace substitutes every match of pattern using the default Engine.
func Replace(text, pattern, replacement string, opts ...Option) (string, error) {
	return std.Replace(text, pattern, replacement, opts...)
}

// Extract returns every occurrence of x in text using the default Engine.
func Extract(text string, x Extraction, opts ...Option) ([]string, error) {
	return std.Extract(text, x, opts...)
}

// FindAll returns every match of pattern using the default Engine.
func FindAll(text, pattern string, opts ...Option) ([]string, error) {
	return std.FindAll(text, pattern, opts...)
}
