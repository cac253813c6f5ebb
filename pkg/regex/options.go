package regex

import (
	"time"

	"github.com/dlclark/regexp2"
)

// DefaultCacheSize is the number of compiled patterns an Engine keeps.
const DefaultCacheSize = 128

type matchOptions struct {
	flags   regexp2.RegexOptions
	timeout time.Duration
}

// Option adjusts a single match call.
type Option func(*matchOptions)

// IgnoreCase makes the match case-insensitive.
func IgnoreCase() Option {
	return func(o *matchOptions) { o.flags |= regexp2.IgnoreCase }
}

// Multiline makes ^ and $ match at line boundaries.
func Multiline() Option {
	return func(o *matchOptions) { o.flags |= regexp2.Multiline }
}

// Singleline makes . match new lines.
func Singleline() Option {
	return func(o *matchOptions) { o.flags |= regexp2.Singleline }
}

// WithTimeout bounds the time spent on one match. Zero or negative
// durations disable the limit.
func WithTimeout(d time.Duration) Option {
	return func(o *matchOptions) { o.timeout = d }
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithCacheSize sets the compile cache capacity. Non-positive values keep
// the default.
func WithCacheSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.cacheSize = n
		}
	}
}

// WithDefaultTimeout sets the timeout used when a call passes none.
func WithDefaultTimeout(d time.Duration) EngineOption {
	return func(e *Engine) { e.timeout = d }
}
