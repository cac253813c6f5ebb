package logger

import (
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Kind records the fault classification of err under the key "kind".
// Unclassified and nil errors return an empty Attr.
func Kind(err error) slog.Attr {
	k := fault.KindOf(err)
	if k == fault.KindNone {
		return slog.Attr{}
	}
	return slog.String("kind", k.Key)
}

// Input records raw user input under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Attempt records a 1-based attempt number under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Operation records the operation name under the key "op".
func Operation(name string) slog.Attr {
	return slog.String("op", name)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
