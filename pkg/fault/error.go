package fault

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Error is a classified failure. It records when it was raised and carries a
// random ID so a single occurrence can be traced through logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
	Time    time.Time
	ID      uuid.UUID
}

// New creates an Error of the given kind with a custom message.
func New(kind Kind, msg string) *Error {
	return &Error{
		Kind:    kind,
		Message: msg,
		Time:    time.Now().UTC(),
		ID:      uuid.New(),
	}
}

// Wrap classifies err. A nil err yields nil so results can be wrapped
// unconditionally.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	e := New(kind, "")
	e.Err = err
	return e
}

// Wrapf classifies err and attaches a formatted message.
func Wrapf(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	e := New(kind, fmt.Sprintf(format, args...))
	e.Err = err
	return e
}

// Error prefixes the kind key unless the cause already carries the kind,
// as package sentinels built on a Kind do.
func (e *Error) Error() string {
	if e.Err != nil && errors.Is(e.Err, e.Kind) {
		if e.Message != "" {
			return e.Message + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind.Key, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Kind.Key, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind.Key, e.Err)
	default:
		return e.Kind.Key
	}
}

// Unwrap exposes both the kind and the cause, so errors.Is matches either.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LogValue groups the classification fields for structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.Key),
		slog.String("id", e.ID.String()),
		slog.Time("time", e.Time),
	}
	if e.Message != "" {
		attrs = append(attrs, slog.String("message", e.Message))
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// KindOf returns the classification carried by err, or KindNone.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return KindNone
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}
