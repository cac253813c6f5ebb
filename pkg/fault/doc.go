// Package fault classifies the errors returned by the ophite packages.
//
// Every failure mode in the library maps to one Kind. A Kind is itself an
// error value, so callers can test for a classification with errors.Is
// regardless of how many layers of wrapping sit in between:
//
//	v, err := convert.Parse[int16]("10000000")
//	if errors.Is(err, fault.ErrOverflow) {
//	    // value did not fit into int16
//	}
//
// Error wraps an underlying cause with a Kind, the moment it was raised and
// a random identifier that makes the failure easy to find in logs. Error
// implements slog.LogValuer, so passing it to a structured logger emits all
// of those fields as a group.
//
// # Usage
//
//	import "github.com/dmitrymomot/ophite/pkg/fault"
//
//	if len(data) == 0 {
//	    return fault.New(fault.ErrEmpty, "no data to decode")
//	}
//	n, err := strconv.ParseInt(s, 10, 64)
//	if err != nil {
//	    return fault.Wrap(fault.ErrInvalidFormat, err)
//	}
//
// KindOf extracts the classification from any error chain and returns
// KindNone when the chain carries none.
package fault
