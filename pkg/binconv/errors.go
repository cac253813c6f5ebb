package binconv

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	// ErrEmpty is returned when decoding an empty or nil slice.
	ErrEmpty = fmt.Errorf("binconv: empty input: %w", fault.ErrEmpty)

	// ErrLengthMismatch is returned when the slice length differs from the target size.
	ErrLengthMismatch = fmt.Errorf("binconv: length mismatch: %w", fault.ErrLengthMismatch)

	// ErrNotFixedSize is returned by the struct helpers for types without a fixed layout.
	ErrNotFixedSize = fmt.Errorf("binconv: type has no fixed size: %w", fault.ErrNotSupported)

	ErrUnknownOrder = fmt.Errorf("binconv: unknown byte order: %w", fault.ErrInvalidArgument)
)
