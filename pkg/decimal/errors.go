package decimal

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrEmpty          = fmt.Errorf("decimal: empty input: %w", fault.ErrEmpty)
	ErrInvalidFormat  = fmt.Errorf("decimal: invalid format: %w", fault.ErrInvalidFormat)
	ErrOverflow       = fmt.Errorf("decimal: value exceeds 96 bits: %w", fault.ErrOverflow)
	ErrLengthMismatch = fmt.Errorf("decimal: expected 1 or 16 bytes: %w", fault.ErrLengthMismatch)
)
