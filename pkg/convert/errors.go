package convert

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrEmpty         = fmt.Errorf("convert: empty input: %w", fault.ErrEmpty)
	ErrInvalidFormat = fmt.Errorf("convert: invalid format: %w", fault.ErrInvalidFormat)
	ErrOverflow      = fmt.Errorf("convert: value out of range: %w", fault.ErrOverflow)
)
