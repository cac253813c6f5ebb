package console

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrEOF          = fmt.Errorf("console: input exhausted: %w", fault.ErrIO)
	ErrRead         = fmt.Errorf("console: read failed: %w", fault.ErrIO)
	ErrWrite        = fmt.Errorf("console: write failed: %w", fault.ErrIO)
	ErrUnknownColor = fmt.Errorf("console: unknown color: %w", fault.ErrInvalidArgument)
)
