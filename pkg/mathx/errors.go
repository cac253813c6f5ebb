package mathx

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	// ErrOverflow is returned when a result does not fit into uint64.
	ErrOverflow = fmt.Errorf("mathx: result overflows uint64: %w", fault.ErrOverflow)

	ErrUnknownUnit = fmt.Errorf("mathx: unknown distance unit: %w", fault.ErrInvalidArgument)
)
