package regex

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrUnknownTemplate = fmt.Errorf("regex: unknown template: %w", fault.ErrInvalidArgument)
	ErrInvalidPattern  = fmt.Errorf("regex: invalid pattern: %w", fault.ErrInvalidArgument)
	ErrTimeout         = fmt.Errorf("regex: match timed out: %w", fault.ErrOutOfRange)
)
