package validator

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

// ErrValidationFailed matches every ValidationErrors value.
var ErrValidationFailed = fmt.Errorf("validation failed: %w", fault.ErrInvalidArgument)
