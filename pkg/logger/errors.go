package logger

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrInvalidFormat = fmt.Errorf("logger: invalid log format: %w", fault.ErrInvalidArgument)
	ErrInvalidLevel  = fmt.Errorf("logger: invalid log level: %w", fault.ErrInvalidArgument)
)
