package config

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrParsingConfig  = fmt.Errorf("config: failed to parse environment variables: %w", fault.ErrInvalidFormat)
	ErrNilPointer     = fmt.Errorf("config: nil pointer provided to config loader: %w", fault.ErrArgumentNull)
	ErrLoadingEnvFile = fmt.Errorf("config: failed to load env file: %w", fault.ErrIO)
	ErrInvalidSetting = fmt.Errorf("config: invalid setting: %w", fault.ErrOutOfRange)
)
