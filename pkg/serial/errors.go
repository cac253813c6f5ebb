package serial

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrNilValue        = fmt.Errorf("serial: nil value: %w", fault.ErrArgumentNull)
	ErrNotSerializable = fmt.Errorf("serial: value is not serializable: %w", fault.ErrNotSerializable)
	ErrInvalidFormat   = fmt.Errorf("serial: malformed input: %w", fault.ErrInvalidFormat)
	ErrUnknownFormat   = fmt.Errorf("serial: unknown format: %w", fault.ErrNotSupported)
)
