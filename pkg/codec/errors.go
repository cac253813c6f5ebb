package codec

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrInvalidHex     = fmt.Errorf("codec: invalid hex: %w", fault.ErrInvalidFormat)
	ErrHexDelimiter   = fmt.Errorf("codec: hex delimiter made of hex digits: %w", fault.ErrInvalidArgument)
	ErrInvalidBase64  = fmt.Errorf("codec: invalid base64: %w", fault.ErrInvalidFormat)
	ErrUnknownFormat  = fmt.Errorf("codec: unknown text format: %w", fault.ErrNotSupported)
	ErrEncodingFailed = fmt.Errorf("codec: text encoding failed: %w", fault.ErrInvalidFormat)
)
