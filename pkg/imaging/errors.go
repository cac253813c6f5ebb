package imaging

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrEmpty          = fmt.Errorf("imaging: empty input: %w", fault.ErrEmpty)
	ErrNilImage       = fmt.Errorf("imaging: nil image: %w", fault.ErrArgumentNull)
	ErrInvalidImage   = fmt.Errorf("imaging: cannot decode image: %w", fault.ErrInvalidFormat)
	ErrUnknownFormat  = fmt.Errorf("imaging: unknown image format: %w", fault.ErrNotSupported)
	ErrEmptyContent   = fmt.Errorf("imaging: QR content cannot be empty: %w", fault.ErrEmpty)
	ErrQRCodeFailed   = fmt.Errorf("imaging: failed to generate QR code: %w", fault.ErrInvalidArgument)
	ErrEncodingFailed = fmt.Errorf("imaging: failed to encode image: %w", fault.ErrIO)
)
