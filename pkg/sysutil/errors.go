package sysutil

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/fault"
)

var (
	ErrInvalidPID       = fmt.Errorf("sysutil: invalid process id: %w", fault.ErrOutOfRange)
	ErrEmptyName        = fmt.Errorf("sysutil: empty name: %w", fault.ErrArgumentNull)
	ErrNilFS            = fmt.Errorf("sysutil: nil filesystem: %w", fault.ErrArgumentNull)
	ErrKillFailed       = fmt.Errorf("sysutil: cannot kill process: %w", fault.ErrOS)
	ErrNotSupported     = fmt.Errorf("sysutil: not supported on this platform: %w", fault.ErrNotSupported)
	ErrResourceNotFound = fmt.Errorf("sysutil: resource not found: %w", fault.ErrIO)
	ErrResourceRead     = fmt.Errorf("sysutil: cannot read resource: %w", fault.ErrIO)
)
