package fault

// Kind is a classification tag for a failure. The Code groups kinds the same
// way for every package: argument problems use 0x0001 through 0x1000,
// operating system failures 0x2000, I/O 0x4000 and everything else 0x8000.
type Kind struct {
	Code uint32 // numeric classification
	Key  string // stable machine readable name (e.g. "invalid_format")
}

// Error implements the error interface.
func (k Kind) Error() string {
	return k.Key
}

// String returns the kind key.
func (k Kind) String() string {
	return k.Key
}

// KindNone is returned by KindOf for errors that carry no classification.
var KindNone = Kind{Code: 0, Key: "none"}

// Argument errors
var (
	ErrArgumentNull    = Kind{Code: 0x0001, Key: "argument_null"}
	ErrOutOfRange      = Kind{Code: 0x0002, Key: "out_of_range"}
	ErrInvalidFormat   = Kind{Code: 0x0003, Key: "invalid_format"}
	ErrOverflow        = Kind{Code: 0x0004, Key: "overflow"}
	ErrEmpty           = Kind{Code: 0x0005, Key: "empty"}
	ErrLengthMismatch  = Kind{Code: 0x0006, Key: "length_mismatch"}
	ErrNotSerializable = Kind{Code: 0x0007, Key: "not_serializable"}
	ErrNotSupported    = Kind{Code: 0x0008, Key: "not_supported"}
	ErrInvalidArgument = Kind{Code: 0x1000, Key: "invalid_argument"}
)

// Environment errors
var (
	ErrOS      = Kind{Code: 0x2000, Key: "os"}
	ErrIO      = Kind{Code: 0x4000, Key: "io"}
	ErrUnknown = Kind{Code: 0x8000, Key: "unknown"}
)

// Kinds lists every predefined classification.
func Kinds() []Kind {
	return []Kind{
		ErrArgumentNull, ErrOutOfRange, ErrInvalidFormat, ErrOverflow,
		ErrEmpty, ErrLengthMismatch, ErrNotSerializable, ErrNotSupported,
		ErrInvalidArgument, ErrOS, ErrIO, ErrUnknown,
	}
}

// NewKind creates a custom classification.
//
// Example:
//
//	var ErrTimeout = fault.NewKind(0x1001, "timeout")
func NewKind(code uint32, key string) Kind {
	return Kind{Code: code, Key: key}
}
