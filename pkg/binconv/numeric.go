package binconv

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// Fixed lists the numeric types with a fixed binary width.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 |
		~int64 | ~uint64 | ~float32 | ~float64
}

// Size returns the encoded width of T in bytes.
func Size[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Bytes encodes v using the given byte order.
func Bytes[T Fixed](v T, order Order) []byte {
	out := make([]byte, Size[T]())
	// Cannot fail: out has exactly the width of a fixed-size value.
	_, _ = binary.Encode(out, order.byteOrder(), v)
	return out
}

// BigEndianBytes is shorthand for Bytes(v, BigEndian).
func BigEndianBytes[T Fixed](v T) []byte {
	return Bytes(v, BigEndian)
}

// From decodes b into T. The length of b must equal Size[T]().
func From[T Fixed](b []byte, order Order) (T, error) {
	var v T
	if len(b) == 0 {
		return v, ErrEmpty
	}
	if size := Size[T](); len(b) != size {
		return v, fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(b), size)
	}
	if _, err := binary.Decode(b, order.byteOrder(), &v); err != nil {
		return v, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}
	return v, nil
}

// FromBigEndian is shorthand for From[T](b, BigEndian).
func FromBigEndian[T Fixed](b []byte) (T, error) {
	return From[T](b, BigEndian)
}

// BoolBytes encodes a boolean as a single byte.
func BoolBytes(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// ToBool reports whether the first byte of b is non-zero.
func ToBool(b []byte) (bool, error) {
	if len(b) == 0 {
		return false, ErrEmpty
	}
	return b[0] != 0, nil
}
