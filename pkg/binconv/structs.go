package binconv

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// EncodeStruct writes a fixed-layout value (numbers, bools, arrays and
// structs of those) in the given byte order.
func EncodeStruct(v any, order Order) ([]byte, error) {
	if binary.Size(v) < 0 {
		return nil, ErrNotFixedSize
	}
	var buf bytes.Buffer
	if err := binary.Write(&buf, order.byteOrder(), v); err != nil {
		return nil, fmt.Errorf("binconv: encode %T: %w", v, err)
	}
	return buf.Bytes(), nil
}

// DecodeStruct reads a fixed-layout value of type T from b.
// Trailing bytes beyond the size of T are rejected.
func DecodeStruct[T any](b []byte, order Order) (T, error) {
	var v T
	size := binary.Size(&v)
	if size < 0 {
		return v, ErrNotFixedSize
	}
	if len(b) == 0 {
		return v, ErrEmpty
	}
	if len(b) != size {
		return v, fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(b), size)
	}
	if err := binary.Read(bytes.NewReader(b), order.byteOrder(), &v); err != nil {
		return v, fmt.Errorf("binconv: decode %T: %w", v, err)
	}
	return v, nil
}
