package binconv

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Order selects the byte order used for encoding and decoding.
type Order uint8

const (
	// BigEndian stores the most significant byte first.
	BigEndian Order = iota
	// LittleEndian stores the least significant byte first.
	LittleEndian
	// Native uses the byte order of the running platform.
	Native
)

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// ParseOrder accepts "big", "little" and "native", with or without the
// "-endian" suffix.
func ParseOrder(name string) (Order, error) {
	n := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "-endian")
	switch n {
	case "big", "be":
		return BigEndian, nil
	case "little", "le":
		return LittleEndian, nil
	case "native":
		return Native, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

func (o Order) byteOrder() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case Native:
		return binary.NativeEndian
	default:
		return binary.BigEndian
	}
}

// IsNativeLittleEndian reports whether the platform stores values little-endian.
func IsNativeLittleEndian() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}
