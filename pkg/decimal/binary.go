package decimal

import (
	"fmt"

	"github.com/dmitrymomot/ophite/pkg/binconv"
)

const (
	// Size is the length of the binary layout.
	Size = 16

	signMask  = 1 << 31
	scaleMask = 0x00FF0000
)

// Bytes returns the four little-endian words lo, mid, hi and flags, where
// flags holds the scale in bits 16-23 and the sign in bit 31.
func (d Decimal) Bytes() []byte {
	flags := uint32(d.scale) << 16
	if d.neg {
		flags |= signMask
	}
	return binconv.Join(
		binconv.Bytes(d.lo, binconv.LittleEndian),
		binconv.Bytes(d.mid, binconv.LittleEndian),
		binconv.Bytes(d.hi, binconv.LittleEndian),
		binconv.Bytes(flags, binconv.LittleEndian),
	)
}

// FromBytes decodes the layout written by Bytes.
func FromBytes(b []byte) (Decimal, error) {
	switch len(b) {
	case 0:
		return Zero, ErrEmpty
	case 1:
		if b[0] < '0' || b[0] > '9' {
			return Zero, fmt.Errorf("%w: byte %#x is not a digit", ErrInvalidFormat, b[0])
		}
		return FromInt64(int64(b[0] - '0')), nil
	case Size:
	default:
		return Zero, fmt.Errorf("%w: got %d", ErrLengthMismatch, len(b))
	}

	var words [4]uint32
	for i := range words {
		w, err := binconv.From[uint32](b[i*4:i*4+4], binconv.LittleEndian)
		if err != nil {
			return Zero, err
		}
		words[i] = w
	}

	flags := words[3]
	if flags&^(signMask|scaleMask) != 0 {
		return Zero, fmt.Errorf("%w: reserved flag bits set", ErrInvalidFormat)
	}
	scale := uint8((flags & scaleMask) >> 16)
	if scale > MaxScale {
		return Zero, fmt.Errorf("%w: scale %d", ErrInvalidFormat, scale)
	}

	return Decimal{
		lo:    words[0],
		mid:   words[1],
		hi:    words[2],
		scale: scale,
		neg:   flags&signMask != 0,
	}, nil
}
