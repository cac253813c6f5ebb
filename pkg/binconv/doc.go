// Package binconv converts fixed-width numeric values to and from their byte
// representation.
//
// Values are encoded big-endian by default, independent of the platform the
// program runs on. Pass Native to keep the platform byte order instead:
//
//	b := binconv.Bytes(int32(100), binconv.BigEndian) // [0 0 0 100]
//	v, err := binconv.From[int32](b, binconv.BigEndian)
//
// Decoding never mutates its input and requires the slice length to match
// the size of the target type exactly; shorter or longer input fails with
// ErrLengthMismatch. The sentinels wrap the matching fault kinds.
//
// The package also offers a handful of byte slice helpers (Join, Reverse)
// and fixed-layout struct marshalling built on encoding/binary.
package binconv
