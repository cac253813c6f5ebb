// Package decimal implements a 96-bit fixed-point decimal value with the
// binary layout used by the .NET System.Decimal type.
//
// A Decimal is a sign, an unsigned 96-bit coefficient and a scale between 0
// and 28; its value is coefficient / 10^scale. The zero value is 0.
//
//	d, err := decimal.Parse("-12.50")
//	b := d.Bytes()                 // 16 bytes: lo, mid, hi, flags (little-endian)
//	back, err := decimal.FromBytes(b)
//
// Parse follows the invariant culture: an optional sign, digits and an
// optional fraction separated by '.'. Fractions longer than 28 digits are
// rounded half away from zero. A coefficient that does not fit into 96 bits
// after reducing the scale fails with ErrOverflow.
//
// FromBytes accepts the 16 byte layout produced by Bytes. A single byte is
// read as an ASCII digit, so FromBytes([]byte("7")) is 7.
package decimal
