package convert

import (
	"reflect"
	"strconv"
	"strings"
)

// HexValue reads up to 16 hexadecimal digits as a two's complement int64,
// so "FFFFFFFFFFFFFFFF" is -1. Prefixes and signs are not accepted.
func HexValue(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	u, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, classify(s, reflect.TypeFor[int64](), err)
	}
	return int64(u), nil
}

// Hex formats n as two's complement hexadecimal without padding.
func Hex(n int64, upper bool) string {
	s := strconv.FormatUint(uint64(n), 16)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}
