package convert

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Parse reads s as a value of type T.
func Parse[T Number](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, ErrEmpty
	}

	typ := reflect.TypeFor[T]()
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return zero, classify(s, typ, err)
		}
		return T(v), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if neg, ok := strings.CutPrefix(s, "-"); ok && isDigits(neg) {
			if strings.Trim(neg, "0") == "" {
				return zero, nil
			}
			return zero, fmt.Errorf("%w: %q is negative for %s", ErrOverflow, s, typ)
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
		if err != nil {
			return zero, classify(s, typ, err)
		}
		return T(v), nil

	default:
		if !isDecimalFloat(s) {
			return zero, fmt.Errorf("%w: %q is not a %s", ErrInvalidFormat, s, typ)
		}
		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return zero, classify(s, typ, err)
		}
		return T(v), nil
	}
}

// MustParse is like Parse but panics on error.
func MustParse[T Number](s string) T {
	v, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseOrZero returns the parsed value or zero when s is not a valid T.
func ParseOrZero[T Number](s string) T {
	v, _ := Parse[T](s)
	return v
}

// ParseOr returns the parsed value or fallback when s is not a valid T.
func ParseOr[T Number](s string, fallback T) T {
	v, err := Parse[T](s)
	if err != nil {
		return fallback
	}
	return v
}

func parseTyped[T Number](s string, ignoreErrors bool) (T, error) {
	if ignoreErrors {
		return ParseOrZero[T](s), nil
	}
	return Parse[T](s)
}

// ToInt16 parses s as int16. With ignoreErrors the error is always nil and
// invalid input yields 0.
func ToInt16(s string, ignoreErrors bool) (int16, error) { return parseTyped[int16](s, ignoreErrors) }

// ToUint16 parses s as uint16.
func ToUint16(s string, ignoreErrors bool) (uint16, error) {
	return parseTyped[uint16](s, ignoreErrors)
}

// ToInt32 parses s as int32.
func ToInt32(s string, ignoreErrors bool) (int32, error) { return parseTyped[int32](s, ignoreErrors) }

// ToUint32 parses s as uint32.
func ToUint32(s string, ignoreErrors bool) (uint32, error) {
	return parseTyped[uint32](s, ignoreErrors)
}

// ToInt64 parses s as int64.
func ToInt64(s string, ignoreErrors bool) (int64, error) { return parseTyped[int64](s, ignoreErrors) }

// ToUint64 parses s as uint64.
func ToUint64(s string, ignoreErrors bool) (uint64, error) {
	return parseTyped[uint64](s, ignoreErrors)
}

// ToFloat32 parses s as float32.
func ToFloat32(s string, ignoreErrors bool) (float32, error) {
	return parseTyped[float32](s, ignoreErrors)
}

// ToFloat64 parses s as float64.
func ToFloat64(s string, ignoreErrors bool) (float64, error) {
	return parseTyped[float64](s, ignoreErrors)
}

func classify(s string, typ reflect.Type, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit %s", ErrOverflow, s, typ)
	}
	return fmt.Errorf("%w: %q is not a %s", ErrInvalidFormat, s, typ)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimalFloat rejects the hexadecimal, underscore and NaN/Inf forms that
// strconv accepts but plain decimal notation does not have.
func isDecimalFloat(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E':
		default:
			return false
		}
	}
	return digits
}
