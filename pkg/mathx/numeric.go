package mathx

import "math"

// Number represents numeric types that support basic arithmetic operations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed represents signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Clamp constrains value to [lo, hi].
func Clamp[T Number](value, lo, hi T) T {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Abs returns the absolute value.
func Abs[T Signed](value T) T {
	if value < 0 {
		return -value
	}
	return value
}

// RoundTo rounds value to the given number of decimal places.
func RoundTo[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}
	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}

// SafeDivide returns numerator/denominator, or fallback when denominator is zero.
func SafeDivide[T Number](numerator, denominator, fallback T) T {
	if denominator == 0 {
		return fallback
	}
	return numerator / denominator
}

// Normalize maps value from [fromMin, fromMax] onto [toMin, toMax].
func Normalize[T Float](value, fromMin, fromMax, toMin, toMax T) T {
	if fromMax == fromMin {
		return toMin
	}
	ratio := (value - fromMin) / (fromMax - fromMin)
	return toMin + ratio*(toMax-toMin)
}
