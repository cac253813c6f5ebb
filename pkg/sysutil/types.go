package sysutil

import "reflect"

// SameType reports whether A and B are the same type.
func SameType[A, B any]() bool {
	return reflect.TypeFor[A]() == reflect.TypeFor[B]()
}

// IsType reports whether the dynamic type of v is exactly T. A nil v is
// never of any type, and since a dynamic type is always concrete, IsType is
// false for every interface T.
func IsType[T any](v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v) == reflect.TypeFor[T]()
}
