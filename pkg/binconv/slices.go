package binconv

import "unicode/utf8"

// IsEmpty reports whether b is nil or has no elements.
func IsEmpty(b []byte) bool {
	return len(b) == 0
}

// Reverse returns a reversed copy of b.
func Reverse(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Join concatenates main and rest, skipping nil slices.
// Returns nil when the combined length is zero.
func Join(main []byte, rest ...[]byte) []byte {
	size := len(main)
	for _, b := range rest {
		size += len(b)
	}
	if size == 0 {
		return nil
	}

	out := make([]byte, 0, size)
	out = append(out, main...)
	for _, b := range rest {
		out = append(out, b...)
	}
	return out
}

// CharsBytes encodes runes as UTF-8. A nil slice yields nil.
func CharsBytes(chars []rune) []byte {
	if chars == nil {
		return nil
	}
	out := make([]byte, 0, len(chars))
	for _, r := range chars {
		out = utf8.AppendRune(out, r)
	}
	return out
}
