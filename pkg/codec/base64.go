package codec

import (
	"encoding/base64"
	"fmt"
)

// Base64Encode returns the standard padded base64 form of b.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode reverses Base64Encode. Empty input yields an empty slice.
func Base64Decode(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return b, nil
}
