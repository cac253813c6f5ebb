package codec

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrymomot/ophite/pkg/convert"
)

const hexDigits = "0123456789abcdefABCDEF"

// HexOptions controls HexEncode output.
type HexOptions struct {
	Before string // written before every byte
	After  string // written after every byte
	Upper  bool
}

// IsHex reports whether s is a non-empty run of hex digits.
func IsHex(s string) bool {
	return s != "" && strings.Trim(s, hexDigits) == ""
}

// HexEncode renders b as hexadecimal text.
func HexEncode(b []byte, opts HexOptions) string {
	if len(b) == 0 {
		return ""
	}
	if opts.Before == "" && opts.After == "" {
		s := hex.EncodeToString(b)
		if opts.Upper {
			return strings.ToUpper(s)
		}
		return s
	}

	var sb strings.Builder
	sb.Grow(len(b) * (2 + len(opts.Before) + len(opts.After)))
	digits := "0123456789abcdef"
	if opts.Upper {
		digits = "0123456789ABCDEF"
	}
	for _, v := range b {
		sb.WriteString(opts.Before)
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0x0F])
		sb.WriteString(opts.After)
	}
	return sb.String()
}

// HexDecode parses hexadecimal text produced with the given start and end
// delimiters. Empty input yields an empty slice. A delimiter made only of hex
// digits cannot be told apart from the data and is rejected with
// ErrHexDelimiter.
func HexDecode(s, start, end string) ([]byte, error) {
	if IsHex(start) {
		return nil, fmt.Errorf("%w: start %q", ErrHexDelimiter, start)
	}
	if IsHex(end) {
		return nil, fmt.Errorf("%w: end %q", ErrHexDelimiter, end)
	}
	if s == "" {
		return []byte{}, nil
	}

	var tokens []string
	switch {
	case start != "" && strings.Contains(s, start):
		for _, part := range convert.Split(s, start) {
			if end != "" && strings.Contains(part, end) {
				part, _, _ = strings.Cut(part, end)
			}
			tokens = append(tokens, part)
		}
	case end != "" && strings.Contains(s, end):
		tokens = convert.Split(s, end)
	default:
		if len(s)%2 != 0 {
			s = "0" + s
		}
		tokens = make([]string, 0, len(s)/2)
		for i := 0; i < len(s); i += 2 {
			tokens = append(tokens, s[i:i+2])
		}
	}

	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		v, err := parseHexByte(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseHexByte(tok string) (byte, error) {
	digits := tok
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}
	if len(digits) == 0 || len(digits) > 2 || !IsHex(digits) {
		return 0, fmt.Errorf("%w: token %q", ErrInvalidHex, tok)
	}
	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: token %q", ErrInvalidHex, tok)
	}
	return byte(v), nil
}

// DecimalString renders every byte as a decimal number surrounded by before
// and after.
func DecimalString(b []byte, before, after string) string {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(before)
		sb.WriteString(strconv.Itoa(int(v)))
		sb.WriteString(after)
	}
	return sb.String()
}
