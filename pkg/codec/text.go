package codec

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// TextFormat names a character encoding.
type TextFormat uint8

const (
	UTF8 TextFormat = iota
	ASCII
	Unicode          // UTF-16 little-endian
	BigEndianUnicode // UTF-16 big-endian
	UTF32            // UTF-32 little-endian
	Windows1252
)

var formatNames = map[TextFormat]string{
	UTF8:             "utf8",
	ASCII:            "ascii",
	Unicode:          "utf16le",
	BigEndianUnicode: "utf16be",
	UTF32:            "utf32",
	Windows1252:      "windows1252",
}

func (f TextFormat) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TextFormat(%d)", uint8(f))
}

// ParseTextFormat resolves a name as returned by TextFormat.String.
func ParseTextFormat(name string) (TextFormat, error) {
	name = strings.ToLower(strings.ReplaceAll(name, "-", ""))
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	switch name {
	case "unicode", "utf16":
		return Unicode, nil
	case "cp1252":
		return Windows1252, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

func (f TextFormat) encoding() (encoding.Encoding, error) {
	switch f {
	case Unicode:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case BigEndianUnicode:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case UTF32:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case Windows1252:
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// EncodeText converts s to bytes in format f.
func EncodeText(s string, f TextFormat) ([]byte, error) {
	switch f {
	case UTF8:
		return []byte(s), nil
	case ASCII:
		out := make([]byte, 0, len(s))
		for _, r := range s {
			if r >= utf8.RuneSelf {
				r = '?'
			}
			out = append(out, byte(r))
		}
		return out, nil
	}

	enc, err := f.encoding()
	if err != nil {
		return nil, err
	}
	b, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return b, nil
}

// DecodeText converts b from format f to a string. Invalid sequences become
// the Unicode replacement character, or '?' for ASCII.
func DecodeText(b []byte, f TextFormat) (string, error) {
	switch f {
	case UTF8:
		return strings.ToValidUTF8(string(b), "\uFFFD"), nil
	case ASCII:
		out := make([]byte, len(b))
		for i, c := range b {
			if c >= utf8.RuneSelf {
				c = '?'
			}
			out[i] = c
		}
		return string(out), nil
	}

	enc, err := f.encoding()
	if err != nil {
		return "", err
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncodingFailed, err)
	}
	return string(s), nil
}
