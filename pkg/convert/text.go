package convert

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return s == ""
}

// ReadTo returns the prefix of s up to the first r. With inclusive the
// delimiter itself is kept. Reports false when s is empty or has no r.
func ReadTo(s string, r rune, inclusive bool) (string, bool) {
	if s == "" {
		return "", false
	}
	i := strings.IndexRune(s, r)
	if i < 0 {
		return "", false
	}
	if inclusive {
		i += utf8.RuneLen(r)
	}
	return s[:i], true
}

// ReadN returns the first n characters of s.
// Reports false when s is empty or n is outside [0, len].
func ReadN(s string, n int) (string, bool) {
	if s == "" || n < 0 {
		return "", false
	}
	for i := range s {
		if n == 0 {
			return s[:i], true
		}
		n--
	}
	if n == 0 {
		return s, true
	}
	return "", false
}

// Split splits s around sep and drops empty entries. An empty s gives an
// empty slice; an empty sep gives s itself.
func Split(s, sep string) []string {
	if s == "" {
		return []string{}
	}
	if sep == "" {
		return []string{s}
	}
	parts := strings.Split(s, sep)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TrimLeadingZeros removes every leading '0', so "000" becomes "".
func TrimLeadingZeros(s string) string {
	return strings.TrimLeft(s, "0")
}

// FormatBool renders v with the given words, defaulting to "True" and "False".
func FormatBool(v bool, yes, no string) string {
	if v {
		if yes == "" {
			return "True"
		}
		return yes
	}
	if no == "" {
		return "False"
	}
	return no
}

// Contains reports whether list holds s.
func Contains(list []string, s string, ignoreCase bool) bool {
	for _, item := range list {
		if item == s || (ignoreCase && strings.EqualFold(item, s)) {
			return true
		}
	}
	return false
}

// JoinStrings concatenates list with sep between the elements.
func JoinStrings(list []string, sep rune) string {
	return strings.Join(list, string(sep))
}

// IsBlank reports whether s contains only white space.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
