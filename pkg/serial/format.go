package serial

import (
	"fmt"
	"strings"
)

// Format selects the wire format.
type Format uint8

const (
	Binary Format = iota
	SOAP
	JSON
	YAML
	TOML
)

var formatNames = [...]string{"binary", "soap", "json", "yaml", "toml"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat resolves a name returned by Format.String.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if name == "gob" {
		return Binary, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}
