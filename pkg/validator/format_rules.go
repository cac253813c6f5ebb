package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/ophite/pkg/codec"
	"github.com/dmitrymomot/ophite/pkg/convert"
	"github.com/dmitrymomot/ophite/pkg/regex"
)

// MatchesTemplate validates value against one of the regex templates.
// Pattern errors and match timeouts count as a failed check.
func MatchesTemplate(field, value string, t regex.Template) Rule {
	return Rule{
		Check: func() bool {
			return regex.IsMatch(value, t)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", t),
			TranslationKey: "validation.template",
			TranslationValues: map[string]any{
				"field":    field,
				"template": t.String(),
			},
		},
	}
}

// MatchesPattern validates value against a .NET-style regular expression.
func MatchesPattern(field, value, pattern string) Rule {
	return Rule{
		Check: func() bool {
			ok, err := regex.MatchPattern(value, pattern)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": pattern,
			},
		},
	}
}

// Parses validates that value can be parsed as T.
func Parses[T Numeric](field, value string) Rule {
	typ := reflect.TypeFor[T]().String()
	return Rule{
		Check: func() bool {
			_, err := convert.Parse[T](value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid " + typ,
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
				"type":  typ,
			},
		},
	}
}

// IsHex validates that value is a non-empty run of hex digits.
func IsHex(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return codec.IsHex(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be hexadecimal",
			TranslationKey: "validation.hex",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsBase64 validates that value is standard padded base64.
func IsBase64(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := codec.Base64Decode(value)
			return value != "" && err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be base64",
			TranslationKey: "validation.base64",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
