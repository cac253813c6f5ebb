package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen counts runes, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// OneOf validates that value is one of allowed, compared case-insensitively.
func OneOf(field, value string, allowed ...string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if strings.EqualFold(strings.TrimSpace(value), a) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be one of: " + strings.Join(allowed, ", "),
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"allowed": allowed,
			},
		},
	}
}
