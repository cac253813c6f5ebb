package validator

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/ophite/pkg/convert"
)

// Numeric is the set of types accepted by the numeric rules.
type Numeric = convert.Number

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Field + ": " + e.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) and the matching fault kind
// succeed for any ValidationErrors.
func (ve ValidationErrors) Is(target error) bool {
	return errors.Is(ErrValidationFailed, target)
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether field failed at least one rule.
func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages recorded for field in rule order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve.GetErrors(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Fields lists the failed fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors inside err, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}
