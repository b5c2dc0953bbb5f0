package models

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationMessages flattens an ozzo validation result into one
// human-readable message per failing field, sorted by field name so callers
// see a stable list. Returns nil if err is not a field-level validation error.
func ValidationMessages(err error) []string {
	fieldErrors, ok := err.(validation.Errors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = fieldErrors[field].Error()
	}
	return messages
}
