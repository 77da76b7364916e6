// Package validate holds the per-entity structural validators. A validator
// checks a fully constructed record before any write commits: required fields,
// enumerated values, numeric bounds, and well-formed references. Existence of
// referenced records is deliberately not checked here; that is a caller
// policy, not a store invariant.
package validate

import "fmt"

// ValidationError describes a single rejected field. A failing validation
// performs no mutation; the record is simply not written.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

// failf builds a ValidationError for a field.
func failf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func required(field, value string) error {
	if value == "" {
		return failf(field, "is required")
	}
	return nil
}

func ratingInRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return failf(field, "must be between %g and %g, got %g", min, max, value)
	}
	return nil
}

func nonNegative(field string, value float64) error {
	if value < 0 {
		return failf(field, "must not be negative, got %g", value)
	}
	return nil
}
