package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrShape's message is part of the startup contract; return it unwrapped.
	ErrShape     = errors.New("reviews.json must contain { 'reviews': [] }")
	ErrMalformed = errors.New("reviews document is not valid UTF-8 JSON")

	ErrNotFound     = errors.New("not found")
	ErrUnhealthy    = errors.New("service reported unhealthy")
	ErrInconsistent = errors.New("service returned inconsistent review lists")
	ErrMismatch     = errors.New("served reviews differ from the expected collection")
)

// Rules reported by FieldValidationError.
const (
	RuleRequired = "required"
	RuleType     = "type"
	RuleMin      = "min"
	RuleMax      = "max"
)

// FieldValidationError reports the first constraint a review element broke.
type FieldValidationError struct {
	Index int    // position in the reviews array
	Field string // JSON field name; empty when the element is not an object
	Rule  string
	Param string // bound for min/max, expected type for type errors
	Err   error
}

func (e *FieldValidationError) Error() string {
	field := e.Field
	if field == "" {
		field = "(element)"
	}
	return fmt.Sprintf("reviews[%d].%s: %s", e.Index, field, e.reason())
}

func (e *FieldValidationError) Unwrap() error { return e.Err }

func (e *FieldValidationError) reason() string {
	switch e.Rule {
	case RuleRequired:
		return "field required"
	case RuleType:
		return "expected " + e.Param
	case RuleMin:
		return "must be >= " + e.Param
	case RuleMax:
		if e.Field == "rating" {
			return "must be <= " + e.Param
		}
		return "must be at most " + e.Param + " characters"
	default:
		return "failed " + e.Rule + " " + e.Param
	}
}
