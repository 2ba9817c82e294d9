// Package calcerr holds the error types shared by the design calculators.
//
// Input problems are reported as *InputValidationError at the boundary of the
// calculator that received them. Formula domain violations (a cube root of a
// negative ratio, a division by a zero silt factor) are reported as
// *ArithmeticDomainError. Failing an engineering check is not an error and is
// carried as a verdict in the result types instead.
package calcerr

import "fmt"

// InputValidationError represents a missing or out-of-range input parameter
type InputValidationError struct {
	Field  string  // parameter name as it appears in the input bundle
	Value  float64 // offending value
	Reason string
}

func (e *InputValidationError) Error() string {
	return fmt.Sprintf("invalid %s = %g: %s", e.Field, e.Value, e.Reason)
}

// ArithmeticDomainError represents a formula evaluated outside its domain
type ArithmeticDomainError struct {
	Formula string
	Reason  string
}

func (e *ArithmeticDomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Formula, e.Reason)
}

// Positive returns an InputValidationError unless v > 0
func Positive(field string, v float64) error {
	if v > 0 {
		return nil
	}
	return &InputValidationError{Field: field, Value: v, Reason: "must be positive"}
}

// NonNegative returns an InputValidationError unless v >= 0
func NonNegative(field string, v float64) error {
	if v >= 0 {
		return nil
	}
	return &InputValidationError{Field: field, Value: v, Reason: "must not be negative"}
}

// Angle returns an InputValidationError unless 0 <= deg < 90
func Angle(field string, deg float64) error {
	if deg >= 0 && deg < 90 {
		return nil
	}
	return &InputValidationError{Field: field, Value: deg, Reason: "must lie in [0, 90) degrees"}
}

// First returns the first non-nil error
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
