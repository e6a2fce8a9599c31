// Package reform provides custom error types for better error handling and reporting.
package reform

import (
	"errors"
	"fmt"
)

// ErrNoMatch is an error-shaped "no match" for callers that need one.
// The library itself reports "no match" as a nil result, not an error;
// the sentinel exists so such callers can wrap the nil case in a single
// well-known error value.
var ErrNoMatch = errors.New("no match found")

// SpecSyntaxError represents an error in the format specification mini-language
// or in the surrounding template syntax.
type SpecSyntaxError struct {
	Message  string
	Spec     string
	Position int
}

func (e *SpecSyntaxError) Error() string {
	if e.Spec != "" {
		return fmt.Sprintf("invalid format specification %q at position %d: %s", e.Spec, e.Position, e.Message)
	}
	return fmt.Sprintf("invalid format specification: %s", e.Message)
}

// NewSpecSyntaxError creates a new spec syntax error with position information
func NewSpecSyntaxError(message, spec string, position int) error {
	return &SpecSyntaxError{
		Message:  message,
		Spec:     spec,
		Position: position,
	}
}

// WidthError represents an invalid width or precision value
type WidthError struct {
	Value string
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("invalid width or precision: %s", e.Value)
}

// NewWidthError creates a new width error
func NewWidthError(value string) error {
	return &WidthError{Value: value}
}

// FieldNameError represents an invalid field name in a template
type FieldNameError struct {
	Name string
}

func (e *FieldNameError) Error() string {
	return fmt.Sprintf("invalid field name: %q", e.Name)
}

// NewFieldNameError creates a new field name error
func NewFieldNameError(name string) error {
	return &FieldNameError{Name: name}
}

// MissingFieldError represents a formatting request for a field the
// value source does not provide
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// NewMissingFieldError creates a new missing field error
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// ConversionError represents a failed conversion between a value and the
// representation a format specification requires
type ConversionError struct {
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("type conversion error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("type conversion error: %s", e.Message)
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// NewConversionError creates a new conversion error
func NewConversionError(message string, cause error) error {
	return &ConversionError{
		Message: message,
		Cause:   cause,
	}
}

// PatternError represents a failure to compile a template into a matcher.
// It wraps the underlying regexp engine's diagnostics.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("pattern compilation error for %q: %v", e.Pattern, e.Cause)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}

// NewPatternError creates a new pattern compilation error
func NewPatternError(pattern string, cause error) error {
	return &PatternError{
		Pattern: pattern,
		Cause:   cause,
	}
}

// IsSpecSyntaxError checks if an error is a spec syntax error
func IsSpecSyntaxError(err error) bool {
	var target *SpecSyntaxError
	return errors.As(err, &target)
}

// IsWidthError checks if an error is a width error
func IsWidthError(err error) bool {
	var target *WidthError
	return errors.As(err, &target)
}

// IsFieldNameError checks if an error is a field name error
func IsFieldNameError(err error) bool {
	var target *FieldNameError
	return errors.As(err, &target)
}

// IsMissingFieldError checks if an error is a missing field error
func IsMissingFieldError(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

// IsConversionError checks if an error is a conversion error
func IsConversionError(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}

// IsPatternError checks if an error is a pattern compilation error
func IsPatternError(err error) bool {
	var target *PatternError
	return errors.As(err, &target)
}
