// Package errors provides custom error types for the fleetrecon system.
// These errors enable programmatic error checking at the CLI boundary while
// keeping the comparison core error-free: comparators and derivers classify
// every record into some bucket and never fail for data-shape reasons.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Join aggregates multiple errors into one.
// It's an alias for the standard library errors.Join.
var Join = errors.Join

// Common sentinel errors for the fleetrecon system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingInput indicates that a required input file was not supplied
	ErrMissingInput = errors.New("missing required input")

	// ErrParseFailed indicates that an input file could not be parsed
	ErrParseFailed = errors.New("parse failed")
)

// ParseError represents a failure to read or parse one input workbook.
// A parse failure of any input aborts the whole reconciliation; there are
// no partial results.
type ParseError struct {
	Input string // logical input name: "locavia", "salesforce", "base-ids", "product-options"
	Path  string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s input %s: %v", e.Input, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to parse %s input: %v", e.Input, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailed
}

// NewParseError creates a new ParseError
func NewParseError(input, path string, err error) *ParseError {
	return &ParseError{Input: input, Path: path, Err: err}
}

// MissingInputError is returned before any parsing begins when one or more
// of the required input files was not supplied. It names every missing
// input, not just the first.
type MissingInputError struct {
	Inputs []string
}

// Error implements the error interface
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required inputs: %s", strings.Join(e.Inputs, ", "))
}

// Is implements errors.Is support
func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}

// NewMissingInputError creates a new MissingInputError
func NewMissingInputError(inputs ...string) *MissingInputError {
	return &MissingInputError{Inputs: inputs}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// Helper functions for error checking

// IsParseError checks if an error is a parse failure
func IsParseError(err error) bool {
	return errors.Is(err, ErrParseFailed)
}

// IsMissingInput checks if an error reports missing required inputs
func IsMissingInput(err error) bool {
	return errors.Is(err, ErrMissingInput)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
