// Package errors provides sentinel errors for the gjslink CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrRead indicates a compiled unit artifact could not be located or read.
	ErrRead = errors.New("read error")

	// ErrTranslate indicates an import or export statement the pipeline
	// does not recognize and cannot safely pass through.
	ErrTranslate = errors.New("translation error")

	// ErrOrder indicates the ordering policy contradicts a declared dependency.
	ErrOrder = errors.New("order violation")

	// ErrCollision indicates two units export the same bare symbol name.
	ErrCollision = errors.New("name collision")

	// ErrResource indicates a resource mount could not be mirrored.
	ErrResource = errors.New("resource copy error")

	// ErrValidation indicates a manifest or config schema validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a manifest, config, or file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for build diagnostics.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path and line number (optional).
	Location string

	// Unit is the unit name for pipeline errors (optional).
	Unit string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Unit != "" {
		b.WriteString("  Unit: ")
		b.WriteString(e.Unit)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
