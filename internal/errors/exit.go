package errors

import "errors"

// Exit codes for the CLI.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitReadError indicates a compiled unit artifact was missing.
	ExitReadError = 2

	// ExitTranslationError indicates an unrecognized import or reference.
	ExitTranslationError = 3

	// ExitOrderViolation indicates the ordering policy contradicts a dependency.
	ExitOrderViolation = 4

	// ExitNameCollision indicates two units export the same bare symbol.
	ExitNameCollision = 5

	// ExitResourceError indicates a resource mount could not be mirrored.
	ExitResourceError = 6

	// ExitValidationError indicates manifest or config validation failed.
	ExitValidationError = 7

	// ExitNotFound indicates a manifest, config, or file was not found.
	ExitNotFound = 8
)

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int

	// Printed records whether the command layer already printed the error,
	// so main does not print it twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for ExitError first
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrRead):
		return ExitReadError
	case errors.Is(err, ErrTranslate):
		return ExitTranslationError
	case errors.Is(err, ErrOrder):
		return ExitOrderViolation
	case errors.Is(err, ErrCollision):
		return ExitNameCollision
	case errors.Is(err, ErrResource):
		return ExitResourceError
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
