package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitGeneralError},
		{"read", fmt.Errorf("unit: %w", ErrRead), ExitReadError},
		{"translate", fmt.Errorf("unit: %w", ErrTranslate), ExitTranslationError},
		{"order", fmt.Errorf("policy: %w", ErrOrder), ExitOrderViolation},
		{"collision", fmt.Errorf("symbol: %w", ErrCollision), ExitNameCollision},
		{"resource", fmt.Errorf("mount: %w", ErrResource), ExitResourceError},
		{"validation", NewValidationError("bad manifest", "bundle.yaml", ""), ExitValidationError},
		{"not found", NewNotFoundError("no manifest", "bundle.yaml", ""), ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeFromExitError(t *testing.T) {
	err := NewExitError(errors.New("already classified"), ExitNameCollision)
	assert.Equal(t, ExitNameCollision, ExitCodeFromError(err))
}

func TestExitErrorWrapsCause(t *testing.T) {
	cause := fmt.Errorf("policy: %w", ErrOrder)
	err := NewExitError(cause, ExitOrderViolation)

	assert.Equal(t, cause.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrOrder))
}
