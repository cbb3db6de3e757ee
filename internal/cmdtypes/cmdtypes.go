// Package cmdtypes provides shared types for the command sub-packages
// (internal/cmd/bundle, internal/cmd/config) without import cycles.
package cmdtypes

import (
	"github.com/gjslink/cli/internal/config"
	gerrors "github.com/gjslink/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every
// sub-command constructor.
type GlobalConfig struct {
	Config     *config.Config
	ConfigPath string // resolved --config path
	Verbose    bool
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = gerrors.ExitSuccess
	ExitGeneralError     = gerrors.ExitGeneralError
	ExitReadError        = gerrors.ExitReadError
	ExitTranslationError = gerrors.ExitTranslationError
	ExitOrderViolation   = gerrors.ExitOrderViolation
	ExitNameCollision    = gerrors.ExitNameCollision
	ExitResourceError    = gerrors.ExitResourceError
	ExitValidationError  = gerrors.ExitValidationError
	ExitNotFound         = gerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError so command code can
// use cmdtypes.ExitError while sharing one underlying type everywhere.
type ExitError = gerrors.ExitError

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return gerrors.NewExitError(err, code)
}
