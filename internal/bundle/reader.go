package bundle

import (
	"fmt"
	"os"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/manifest"
)

// ReadError indicates a unit's compiled artifact is absent or unreadable.
type ReadError struct {
	Unit string
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unit %q: reading compiled artifact %s: %v", e.Unit, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return errors.ErrRead }

// readUnit loads one unit's compiled text from the build root.
func readUnit(m *manifest.Manifest, u manifest.Unit) (string, error) {
	path := m.UnitPath(u)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Unit: u.Name, Path: path, Err: err}
	}
	return string(data), nil
}
