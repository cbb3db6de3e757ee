package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// versionRegex matches gjs version output like "gjs 1.82.1".
var versionRegex = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// RuntimeInfo contains detected runtime interpreter information.
type RuntimeInfo struct {
	// Version is the interpreter version.
	Version string `json:"version"`

	// Path is the path to the interpreter binary.
	Path string `json:"path"`

	// Found indicates if the interpreter was found.
	Found bool `json:"found"`

	// Message provides additional detection information.
	Message string `json:"message,omitempty"`
}

// DetectRuntime finds the gjs interpreter the emitted bundle targets.
// Detection is informational only; the build does not require the runtime.
func DetectRuntime() RuntimeInfo {
	path, err := exec.LookPath("gjs")
	if err != nil {
		return RuntimeInfo{
			Found:   false,
			Message: "gjs interpreter not found in PATH",
		}
	}

	version, err := getRuntimeVersion(path)
	if err != nil {
		return RuntimeInfo{
			Path:    path,
			Found:   true,
			Message: "failed to get gjs version: " + err.Error(),
		}
	}

	return RuntimeInfo{
		Version: version,
		Path:    path,
		Found:   true,
	}
}

// getRuntimeVersion executes 'gjs --version' and extracts the version string.
func getRuntimeVersion(path string) (string, error) {
	cmd := exec.Command(path, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	match := versionRegex.FindString(strings.TrimSpace(out.String()))
	if match == "" {
		return "", fmt.Errorf("failed to parse gjs version from output: %s", out.String())
	}
	return match, nil
}

// String returns a human-readable runtime info string.
func (r RuntimeInfo) String() string {
	if !r.Found {
		return "  Interpreter: not found\n  Path:        -"
	}
	if r.Version == "" {
		return fmt.Sprintf("  Interpreter: unknown (%s)\n  Path:        %s", r.Message, r.Path)
	}
	return fmt.Sprintf("  Interpreter: gjs %s\n  Path:        %s", r.Version, r.Path)
}
