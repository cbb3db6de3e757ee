package bundle

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/config"
	gerrors "github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/testutil"
)

func globals() *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{Config: config.DefaultConfig()}
}

func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func singleUnitProject(t *testing.T) string {
	t.Helper()
	return testutil.BundleProject(t, `name: demo
units:
  - name: app
order: [app]
`, map[string]string{
		"build/app.js": "const GLib = require(\"gi://GLib\");\nprint(GLib.get_user_name());\n",
	})
}

func TestBuildCommand(t *testing.T) {
	root := singleUnitProject(t)

	out, err := runCmd(t, NewBuildCmd(globals()), root)
	require.NoError(t, err)
	assert.Contains(t, out, "bundle demo")

	script := testutil.ReadFile(t, filepath.Join(root, "dist", "main.js"))
	assert.Contains(t, script, "const GLib = imports.gi.GLib;")
}

func TestBuildCommandJSONReport(t *testing.T) {
	root := singleUnitProject(t)

	out, err := runCmd(t, NewBuildCmd(globals()), root, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "demo"`)
	assert.Contains(t, out, `"digest": "sha256:`)
}

func TestBuildCommandInvalidFormat(t *testing.T) {
	_, err := runCmd(t, NewBuildCmd(globals()), "-o", "csv")
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, cmdtypes.ExitGeneralError, exitErr.Code)
}

func TestBuildCommandMissingManifestExitCode(t *testing.T) {
	_, err := runCmd(t, NewBuildCmd(globals()), t.TempDir())
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, gerrors.ExitNotFound, exitErr.Code)
	assert.True(t, exitErr.Printed)
}

func TestVetCommand(t *testing.T) {
	root := singleUnitProject(t)

	out, err := runCmd(t, NewVetCmd(globals()), root)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	// vet never writes the artifact
	assert.NoDirExists(t, filepath.Join(root, "dist"))
}

func TestVetCommandOrderViolationExitCode(t *testing.T) {
	root := testutil.BundleProject(t, `name: demo
units:
  - name: a
  - name: b
    deps: [a]
order: [b, a]
`, nil)

	_, err := runCmd(t, NewVetCmd(globals()), root)
	require.Error(t, err)

	var exitErr *cmdtypes.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, gerrors.ExitOrderViolation, exitErr.Code)
}

func TestInitCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my-app")

	out, err := runCmd(t, NewInitCmd(globals()), dir)
	require.NoError(t, err)
	assert.Contains(t, out, "created")
	assert.FileExists(t, filepath.Join(dir, "bundle.yaml"))
}
