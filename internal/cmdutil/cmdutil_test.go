package cmdutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gjslink/cli/internal/bundle"
	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/config"
	"github.com/gjslink/cli/internal/output"
	"github.com/gjslink/cli/internal/testutil"
)

func TestResolveManifestPath(t *testing.T) {
	tests := []struct {
		name string
		args []string
		cfg  *cmdtypes.GlobalConfig
		want string
	}{
		{"no args", nil, nil, "bundle.yaml"},
		{"directory arg", []string{"proj"}, nil, filepath.Join("proj", "bundle.yaml")},
		{"yaml file arg", []string{"custom.yaml"}, nil, "custom.yaml"},
		{"yml file arg", []string{filepath.Join("proj", "app.yml")}, nil, filepath.Join("proj", "app.yml")},
		{
			"configured manifest name",
			[]string{"proj"},
			&cmdtypes.GlobalConfig{Config: &config.Config{Manifest: "app.yaml"}},
			filepath.Join("proj", "app.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveManifestPath(tt.args, tt.cfg))
		})
	}
}

func TestLoadManifestMergesNamespacePins(t *testing.T) {
	root := testutil.BundleProject(t, `name: demo
units:
  - name: app
order: [app]
namespaces:
  Gtk: "4.0"
`, nil)

	cfg := &cmdtypes.GlobalConfig{Config: &config.Config{
		Namespaces: map[string]string{"Gtk": "3.0", "Soup": "3.0"},
	}}

	m, err := LoadManifest([]string{root}, cfg)
	require.NoError(t, err)

	// the manifest wins on conflict; config fills the gaps
	assert.Equal(t, map[string]string{"Gtk": "4.0", "Soup": "3.0"}, m.Namespaces)
}

func TestWriteBuildReportText(t *testing.T) {
	report := &bundle.Report{
		Name:      "demo",
		Script:    "main.js",
		Digest:    "sha256:abc",
		Resources: 2,
		Units:     []bundle.UnitReport{{Name: "app"}},
		Pins:      []bundle.PinReport{{Namespace: "Gtk", Version: "4.0"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBuildReport(&buf, report, output.FormatText))

	out := buf.String()
	assert.Contains(t, out, "bundle demo")
	assert.Contains(t, out, "main.js")
	assert.Contains(t, out, "sha256:abc")
	assert.Contains(t, out, "Gtk=4.0")
}

func TestWriteBuildReportJSON(t *testing.T) {
	report := &bundle.Report{Name: "demo", Script: "main.js"}

	var buf bytes.Buffer
	require.NoError(t, WriteBuildReport(&buf, report, output.FormatJSON))
	assert.Contains(t, buf.String(), `"name": "demo"`)
}

func TestUnitTable(t *testing.T) {
	report := &bundle.Report{Units: []bundle.UnitReport{
		{Name: "util", Bytes: 120, Exports: []string{"clamp"}},
		{Name: "app", Bytes: 300},
	}}

	out := UnitTable(report, map[string][]string{"app": {"util"}})
	assert.Contains(t, out, "util")
	assert.Contains(t, out, "clamp")
	assert.Contains(t, out, "120")
}
