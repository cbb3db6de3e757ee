// Package cmdutil provides helpers shared by the command sub-packages.
package cmdutil

import (
	"path/filepath"

	"github.com/gjslink/cli/internal/cmdtypes"
	"github.com/gjslink/cli/internal/manifest"
)

// ResolveManifestPath resolves the manifest path for a command's optional
// [path] argument. args[0], when present, may point at a project directory
// or directly at a manifest file. The configured manifest file name applies
// to directory arguments.
func ResolveManifestPath(args []string, cfg *cmdtypes.GlobalConfig) string {
	file := manifest.DefaultFile
	if cfg != nil && cfg.Config != nil && cfg.Config.Manifest != "" {
		file = cfg.Config.Manifest
	}

	if len(args) == 0 {
		return file
	}

	arg := args[0]
	if filepath.Ext(arg) == ".yaml" || filepath.Ext(arg) == ".yml" {
		return arg
	}
	return filepath.Join(arg, file)
}

// LoadManifest resolves and loads the manifest for a command, layering the
// global config's namespace pins beneath the manifest's own.
func LoadManifest(args []string, cfg *cmdtypes.GlobalConfig) (*manifest.Manifest, error) {
	m, err := manifest.Load(ResolveManifestPath(args, cfg))
	if err != nil {
		return nil, err
	}

	if cfg != nil && cfg.Config != nil && len(cfg.Config.Namespaces) > 0 {
		merged := make(map[string]string, len(cfg.Config.Namespaces)+len(m.Namespaces))
		for ns, v := range cfg.Config.Namespaces {
			merged[ns] = v
		}
		for ns, v := range m.Namespaces {
			merged[ns] = v
		}
		m.Namespaces = merged
	}

	return m, nil
}
