// Package templates provides the embedded bundle-project scaffold used by
// `gjslink bundle init`.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/gjslink/cli/internal/output"
)

//go:embed scaffold
var scaffoldFS embed.FS

// nameRegex validates bundle names: lowercase, digits, inner hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)

// Data contains values rendered into the scaffold.
type Data struct {
	// BundleName is the bundle name in kebab-case (e.g. "my-app").
	BundleName string
}

// ValidateBundleName checks a bundle name for the manifest's name shape.
func ValidateBundleName(name string) error {
	if !nameRegex.MatchString(name) {
		return fmt.Errorf("invalid bundle name %q: use lowercase letters, digits and hyphens", name)
	}
	return nil
}

// GenerateOptions controls scaffold generation.
type GenerateOptions struct {
	// TargetDir is the directory to scaffold into.
	TargetDir string

	// BundleName overrides the bundle name (default: target dir basename).
	BundleName string

	// Force allows scaffolding into a non-empty directory.
	Force bool
}

// Generate writes the scaffold into the target directory and returns the
// created file paths.
func Generate(opts GenerateOptions) ([]string, error) {
	name := opts.BundleName
	if name == "" {
		name = filepath.Base(opts.TargetDir)
	}
	if err := ValidateBundleName(name); err != nil {
		return nil, err
	}

	if !opts.Force {
		if err := checkTargetDir(opts.TargetDir); err != nil {
			return nil, err
		}
	}

	data := Data{BundleName: name}
	output.Debug("scaffolding bundle project", "name", name, "target", opts.TargetDir)

	var created []string
	err := fs.WalkDir(scaffoldFS, "scaffold", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(path, "scaffold/")
		rel = strings.TrimSuffix(rel, ".tmpl")
		target := filepath.Join(opts.TargetDir, rel)

		raw, err := scaffoldFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading scaffold file %s: %w", path, err)
		}

		content := raw
		if strings.HasSuffix(path, ".tmpl") {
			tmpl, err := template.New(rel).Parse(string(raw))
			if err != nil {
				return fmt.Errorf("parsing scaffold template %s: %w", path, err)
			}
			var b strings.Builder
			if err := tmpl.Execute(&b, data); err != nil {
				return fmt.Errorf("rendering scaffold template %s: %w", path, err)
			}
			content = []byte(b.String())
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		created = append(created, target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// checkTargetDir rejects a target that already contains a manifest.
func checkTargetDir(dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "bundle.yaml")); err == nil {
		return fmt.Errorf("directory %s already contains bundle.yaml (use --force to overwrite)", dir)
	}
	return nil
}
