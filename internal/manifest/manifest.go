// Package manifest defines the bundle manifest: the declared unit set, the
// ordering policy, resource mounts, and namespace version pins.
//
// The manifest is the build's correctness contract. The ordering policy is a
// hand-authored total order, never computed; the build validates it against
// each unit's declared dependencies and refuses to emit on any violation.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gjslink/cli/internal/errors"
)

// DefaultFile is the manifest file name looked up in a bundle project root.
const DefaultFile = "bundle.yaml"

// Unit is one first-party compiled module participating in the bundle.
type Unit struct {
	// Name is the unit's stable identity.
	Name string `yaml:"name"`

	// Path overrides the artifact location relative to the build root.
	// Defaults to <name>.js.
	Path string `yaml:"path,omitempty"`

	// Deps names the units this unit reads from at top level. The ordering
	// policy must schedule every one of them before this unit.
	Deps []string `yaml:"deps,omitempty"`
}

// Mount declares one resource directory to mirror into the output tree.
type Mount struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Output declares where the emitted artifact lands.
type Output struct {
	Dir    string `yaml:"dir"`
	Script string `yaml:"script"`
}

// Manifest is the parsed bundle.yaml.
type Manifest struct {
	Name       string            `yaml:"name"`
	Entry      string            `yaml:"entry,omitempty"`
	BuildRoot  string            `yaml:"buildRoot"`
	Output     Output            `yaml:"output"`
	Units      []Unit            `yaml:"units"`
	Order      []string          `yaml:"order"`
	Resources  []Mount           `yaml:"resources,omitempty"`
	Namespaces map[string]string `yaml:"namespaces,omitempty"`

	// Root is the bundle project directory the manifest was loaded from.
	// Not part of the file.
	Root string `yaml:"-"`
}

// Load reads and parses the manifest at path, applies defaults, validates it
// against the embedded schema and the structural rules, and resolves Root.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(
				fmt.Sprintf("manifest not found: %s", path), path,
				"run `gjslink bundle init` to scaffold a bundle project")
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("parsing manifest: %v", err), path, "")
	}

	m.Root, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("resolving manifest root: %w", err)
	}
	m.applyDefaults()

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.BuildRoot == "" {
		m.BuildRoot = "build"
	}
	if m.Output.Dir == "" {
		m.Output.Dir = "dist"
	}
	if m.Output.Script == "" {
		m.Output.Script = "main.js"
	}
}

// Validate checks the structural rules the schema cannot express: unique
// unit names, deps naming known units, a known entry unit, and an ordering
// policy that is an exact permutation of the unit set. Dependency-order
// violations are checked separately by ValidateOrder.
func (m *Manifest) Validate() error {
	if len(m.Units) == 0 {
		return errors.NewValidationError("manifest declares no units", m.Root, "")
	}

	units := map[string]bool{}
	for _, u := range m.Units {
		if units[u.Name] {
			return errors.NewValidationError(
				fmt.Sprintf("duplicate unit %q", u.Name), m.Root, "")
		}
		units[u.Name] = true
	}

	for _, u := range m.Units {
		for _, d := range u.Deps {
			if !units[d] {
				return errors.NewValidationError(
					fmt.Sprintf("unit %q depends on unknown unit %q", u.Name, d), m.Root, "")
			}
			if d == u.Name {
				return errors.NewValidationError(
					fmt.Sprintf("unit %q depends on itself", u.Name), m.Root, "")
			}
		}
	}

	if m.Entry != "" && !units[m.Entry] {
		return errors.NewValidationError(
			fmt.Sprintf("entry names unknown unit %q", m.Entry), m.Root, "")
	}

	seen := map[string]bool{}
	for _, name := range m.Order {
		if !units[name] {
			return errors.NewValidationError(
				fmt.Sprintf("order lists unknown unit %q", name), m.Root, "")
		}
		if seen[name] {
			return errors.NewValidationError(
				fmt.Sprintf("order lists unit %q twice", name), m.Root, "")
		}
		seen[name] = true
	}
	for name := range units {
		if !seen[name] {
			return errors.NewValidationError(
				fmt.Sprintf("order does not list unit %q", name), m.Root, "")
		}
	}

	return nil
}

// UnitByName returns the named unit declaration.
func (m *Manifest) UnitByName(name string) (Unit, bool) {
	for _, u := range m.Units {
		if u.Name == name {
			return u, true
		}
	}
	return Unit{}, false
}

// HasUnit reports whether name is a declared unit.
func (m *Manifest) HasUnit(name string) bool {
	_, ok := m.UnitByName(name)
	return ok
}

// UnitPath resolves a unit's compiled artifact path under the build root.
func (m *Manifest) UnitPath(u Unit) string {
	rel := u.Path
	if rel == "" {
		rel = u.Name + ".js"
	}
	return filepath.Join(m.Root, m.BuildRoot, rel)
}

// OutputDir resolves the output directory.
func (m *Manifest) OutputDir() string {
	return filepath.Join(m.Root, m.Output.Dir)
}

// ScriptPath resolves the emitted script path.
func (m *Manifest) ScriptPath() string {
	return filepath.Join(m.OutputDir(), m.Output.Script)
}
