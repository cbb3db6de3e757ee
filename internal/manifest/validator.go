package manifest

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"sigs.k8s.io/yaml"

	"github.com/gjslink/cli/internal/errors"
)

//go:embed schema.cue
var schemaCUE []byte

// ValidateSchema checks raw manifest YAML against the embedded CUE schema.
// The schema is closed: unknown fields are rejected, which catches the
// typo'd key that would otherwise silently drop a unit or a resource mount.
func ValidateSchema(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(schemaCUE)
	if schema.Err() != nil {
		return fmt.Errorf("compiling manifest schema: %w", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath("#Manifest"))
	if def.Err() != nil {
		return fmt.Errorf("looking up manifest schema: %w", def.Err())
	}

	// YAML → JSON → CUE value; JSON is valid CUE.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return errors.NewValidationError(
			fmt.Sprintf("parsing manifest: %v", err), "", "")
	}
	doc := ctx.CompileBytes(jsonData)
	if doc.Err() != nil {
		return errors.NewValidationError(
			fmt.Sprintf("parsing manifest: %v", doc.Err()), "", "")
	}

	unified := def.Unify(doc)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return errors.NewValidationError(
			formatCUEErrors(err), "",
			"check bundle.yaml against the manifest schema")
	}
	return nil
}

// formatCUEErrors flattens CUE's error list into one readable message.
func formatCUEErrors(err error) string {
	var b strings.Builder
	b.WriteString("manifest schema validation failed:")
	for _, e := range cueerrors.Errors(err) {
		b.WriteString("\n  ")
		b.WriteString(strings.Join(pathStrings(e.Path()), "."))
		b.WriteString(": ")
		format, args := e.Msg()
		fmt.Fprintf(&b, format, args...)
	}
	return b.String()
}

func pathStrings(path []string) []string {
	if len(path) == 0 {
		return []string{"manifest"}
	}
	return path
}
