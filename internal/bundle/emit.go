package bundle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gjslink/cli/internal/manifest"
	"github.com/gjslink/cli/internal/output"
	"github.com/gjslink/cli/internal/resources"
	"github.com/gjslink/cli/internal/translate"
)

// separator makes each unit's span in the emitted script traceable back to
// its artifact.
func separator(name string) string {
	return fmt.Sprintf("// ==== unit: %s ====\n", name)
}

// concatenate joins the transformed units in policy order behind a prologue
// holding the generated-file header and the version pins. Pins precede every
// unit, so pinning is always strictly before first use.
func concatenate(m *manifest.Manifest, pins []translate.Pin, texts map[string]string) string {
	var b strings.Builder

	b.WriteString("// Generated by gjslink. Do not edit.\n")
	fmt.Fprintf(&b, "// bundle: %s\n", m.Name)

	if len(pins) > 0 {
		b.WriteString("\n")
		for _, p := range pins {
			b.WriteString(p.Statement())
			b.WriteString("\n")
		}
	}

	for _, name := range m.Order {
		b.WriteString("\n")
		b.WriteString(separator(name))
		text := texts[name]
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// scriptDigest computes the deterministic content digest of the emitted
// script, "sha256:<hex>".
func scriptDigest(script string) string {
	sum := sha256.Sum256([]byte(script))
	return "sha256:" + hex.EncodeToString(sum[:])
}

// emit assembles the artifact in a staging directory, writing the script
// concurrently with the resource mirror, then publishes it with a
// remove-and-rename swap.
// Returns the number of mirrored resource files.
func emit(m *manifest.Manifest, opts Options, script string) (int, error) {
	outDir := m.OutputDir()
	if opts.OutDir != "" {
		outDir = opts.OutDir
		if !filepath.IsAbs(outDir) {
			abs, err := filepath.Abs(outDir)
			if err != nil {
				return 0, fmt.Errorf("resolving output dir: %w", err)
			}
			outDir = abs
		}
	}

	staging, err := os.MkdirTemp(filepath.Dir(outDir), ".gjslink-stage-*")
	if err != nil {
		return 0, fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	// the mirror has no data dependency on the script
	type mirrorResult struct {
		copied int
		err    error
	}
	mirrorChan := make(chan mirrorResult, 1)
	go func() {
		copied, err := resources.Mirror(m.Root, m.Resources, staging)
		mirrorChan <- mirrorResult{copied: copied, err: err}
	}()

	scriptPath := filepath.Join(staging, m.Output.Script)
	if err := os.MkdirAll(filepath.Dir(scriptPath), 0o755); err != nil {
		return 0, fmt.Errorf("creating staging script directory: %w", err)
	}
	writeErr := os.WriteFile(scriptPath, []byte(script), 0o644)

	mr := <-mirrorChan
	if writeErr != nil {
		return 0, fmt.Errorf("writing staged script: %w", writeErr)
	}
	if mr.err != nil {
		return 0, mr.err
	}

	// publish last: the previous artifact stays intact until staging is
	// complete, then is discarded whole
	if err := os.RemoveAll(outDir); err != nil {
		return 0, fmt.Errorf("removing previous artifact: %w", err)
	}
	if err := os.Rename(staging, outDir); err != nil {
		return 0, fmt.Errorf("publishing artifact: %w", err)
	}

	output.Debug("artifact published", "dir", outDir, "script", m.Output.Script)
	return mr.copied, nil
}
