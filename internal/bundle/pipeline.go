// Package bundle drives the flattening pipeline: read each unit's compiled
// artifact, strip module scaffolding, translate native-binding imports,
// rewrite cross-unit references, and concatenate everything in policy order
// into one script for the restricted runtime.
//
// The build is atomic. All output is assembled in a staging directory and
// swapped into place as the very last step; any stage error discards staging
// and leaves a previously published artifact untouched.
package bundle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/manifest"
	"github.com/gjslink/cli/internal/output"
	"github.com/gjslink/cli/internal/rewrite"
	"github.com/gjslink/cli/internal/strip"
	"github.com/gjslink/cli/internal/translate"
)

// Options controls a pipeline run.
type Options struct {
	// OutDir overrides the manifest's output directory.
	OutDir string

	// DryRun runs every stage but skips staging and publication.
	DryRun bool
}

// unitResult is one worker's output: a unit read, stripped, and translated.
type unitResult struct {
	name     string
	text     string
	exports  []string
	aliases  map[string]string
	pins     []translate.Pin
	duration time.Duration
	err      error
}

// Build runs the full pipeline for the manifest and returns the build
// report. Stage errors abort the build; nothing is published on failure.
func Build(ctx context.Context, m *manifest.Manifest, opts Options) (*Report, error) {
	buildID := uuid.NewString()
	start := time.Now()
	output.Debug("build started", "bundle", m.Name, "build_id", buildID, "units", len(m.Units))

	// The ordering policy is validated before any file is read or written.
	if err := m.ValidateOrder(); err != nil {
		return nil, err
	}
	if m.Entry != "" && len(m.Order) > 0 && m.Order[len(m.Order)-1] != m.Entry {
		output.Warn("entry unit is not last in the ordering policy",
			"entry", m.Entry, "last", m.Order[len(m.Order)-1])
	}

	results, err := transformUnits(m)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Join point: the collision check and reference rewriting need the full
	// export table across all units.
	exportLists := make(map[string][]string, len(results))
	exportSets := make(map[string]map[string]bool, len(results))
	for name, r := range results {
		exportLists[name] = r.exports
		set := make(map[string]bool, len(r.exports))
		for _, s := range r.exports {
			set[s] = true
		}
		exportSets[name] = set
	}
	if err := rewrite.CheckCollisions(exportLists); err != nil {
		return nil, err
	}

	texts := make(map[string]string, len(results))
	for _, name := range m.Order {
		r := results[name]
		text, err := rewrite.Rewrite(name, r.text, r.aliases, exportSets)
		if err != nil {
			return nil, err
		}
		texts[name] = text
	}

	pins, err := mergePins(m, results)
	if err != nil {
		return nil, err
	}

	script := concatenate(m, pins, texts)

	report := &Report{
		BuildID:  buildID,
		Name:     m.Name,
		Script:   m.Output.Script,
		Digest:   scriptDigest(script),
		Duration: time.Since(start).Round(time.Millisecond).String(),
	}
	for _, p := range pins {
		report.Pins = append(report.Pins, PinReport{Namespace: p.Namespace, Version: p.Version})
	}
	for _, name := range m.Order {
		report.Units = append(report.Units, UnitReport{
			Name:    name,
			Bytes:   len(texts[name]),
			Exports: exportLists[name],
		})
	}

	if opts.DryRun {
		output.Debug("dry run, skipping emission", "bundle", m.Name)
		return report, nil
	}

	copied, err := emit(m, opts, script)
	if err != nil {
		return nil, err
	}
	report.Resources = copied

	output.Debug("build finished",
		"bundle", m.Name,
		"digest", report.Digest,
		"bytes", len(script),
		"resources", copied,
		"elapsed", report.Duration,
	)
	return report, nil
}

// transformUnits runs read → strip → translate for every unit in parallel.
// Each worker touches only its own unit's text plus the read-only manifest
// and binding table; the first error wins.
func transformUnits(m *manifest.Manifest) (map[string]*unitResult, error) {
	tbl := translate.NewTable(m.Namespaces)

	resultChan := make(chan *unitResult, len(m.Units))
	var wg sync.WaitGroup

	for _, u := range m.Units {
		wg.Add(1)
		go func(u manifest.Unit) {
			defer wg.Done()
			resultChan <- transformUnit(m, u, tbl)
		}(u)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make(map[string]*unitResult, len(m.Units))
	var firstErr error
	for r := range resultChan {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		results[r.name] = r
		output.Debug("unit transformed",
			"unit", r.name,
			"exports", len(r.exports),
			"deps", len(r.aliases),
			"elapsed", r.duration,
		)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

func transformUnit(m *manifest.Manifest, u manifest.Unit, tbl *translate.Table) *unitResult {
	start := time.Now()
	res := &unitResult{name: u.Name}

	src, err := readUnit(m, u)
	if err != nil {
		res.err = err
		return res
	}

	stripped, err := strip.Strip(u.Name, src, m.HasUnit)
	if err != nil {
		res.err = err
		return res
	}

	translated, err := translate.Translate(u.Name, stripped.Text, tbl)
	if err != nil {
		res.err = err
		return res
	}

	res.text = translated.Text
	res.exports = stripped.Exports
	res.aliases = stripped.Aliases
	res.pins = translated.Pins
	res.duration = time.Since(start)
	return res
}

// mergePins collects version pins across units in concatenation order,
// deduplicating by namespace. Two units pinning the same namespace to
// different versions cannot share one global scope.
func mergePins(m *manifest.Manifest, results map[string]*unitResult) ([]translate.Pin, error) {
	var pins []translate.Pin
	owner := map[string]string{}
	version := map[string]string{}

	for _, name := range m.Order {
		for _, p := range results[name].pins {
			if v, ok := version[p.Namespace]; ok {
				if v != p.Version {
					return nil, &errors.DetailError{
						Type:    "translation failed",
						Message: fmt.Sprintf("namespace %s pinned to %s by unit %q and %s by unit %q", p.Namespace, v, owner[p.Namespace], p.Version, name),
						Hint:    "align the ?version query or the manifest namespaces pin",
						Cause:   errors.ErrTranslate,
					}
				}
				continue
			}
			version[p.Namespace] = p.Version
			owner[p.Namespace] = name
			pins = append(pins, p)
		}
	}
	return pins, nil
}

// Vet runs every stage of the pipeline except emission: manifest order
// validation, unit transforms, and the collision and reference checks.
func Vet(ctx context.Context, m *manifest.Manifest) (*Report, error) {
	return Build(ctx, m, Options{DryRun: true})
}
