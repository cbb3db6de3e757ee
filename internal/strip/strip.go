// Package strip removes module-format scaffolding from compiled unit text.
//
// The upstream compiler emits CommonJS-flavored artifacts: an __esModule
// marker, hoisted export stubs, interop shim helpers, loader calls for other
// first-party units, and trailing identity export assignments. None of that
// survives flattening into a single scope. Everything else is preserved
// byte-for-byte.
package strip

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/jsscan"
)

// Result holds a unit's stripped text and what was harvested while stripping.
type Result struct {
	// Text is the unit's source with all scaffolding removed.
	Text string

	// Exports lists the bare symbol names the unit exports, in order of
	// first appearance.
	Exports []string

	// Aliases maps compiler-generated loader aliases (catalog_1) to the
	// unit name they load (catalog).
	Aliases map[string]string
}

// MalformedExportError indicates an export assignment that is not the
// identity form the compiler emits (exports.Foo = Foo).
type MalformedExportError struct {
	Unit      string
	Statement string
}

func (e *MalformedExportError) Error() string {
	return fmt.Sprintf("unit %q: malformed export assignment %q (expected exports.<name> = <name>)", e.Unit, e.Statement)
}

func (e *MalformedExportError) Unwrap() error { return errors.ErrTranslate }

var (
	esModuleRe   = regexp.MustCompile(`^Object\.defineProperty\(exports,\s*"__esModule",\s*\{\s*value:\s*true\s*\}\);$`)
	exportStubRe = regexp.MustCompile(`^(?:exports\.[A-Za-z_$][\w$]*\s*=\s*)+void 0;$`)
	stubNameRe   = regexp.MustCompile(`exports\.([A-Za-z_$][\w$]*)`)
	exportRe     = regexp.MustCompile(`^exports\.([A-Za-z_$][\w$]*)\s*=\s*([A-Za-z_$][\w$]*|[^;]+);$`)
	shimRe       = regexp.MustCompile(`^var (?:__importDefault|__importStar|__createBinding|__setModuleDefault|__exportStar)\s*=`)
	loaderRe     = regexp.MustCompile(`^(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:__importStar\(|__importDefault\()?require\("(\.\.?/[^"]+)"\)\)?;$`)
)

// Strip removes scaffolding from one unit's compiled text. knownUnit reports
// whether a unit name is part of the bundle; a loader call targeting an
// unknown unit is a translation error.
//
// Stripping is idempotent: running it on already-stripped text changes
// nothing, because none of the recognized statement shapes remain.
func Strip(unit, src string, knownUnit func(string) bool) (*Result, error) {
	mask := jsscan.Mask(src)

	res := &Result{Aliases: map[string]string{}}
	seen := map[string]bool{}
	addExport := func(name string) {
		if !seen[name] {
			seen[name] = true
			res.Exports = append(res.Exports, name)
		}
	}

	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		lineEnd := strings.IndexByte(src[i:], '\n')
		if lineEnd < 0 {
			lineEnd = len(src)
		} else {
			lineEnd += i + 1
		}
		line := src[i:lineEnd]
		trimmed := strings.TrimSpace(line)
		stmtStart := i + indexOfNonSpace(line)

		// Lines that start inside a string or comment are content, not
		// statements. Lines that are blank or pure comment are kept.
		if trimmed == "" || stmtStart >= len(src) || !mask[stmtStart] {
			out.WriteString(line)
			i = lineEnd
			continue
		}

		stmt := trimmed

		switch {
		case esModuleRe.MatchString(stmt):
			i = lineEnd

		case exportStubRe.MatchString(stmt):
			for _, m := range stubNameRe.FindAllStringSubmatch(stmt, -1) {
				addExport(m[1])
			}
			i = lineEnd

		case shimRe.MatchString(stmt):
			// shim helpers span multiple lines; consume the whole statement
			end := jsscan.StatementEnd(src, mask, stmtStart)
			i = skipLineRemainder(src, end)

		case loaderRe.MatchString(stmt):
			m := loaderRe.FindStringSubmatch(stmt)
			alias, spec := m[1], m[2]
			target := unitNameFromSpec(spec)
			if !knownUnit(target) {
				return nil, &errors.DetailError{
					Type:    "translation failed",
					Message: fmt.Sprintf("loader call references unknown unit %q", target),
					Unit:    unit,
					Context: map[string]string{"statement": stmt},
					Hint:    "declare the unit in bundle.yaml or remove the import",
					Cause:   errors.ErrTranslate,
				}
			}
			res.Aliases[alias] = target
			i = lineEnd

		case exportRe.MatchString(stmt):
			m := exportRe.FindStringSubmatch(stmt)
			name, value := m[1], strings.TrimSpace(m[2])
			if name != value {
				return nil, &MalformedExportError{Unit: unit, Statement: stmt}
			}
			addExport(name)
			i = lineEnd

		default:
			out.WriteString(line)
			i = lineEnd
		}
	}

	res.Text = out.String()
	return res, nil
}

// unitNameFromSpec maps a loader specifier ("./catalog.js") to a unit name.
func unitNameFromSpec(spec string) string {
	return strings.TrimSuffix(path.Base(spec), ".js")
}

// indexOfNonSpace returns the offset of the first non-whitespace byte of
// line, or len(line) if the line is blank.
func indexOfNonSpace(line string) int {
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ', '\t', '\r', '\n':
		default:
			return i
		}
	}
	return len(line)
}

// skipLineRemainder advances past end to the start of the next line when the
// rest of the current line is blank, so removed multi-line statements do not
// leave a dangling empty line.
func skipLineRemainder(src string, end int) int {
	i := end
	for i < len(src) {
		switch src[i] {
		case ' ', '\t', '\r':
			i++
		case '\n':
			return i + 1
		default:
			return end
		}
	}
	return i
}
