// Package translate rewrites native-binding imports into the restricted
// runtime's global binding-table access form.
//
// A compiled unit reaches a native namespace through the loader protocol:
//
//	const { Button, Window } = require("gi://Gtk?version=4.0");
//	const Cairo = require("cairo");
//
// The runtime has no loader; the same bindings live on its ambient binding
// table. The translator emits the equivalent destructuring against that
// table and records the version pin the namespace needs:
//
//	const { Button, Window } = imports.gi.Gtk;   // pin: imports.gi.versions.Gtk = "4.0";
//	const Cairo = imports.cairo;
//
// Pins are emitted once per build, in a prologue ahead of every unit, so
// pinning always precedes first use.
package translate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/jsscan"
)

// Pin is a one-time version-pinning statement a namespace requires before
// its first use.
type Pin struct {
	Namespace string
	Version   string
}

// Statement renders the runtime pin statement.
func (p Pin) Statement() string {
	return fmt.Sprintf("imports.gi.versions.%s = %q;", p.Namespace, p.Version)
}

// Binding maps a native namespace specifier to its binding-table path and
// the version pin it requires, if any.
type Binding struct {
	Spec      string
	Namespace string
	Path      string
	Version   string
}

// defaultVersions lists namespaces that ship multiple ABI-incompatible
// versions and the version the bundle targets unless overridden.
var defaultVersions = map[string]string{
	"Gtk":    "4.0",
	"Gdk":    "4.0",
	"WebKit": "6.0",
}

// corePaths maps bare (non-gi) namespace specifiers to binding-table paths.
var corePaths = map[string]string{
	"system":  "imports.system",
	"cairo":   "imports.cairo",
	"gettext": "imports.gettext",
}

// Table resolves native namespace specifiers, applying manifest pin
// overrides on top of the built-in defaults.
type Table struct {
	pins map[string]string
}

// NewTable creates a binding table. pins overrides or adds version pins per
// gi namespace (from the manifest's namespaces section).
func NewTable(pins map[string]string) *Table {
	return &Table{pins: pins}
}

// Resolve maps a specifier to a Binding. ok is false for specifiers that are
// not recognized native namespaces.
func (t *Table) Resolve(spec string) (Binding, bool) {
	if p, ok := corePaths[spec]; ok {
		return Binding{Spec: spec, Namespace: spec, Path: p}, true
	}

	ns, found := strings.CutPrefix(spec, "gi://")
	if !found {
		return Binding{}, false
	}

	ns, query, _ := strings.Cut(ns, "?")
	if !identRe.MatchString(ns) {
		return Binding{}, false
	}

	b := Binding{Spec: spec, Namespace: ns, Path: "imports.gi." + ns}

	// version precedence: ?version query > manifest pin > built-in default
	if v, ok := strings.CutPrefix(query, "version="); ok && v != "" {
		b.Version = v
	} else if v, ok := t.pins[ns]; ok {
		b.Version = v
	} else if v, ok := defaultVersions[ns]; ok {
		b.Version = v
	}

	return b, true
}

// TranslationError indicates an import statement the translator does not
// recognize. There is no passthrough: an untranslated require would execute
// inside a runtime that cannot resolve it.
type TranslationError struct {
	Unit      string
	Statement string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("unit %q: unrecognized import %q", e.Unit, e.Statement)
}

func (e *TranslationError) Unwrap() error { return errors.ErrTranslate }

// Result holds a unit's translated text and the pins its imports require,
// in first-use order.
type Result struct {
	Text string
	Pins []Pin
}

var (
	identRe  = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	nativeRe = regexp.MustCompile(`^(const|let|var)\s+(\{[^}]*\}|[A-Za-z_$][\w$]*)\s*=\s*require\("([^"]+)"\);$`)
)

// Translate rewrites every native require statement in an already-stripped
// unit. Any require call left over afterwards (an unrecognized specifier, a
// dynamic require, a wrapped call the stripper did not claim) is fatal.
func Translate(unit, src string, tbl *Table) (*Result, error) {
	mask := jsscan.Mask(src)
	res := &Result{}
	seen := map[string]bool{}

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

		if trimmed == "" || stmtStart >= len(src) || !mask[stmtStart] {
			out.WriteString(line)
			i = lineEnd
			continue
		}

		if m := nativeRe.FindStringSubmatch(trimmed); m != nil {
			kw, binding, spec := m[1], m[2], m[3]
			b, ok := tbl.Resolve(spec)
			if !ok {
				return nil, &TranslationError{Unit: unit, Statement: trimmed}
			}
			if b.Version != "" && !seen[b.Namespace] {
				seen[b.Namespace] = true
				res.Pins = append(res.Pins, Pin{Namespace: b.Namespace, Version: b.Version})
			}
			indent := line[:stmtStart-i]
			out.WriteString(indent)
			fmt.Fprintf(&out, "%s %s = %s;", kw, binding, b.Path)
			if strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
			i = lineEnd
			continue
		}

		out.WriteString(line)
		i = lineEnd
	}

	text := out.String()
	if bad := leftoverRequire(text); bad != "" {
		return nil, &TranslationError{Unit: unit, Statement: bad}
	}

	res.Text = text
	return res, nil
}

// leftoverRequire returns the line containing the first require call still
// present in code after translation, or "" if none remain.
func leftoverRequire(src string) string {
	mask := jsscan.Mask(src)
	for i := 0; i+7 <= len(src); i++ {
		if !mask[i] || src[i] != 'r' || src[i:i+7] != "require" {
			continue
		}
		if i > 0 && (jsscan.IsIdentByte(src[i-1]) || src[i-1] == '.') {
			continue
		}
		j := i + 7
		for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
			j++
		}
		if j < len(src) && src[j] == '(' {
			start := strings.LastIndexByte(src[:i], '\n') + 1
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src)
			} else {
				end += i
			}
			return strings.TrimSpace(src[start:end])
		}
	}
	return ""
}

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
