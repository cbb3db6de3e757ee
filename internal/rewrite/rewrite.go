// Package rewrite flattens qualified cross-unit references into bare global
// identifiers.
//
// A compiled unit reaches another unit's export through the loader alias the
// compiler generated for it (catalog_1.Catalog). After flattening, every
// exported symbol lives in the single shared scope, so the qualified access
// becomes a bare reference (Catalog). The pass is driven by the alias map
// harvested during stripping and the global export table, and refuses to
// emit when flattening would merge two units' exports under one name.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gjslink/cli/internal/errors"
	"github.com/gjslink/cli/internal/jsscan"
)

// NameCollisionError indicates two units export the same bare symbol name,
// which flattening would silently resolve last-write-wins at runtime.
type NameCollisionError struct {
	Symbol string
	Units  []string
}

func (e *NameCollisionError) Error() string {
	return fmt.Sprintf("symbol %q exported by units %q and %q", e.Symbol, e.Units[0], e.Units[1])
}

func (e *NameCollisionError) Unwrap() error { return errors.ErrCollision }

// UnknownExportError indicates a qualified reference to a symbol the target
// unit does not export, or an alias used without member access. Either way
// the reference cannot survive flattening.
type UnknownExportError struct {
	Unit   string
	Alias  string
	Target string
	Symbol string
}

func (e *UnknownExportError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("unit %q: alias %q (unit %q) used without member access", e.Unit, e.Alias, e.Target)
	}
	return fmt.Sprintf("unit %q: reference %s.%s does not match an export of unit %q", e.Unit, e.Alias, e.Symbol, e.Target)
}

func (e *UnknownExportError) Unwrap() error { return errors.ErrTranslate }

// CheckCollisions verifies that no bare symbol name is exported by more than
// one unit. exports maps unit name to its exported names.
func CheckCollisions(exports map[string][]string) error {
	units := make([]string, 0, len(exports))
	for u := range exports {
		units = append(units, u)
	}
	sort.Strings(units)

	owner := map[string]string{}
	for _, u := range units {
		for _, sym := range exports[u] {
			if prev, taken := owner[sym]; taken {
				return &NameCollisionError{Symbol: sym, Units: []string{prev, u}}
			}
			owner[sym] = u
		}
	}
	return nil
}

// Rewrite replaces every alias.symbol reference in a stripped, translated
// unit with the bare symbol. aliases maps loader aliases to unit names;
// exports maps unit names to their exported symbol sets.
func Rewrite(unit, src string, aliases map[string]string, exports map[string]map[string]bool) (string, error) {
	if len(aliases) == 0 {
		return src, nil
	}

	mask := jsscan.Mask(src)
	var out strings.Builder
	out.Grow(len(src))

	for i := 0; i < len(src); {
		if !mask[i] || !jsscan.IsIdentByte(src[i]) {
			out.WriteByte(src[i])
			i++
			continue
		}

		// a property access (x.catalog_1) is not an alias reference
		if i > 0 && src[i-1] == '.' {
			i = copyIdent(&out, src, i)
			continue
		}

		start := i
		i = identEnd(src, i)
		word := src[start:i]

		target, isAlias := aliases[word]
		if !isAlias {
			out.WriteString(word)
			continue
		}

		if i >= len(src) || src[i] != '.' || !mask[i] {
			return "", &UnknownExportError{Unit: unit, Alias: word, Target: target}
		}

		symStart := i + 1
		symEnd := identEnd(src, symStart)
		if symEnd == symStart {
			return "", &UnknownExportError{Unit: unit, Alias: word, Target: target}
		}
		sym := src[symStart:symEnd]

		if !exports[target][sym] {
			return "", &UnknownExportError{Unit: unit, Alias: word, Target: target, Symbol: sym}
		}

		out.WriteString(sym)
		i = symEnd
	}

	return out.String(), nil
}

// copyIdent writes the identifier starting at i and returns the index past it.
func copyIdent(out *strings.Builder, src string, i int) int {
	end := identEnd(src, i)
	out.WriteString(src[i:end])
	return end
}

func identEnd(src string, i int) int {
	for i < len(src) && jsscan.IsIdentByte(src[i]) {
		i++
	}
	return i
}
