package manifest

import (
	"fmt"

	"github.com/gjslink/cli/internal/errors"
)

// OrderViolation indicates the ordering policy schedules a unit before one
// of its declared dependencies. Left unchecked this is a silent latent
// defect: the bundle would only fail inside the runtime, at application
// start, as an undefined symbol far from its cause.
type OrderViolation struct {
	// Unit is the unit scheduled too early.
	Unit string

	// Dependency is the unit it depends on, scheduled after it.
	Dependency string
}

func (e *OrderViolation) Error() string {
	return fmt.Sprintf("ordering policy schedules unit %q before its dependency %q", e.Unit, e.Dependency)
}

func (e *OrderViolation) Unwrap() error { return errors.ErrOrder }

// ValidateOrder checks the ordering policy against every unit's declared
// dependency set: for each unit U depending on V, V must appear strictly
// before U. Returns the first violating pair in policy order.
func (m *Manifest) ValidateOrder() error {
	pos := make(map[string]int, len(m.Order))
	for i, name := range m.Order {
		pos[name] = i
	}

	for _, name := range m.Order {
		u, ok := m.UnitByName(name)
		if !ok {
			continue // Validate reports unknown units
		}
		for _, dep := range u.Deps {
			if pos[dep] >= pos[u.Name] {
				return &OrderViolation{Unit: u.Name, Dependency: dep}
			}
		}
	}
	return nil
}
