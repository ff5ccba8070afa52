// Join dispatcher: validation, context selection, engine dispatch.
package join

import (
	"fmt"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/table"
)

// Join synchronizes the graph's active table with the caller table y
// under the configured join semantics, mutating g in place.
//
// y is copied before use and never retained; a validation failure leaves
// g untouched. See the package documentation for the full semantics.
func Join(g *core.Graph, active core.Active, y *table.Table, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if y == nil {
		return ErrTableNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if o.Kind < Inner || o.Kind > Outer {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(o.Kind))
	}
	if err := validateColumns(active, y); err != nil {
		return err
	}
	if err := validateOn(active, o.On, y); err != nil {
		return err
	}

	// Private copy: the engines annotate and consume Y freely without
	// aliasing caller data.
	y = y.Clone()

	if active == core.Edges {
		return joinEdges(g, y, o)
	}

	return joinNodes(g, y, o)
}

// validateColumns checks the caller table for required identity columns
// and reserved names, before anything is mutated.
func validateColumns(active core.Active, y *table.Table) error {
	for _, col := range y.Columns() {
		if !core.Reserved(active, col) {
			continue
		}
		// The endpoint name columns are the edge identity input, not a
		// caller attribute; they are required rather than banned.
		if active == core.Edges && (col == core.ColFrom || col == core.ColTo) {
			continue
		}

		return fmt.Errorf("%w: %q", ErrReservedColumn, col)
	}

	if active == core.Edges {
		for _, col := range []string{core.ColFrom, core.ColTo} {
			if !y.Has(col) {
				return fmt.Errorf("%w: edge joins require %q", ErrMissingKeyColumn, col)
			}
		}

		return nil
	}
	if !y.Has(core.ColName) {
		return fmt.Errorf("%w: node joins require %q", ErrMissingKeyColumn, core.ColName)
	}

	return nil
}

// validateOn checks an explicit "on" specification. Edge joins key on
// the endpoint pair and accept nothing else; node joins must include
// "name" and may add further caller columns to the key.
func validateOn(active core.Active, on []string, y *table.Table) error {
	if len(on) == 0 {
		return nil
	}
	if active == core.Edges {
		if len(on) == 2 {
			a, b := on[0], on[1]
			if (a == core.ColFrom && b == core.ColTo) || (a == core.ColTo && b == core.ColFrom) {
				return nil
			}
		}

		return fmt.Errorf("%w: %v (edge joins key on %q,%q)", ErrBadOn, on, core.ColFrom, core.ColTo)
	}

	hasName := false
	for _, c := range on {
		if c == core.ColName {
			hasName = true
			continue
		}
		if core.Reserved(active, c) {
			return fmt.Errorf("%w: %q is reserved", ErrBadOn, c)
		}
		if !y.Has(c) {
			return fmt.Errorf("%w: %q is not a caller column", ErrBadOn, c)
		}
	}
	if !hasName {
		return fmt.Errorf("%w: %v (node joins must key on %q)", ErrBadOn, on, core.ColName)
	}

	return nil
}
