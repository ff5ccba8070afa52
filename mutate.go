// Mutate: derive or replace an attribute column on the active context.
package tidygraph

import (
	"errors"
	"fmt"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/table"
)

// Sentinel errors for Mutate.
var (
	// ErrMutateReserved is returned when the derived column name is
	// reserved.
	ErrMutateReserved = errors.New("tidygraph: cannot mutate a reserved column")

	// ErrMutateLength is returned when the derived values do not align
	// with the active table.
	ErrMutateLength = errors.New("tidygraph: derived column length mismatch")
)

// Mutate derives an attribute column for the active context. fn receives
// a disposable snapshot of the active table and returns the new values,
// one per row; modifying the snapshot does not touch the graph. Existing
// columns are replaced, new ones appended.
func (t *Graph) Mutate(name string, fn func(snapshot *table.Table) ([]any, error)) error {
	if core.Reserved(t.active, name) {
		return fmt.Errorf("%w: %q", ErrMutateReserved, name)
	}

	snap := t.g.VertexTable()
	if t.active == core.Edges {
		snap = t.g.EdgeTable()
	}
	values, err := fn(snap)
	if err != nil {
		return err
	}
	if len(values) != snap.Len() {
		return fmt.Errorf("%w: got %d values, want %d", ErrMutateLength, len(values), snap.Len())
	}

	return t.g.SetAttribute(t.active, name, values)
}
