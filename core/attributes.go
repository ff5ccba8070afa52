// Attribute columns and snapshot tables for both contexts.
package core

import (
	"fmt"

	"github.com/tidygraph/go-tidygraph/table"
)

// SetAttribute assigns one attribute column for the given context.
// The values must be aligned index-for-index with the current ordinal
// order; there are exactly VertexCount (resp. EdgeCount) of them.
func (g *Graph) SetAttribute(a Active, name string, values []any) error {
	if Reserved(a, name) {
		return fmt.Errorf("%w: %q", ErrReservedName, name)
	}
	store, count := g.store(a)
	if len(values) != count {
		return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, name, len(values), count)
	}

	return store.SetColumn(name, values)
}

// Attribute returns the values of one attribute column (live slice) and
// whether it exists.
func (g *Graph) Attribute(a Active, name string) ([]any, bool) {
	store, _ := g.store(a)

	return store.Column(name)
}

// AttributeNames returns the attribute column names for a context, in
// storage order.
func (g *Graph) AttributeNames(a Active) []string {
	store, _ := g.store(a)

	return store.Columns()
}

// ClearAttributes drops every attribute column for the given context,
// including the vertex "name" column when a == Nodes. Entity counts are
// untouched.
func (g *Graph) ClearAttributes(a Active) {
	store, _ := g.store(a)
	store.Drop(store.Columns()...)
}

// VertexTable exports a disposable snapshot of the vertex table: the
// "vertex ID" identity column (equal to the ordinal index) followed by
// every attribute column in storage order.
func (g *Graph) VertexTable() *table.Table {
	out := table.New()
	ids := make([]any, g.nVert)
	for i := range ids {
		ids[i] = i
	}
	_ = out.AddColumn(ColVertexID, ids)
	for _, name := range g.vattrs.Columns() {
		col, _ := g.vattrs.Column(name)
		_ = out.AddColumn(name, col) // AddColumn copies
	}

	return out
}

// EdgeTable exports a disposable snapshot of the edge table: "edge ID",
// "source", "target", then every attribute column in storage order.
func (g *Graph) EdgeTable() *table.Table {
	out := table.New()
	n := len(g.edges)
	ids := make([]any, n)
	src := make([]any, n)
	dst := make([]any, n)
	for i, e := range g.edges {
		ids[i] = i
		src[i] = e.Source
		dst[i] = e.Target
	}
	_ = out.AddColumn(ColEdgeID, ids)
	_ = out.AddColumn(ColSource, src)
	_ = out.AddColumn(ColTarget, dst)
	for _, name := range g.eattrs.Columns() {
		col, _ := g.eattrs.Column(name)
		_ = out.AddColumn(name, col)
	}

	return out
}

// store maps a context onto its attribute table and entity count.
func (g *Graph) store(a Active) (*table.Table, int) {
	if a == Edges {
		return g.eattrs, len(g.edges)
	}

	return g.vattrs, g.nVert
}
