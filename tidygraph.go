// The Graph wrapper: construction, activation, joining.
package tidygraph

import (
	"errors"
	"fmt"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/join"
	"github.com/tidygraph/go-tidygraph/table"
)

// Sentinel errors for the wrapper surface.
var (
	// ErrGraphNil is returned when wrapping a nil store.
	ErrGraphNil = errors.New("tidygraph: graph is nil")

	// ErrMissingName is returned when the vertex table lacks the
	// mandatory "name" column.
	ErrMissingName = errors.New(`tidygraph: vertex table must carry a "name" column`)

	// ErrDuplicateName is returned by FromTables for repeated vertex names.
	ErrDuplicateName = errors.New("tidygraph: duplicate vertex name")

	// ErrUnknownVertex is returned by FromTables for an edge endpoint
	// naming no vertex.
	ErrUnknownVertex = errors.New("tidygraph: edge endpoint names no vertex")

	// ErrMissingEndpoints is returned by FromTables when the edge table
	// lacks "from"/"to".
	ErrMissingEndpoints = errors.New(`tidygraph: edge table must carry "from" and "to" columns`)
)

// Graph couples a core store with the active context that subsequent
// table operations target. The context is plain data on the wrapper; the
// store itself never holds it.
type Graph struct {
	g      *core.Graph
	active core.Active
}

// New wraps an existing store. The store must already carry vertex
// names; use FromTables to build one from scratch.
func New(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, ok := g.Attribute(core.Nodes, core.ColName); !ok && g.VertexCount() > 0 {
		return nil, ErrMissingName
	}

	return &Graph{g: g, active: core.Nodes}, nil
}

// FromTables constructs a graph from an edge table ("from"/"to" plus
// attributes) and a vertex table ("name" plus attributes). Vertex names
// must be unique; edge endpoints must name vertices.
func FromTables(edges, nodes *table.Table, directed bool) (*Graph, error) {
	if nodes == nil || !nodes.Has(core.ColName) {
		return nil, ErrMissingName
	}
	if edges == nil || !edges.Has(core.ColFrom) || !edges.Has(core.ColTo) {
		return nil, ErrMissingEndpoints
	}

	names, _ := nodes.Column(core.ColName)
	index := make(map[any]int, len(names))
	for i, n := range names {
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateName, n)
		}
		index[n] = i
	}

	g := core.NewGraph(core.WithDirected(directed))
	if err := g.AddVertices(len(names)); err != nil {
		return nil, err
	}
	// Vertex attributes, name first.
	for _, colName := range orderedWithFirst(nodes.Columns(), core.ColName) {
		col, _ := nodes.Column(colName)
		if err := g.SetAttribute(core.Nodes, colName, col); err != nil {
			return nil, err
		}
	}

	from, _ := edges.Column(core.ColFrom)
	to, _ := edges.Column(core.ColTo)
	pairs := make([]core.Endpoints, len(from))
	for i := range from {
		s, okS := index[from[i]]
		if !okS {
			return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, from[i])
		}
		t, okT := index[to[i]]
		if !okT {
			return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, to[i])
		}
		pairs[i] = core.Endpoints{Source: s, Target: t}
	}
	if err := g.AddEdges(pairs); err != nil {
		return nil, err
	}
	for _, colName := range edges.Columns() {
		if colName == core.ColFrom || colName == core.ColTo {
			continue
		}
		col, _ := edges.Column(colName)
		if err := g.SetAttribute(core.Edges, colName, col); err != nil {
			return nil, err
		}
	}

	return &Graph{g: g, active: core.Nodes}, nil
}

// Core exposes the underlying store.
func (t *Graph) Core() *core.Graph { return t.g }

// Activate selects the context (nodes or edges) that Join and Mutate
// target, and returns the wrapper for chaining.
func (t *Graph) Activate(a core.Active) *Graph {
	t.active = a

	return t
}

// Active returns the currently selected context.
func (t *Graph) Active() core.Active { return t.active }

// Join synchronizes the active table with y under relational join
// semantics, mutating the graph in place. See the join package for the
// full contract.
func (t *Graph) Join(y *table.Table, opts ...join.Option) error {
	return join.Join(t.g, t.active, y, opts...)
}

// VertexTable returns a disposable snapshot of the vertex table.
func (t *Graph) VertexTable() *table.Table { return t.g.VertexTable() }

// EdgeTable returns a disposable snapshot of the edge table.
func (t *Graph) EdgeTable() *table.Table { return t.g.EdgeTable() }

// Attributes lists the attribute columns stored per context.
func (t *Graph) Attributes() map[string][]string {
	return map[string][]string{
		core.Nodes.String(): t.g.AttributeNames(core.Nodes),
		core.Edges.String(): t.g.AttributeNames(core.Edges),
	}
}

// orderedWithFirst returns cols with first moved to the front, keeping
// the relative order of the rest.
func orderedWithFirst(cols []string, first string) []string {
	out := make([]string, 0, len(cols))
	out = append(out, first)
	for _, c := range cols {
		if c != first {
			out = append(out, c)
		}
	}

	return out
}
