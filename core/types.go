// This file declares Active, Endpoints, Graph, GraphOption, the reserved
// column names, sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"

	"github.com/tidygraph/go-tidygraph/table"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeCount indicates a negative vertex count was requested.
	ErrNegativeCount = errors.New("core: negative vertex count")

	// ErrVertexRange indicates an ordinal outside the dense range 0..n-1.
	ErrVertexRange = errors.New("core: vertex ordinal out of range")

	// ErrEdgeNotFound indicates no edge exists with the given endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrReservedName indicates an attribute name collides with a
	// reserved bookkeeping column.
	ErrReservedName = errors.New("core: reserved attribute name")

	// ErrLengthMismatch indicates attribute values are not aligned with
	// the current vertex or edge count.
	ErrLengthMismatch = errors.New("core: attribute length mismatch")
)

// Reserved bookkeeping column names. They appear in exported snapshots
// and internal join state and are therefore invalid attribute names.
const (
	// ColVertexID is the vertex snapshot identity column.
	ColVertexID = "vertex ID"

	// ColEdgeID is the edge snapshot identity column.
	ColEdgeID = "edge ID"

	// ColFrom and ColTo carry endpoint names in caller edge tables.
	ColFrom = "from"
	ColTo   = "to"

	// ColSource and ColTarget carry resolved endpoint ordinals.
	ColSource = "source"
	ColTarget = "target"

	// ColJoinKey is the internal join row-tracking column.
	ColJoinKey = "_index"
)

// ColName is the mandatory vertex attribute column holding caller-visible
// vertex names. It is an ordinary attribute, not a reserved column.
const ColName = "name"

// Active selects which side of the graph an operation targets.
// It is threaded explicitly through every call that needs it; there is no
// hidden "currently active" state in the store.
type Active int

const (
	// Nodes targets the vertex table.
	Nodes Active = iota

	// Edges targets the edge table.
	Edges
)

// String returns "nodes" or "edges".
func (a Active) String() string {
	if a == Edges {
		return "edges"
	}

	return "nodes"
}

// Reserved reports whether name is a reserved column for the given
// context. The join-tracking column is reserved in both contexts.
func Reserved(a Active, name string) bool {
	if name == ColJoinKey {
		return true
	}
	if a == Edges {
		switch name {
		case ColEdgeID, ColFrom, ColTo, ColSource, ColTarget:
			return true
		}

		return false
	}

	return name == ColVertexID
}

// Endpoints identifies an edge by its source and target vertex ordinals.
type Endpoints struct {
	Source int
	Target int
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory graph store.
//
// Vertex ordinals are implicit (0..nVert-1); edge ordinals are positions
// in the edges slice. vattrs and eattrs hold the attribute columns, each
// column exactly nVert (resp. len(edges)) long at all times.
type Graph struct {
	directed bool

	nVert int
	edges []Endpoints

	vattrs *table.Table
	eattrs *table.Table
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// parallel edges and self-loops are always permitted (a join can create
// either).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vattrs: table.New(),
		eattrs: table.New(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool { return g.directed }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.nVert }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Clone returns a deep copy of the graph (topology and attributes).
func (g *Graph) Clone() *Graph {
	out := &Graph{
		directed: g.directed,
		nVert:    g.nVert,
		edges:    make([]Endpoints, len(g.edges)),
		vattrs:   g.vattrs.Clone(),
		eattrs:   g.eattrs.Clone(),
	}
	copy(out.edges, g.edges)

	return out
}

// canonical returns the matching key for an endpoint pair: the pair
// itself for directed graphs, the ascending orientation otherwise.
func (g *Graph) canonical(p Endpoints) Endpoints {
	if !g.directed && p.Source > p.Target {
		return Endpoints{Source: p.Target, Target: p.Source}
	}

	return p
}
