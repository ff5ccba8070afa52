package join_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/join"
	"github.com/tidygraph/go-tidygraph/table"
)

// namedGraph builds a graph with one vertex per name and the given edges.
func namedGraph(t *testing.T, directed bool, names []string, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	require.NoError(t, g.AddVertices(len(names)))
	vals := make([]any, len(names))
	for i, n := range names {
		vals[i] = n
	}
	require.NoError(t, g.SetAttribute(core.Nodes, core.ColName, vals))
	pairs := make([]core.Endpoints, len(edges))
	for i, e := range edges {
		pairs[i] = core.Endpoints{Source: e[0], Target: e[1]}
	}
	require.NoError(t, g.AddEdges(pairs))

	return g
}

// tbl builds a literal table or fails the test.
func tbl(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	out, err := table.Build(cols...)
	require.NoError(t, err)

	return out
}

// snapshot captures everything observable about a graph so tests can
// assert that a failed call changed nothing.
type graphState struct {
	directed bool
	vcount   int
	ecount   int
	edges    []core.Endpoints
	vtable   *table.Table
	etable   *table.Table
}

func captureState(g *core.Graph) graphState {
	return graphState{
		directed: g.Directed(),
		vcount:   g.VertexCount(),
		ecount:   g.EdgeCount(),
		edges:    g.EdgeList(),
		vtable:   g.VertexTable(),
		etable:   g.EdgeTable(),
	}
}

func requireUnchanged(t *testing.T, before graphState, g *core.Graph) {
	t.Helper()
	require.Equal(t, before.directed, g.Directed())
	require.Equal(t, before.vcount, g.VertexCount())
	require.Equal(t, before.ecount, g.EdgeCount())
	require.Equal(t, before.edges, g.EdgeList())
	require.True(t, before.vtable.Equal(g.VertexTable()), "vertex table changed")
	require.True(t, before.etable.Equal(g.EdgeTable()), "edge table changed")
}

func TestJoinNilInputs(t *testing.T) {
	y := tbl(t, table.Column{Name: core.ColName, Values: []any{"a"}})

	err := join.Join(nil, core.Nodes, y)
	require.ErrorIs(t, err, join.ErrGraphNil)
	require.ErrorIs(t, err, join.ErrValidation)

	g := namedGraph(t, false, []string{"a"}, nil)
	err = join.Join(g, core.Nodes, nil)
	require.ErrorIs(t, err, join.ErrTableNil)
	require.ErrorIs(t, err, join.ErrValidation)
}

func TestJoinReservedColumnIsAtomic(t *testing.T) {
	g := namedGraph(t, false, []string{"a", "b", "c"}, [][2]int{{0, 1}, {1, 2}})
	before := captureState(g)

	y := tbl(t,
		table.Column{Name: core.ColName, Values: []any{"a"}},
		table.Column{Name: core.ColVertexID, Values: []any{int64(7)}},
	)
	err := join.Join(g, core.Nodes, y, join.WithKind(join.Outer))
	require.ErrorIs(t, err, join.ErrReservedColumn)
	require.ErrorIs(t, err, join.ErrValidation)
	requireUnchanged(t, before, g)

	// The internal join-tracking key is reserved in both contexts.
	y = tbl(t,
		table.Column{Name: core.ColName, Values: []any{"a"}},
		table.Column{Name: core.ColJoinKey, Values: []any{int64(0)}},
	)
	require.ErrorIs(t, join.Join(g, core.Nodes, y), join.ErrReservedColumn)
	requireUnchanged(t, before, g)

	y = tbl(t,
		table.Column{Name: core.ColFrom, Values: []any{"a"}},
		table.Column{Name: core.ColTo, Values: []any{"b"}},
		table.Column{Name: core.ColSource, Values: []any{int64(0)}},
	)
	require.ErrorIs(t, join.Join(g, core.Edges, y), join.ErrReservedColumn)
	requireUnchanged(t, before, g)
}

func TestJoinMissingIdentityColumns(t *testing.T) {
	g := namedGraph(t, false, []string{"a", "b"}, [][2]int{{0, 1}})

	y := tbl(t, table.Column{Name: "score", Values: []any{int64(1)}})
	require.ErrorIs(t, join.Join(g, core.Nodes, y), join.ErrMissingKeyColumn)

	y = tbl(t, table.Column{Name: core.ColFrom, Values: []any{"a"}})
	require.ErrorIs(t, join.Join(g, core.Edges, y), join.ErrMissingKeyColumn)
}

func TestJoinBadOptions(t *testing.T) {
	g := namedGraph(t, false, []string{"a"}, nil)
	y := tbl(t, table.Column{Name: core.ColName, Values: []any{"a"}})

	require.ErrorIs(t, join.Join(g, core.Nodes, y, join.WithKind(join.Kind(9))), join.ErrUnknownKind)
	require.ErrorIs(t, join.Join(g, core.Nodes, y, join.WithSuffixes(".z", ".z")), join.ErrBadSuffix)

	// Node keys must include "name"; extra key columns must exist in y.
	require.ErrorIs(t, join.Join(g, core.Nodes, y, join.WithOn("score")), join.ErrBadOn)
	require.ErrorIs(t, join.Join(g, core.Nodes, y, join.WithOn(core.ColName, "absent")), join.ErrBadOn)
	require.NoError(t, join.Join(g, core.Nodes, y, join.WithOn(core.ColName)))

	ey := tbl(t,
		table.Column{Name: core.ColFrom, Values: []any{"a"}},
		table.Column{Name: core.ColTo, Values: []any{"a"}},
	)
	require.ErrorIs(t, join.Join(g, core.Edges, ey, join.WithOn(core.ColFrom)), join.ErrBadOn)
	require.NoError(t, join.Join(g, core.Edges, ey, join.WithOn(core.ColTo, core.ColFrom)))
}

func TestParseKind(t *testing.T) {
	for _, want := range []join.Kind{join.Inner, join.Left, join.Right, join.Outer} {
		got, err := join.ParseKind(want.String())
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := join.ParseKind("cross")
	require.ErrorIs(t, err, join.ErrUnknownKind)
}
