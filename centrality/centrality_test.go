package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidygraph/go-tidygraph/centrality"
	"github.com/tidygraph/go-tidygraph/core"
)

func build(t *testing.T, directed bool, n int, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(directed))
	require.NoError(t, g.AddVertices(n))
	pairs := make([]core.Endpoints, len(edges))
	for i, e := range edges {
		pairs[i] = core.Endpoints{Source: e[0], Target: e[1]}
	}
	require.NoError(t, g.AddEdges(pairs))

	return g
}

// path4 is the undirected path a-b-c-d.
func path4(t *testing.T) *core.Graph {
	return build(t, false, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
}

func TestDegreeUndirected(t *testing.T) {
	g := path4(t)
	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 2, 1}, deg)
}

func TestDegreeDirectedModes(t *testing.T) {
	g := build(t, true, 3, [][2]int{{0, 1}, {0, 2}})

	out, err := centrality.Degree(g, centrality.WithMode(centrality.Out))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 0}, out)

	in, err := centrality.Degree(g, centrality.WithMode(centrality.In))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1}, in)

	all, err := centrality.Degree(g)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 1, 1}, all)
}

func TestDegreeSelfLoops(t *testing.T) {
	g := build(t, false, 2, [][2]int{{0, 0}, {0, 1}})

	deg, err := centrality.Degree(g)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1}, deg)

	deg, err = centrality.Degree(g, centrality.WithLoops(false))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 1}, deg)
}

func TestDegreeStrength(t *testing.T) {
	g := build(t, false, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(t, g.SetAttribute(core.Edges, "w", []any{5.0, 1.0, 1.0}))

	deg, err := centrality.Degree(g, centrality.WithWeights("w"))
	require.NoError(t, err)
	require.Equal(t, []float64{6, 6, 2}, deg)
}

func TestBadWeights(t *testing.T) {
	g := build(t, false, 2, [][2]int{{0, 1}})

	_, err := centrality.Degree(g, centrality.WithWeights("absent"))
	require.ErrorIs(t, err, centrality.ErrBadWeight)

	require.NoError(t, g.SetAttribute(core.Edges, "w", []any{-1.0}))
	_, err = centrality.Degree(g, centrality.WithWeights("w"))
	require.ErrorIs(t, err, centrality.ErrBadWeight)

	require.NoError(t, g.SetAttribute(core.Edges, "s", []any{"heavy"}))
	_, err = centrality.Closeness(g, centrality.WithWeights("s"))
	require.ErrorIs(t, err, centrality.ErrBadWeight)
}

func TestCloseness(t *testing.T) {
	g := path4(t)
	c, err := centrality.Closeness(g)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.75, 0.75, 0.5}, c)

	// Fully reachable: normalization multiplies by reach/(n-1) = 1.
	cn, err := centrality.Closeness(g, centrality.WithNormalized())
	require.NoError(t, err)
	require.Equal(t, c, cn)
}

func TestClosenessDirectedOut(t *testing.T) {
	g := build(t, true, 3, [][2]int{{0, 1}, {1, 2}})

	c, err := centrality.Closeness(g, centrality.WithMode(centrality.Out))
	require.NoError(t, err)
	// v0 reaches {1,2} at distances 1 and 2; v2 reaches nothing.
	require.InDelta(t, 2.0/3.0, c[0], 1e-12)
	require.InDelta(t, 1.0, c[1], 1e-12)
	require.Zero(t, c[2])
}

func TestHarmonic(t *testing.T) {
	g := path4(t)
	h, err := centrality.Harmonic(g)
	require.NoError(t, err)

	want := []float64{
		1 + 0.5 + 1.0/3.0,
		1 + 1 + 0.5,
		1 + 1 + 0.5,
		1 + 0.5 + 1.0/3.0,
	}
	for i := range want {
		require.InDelta(t, want[i], h[i], 1e-12)
	}

	hn, err := centrality.Harmonic(g, centrality.WithNormalized())
	require.NoError(t, err)
	for i := range want {
		require.InDelta(t, want[i]/3, hn[i], 1e-12)
	}
}

func TestBetweennessPath(t *testing.T) {
	g := path4(t)
	bc, err := centrality.Betweenness(g)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 2, 0}, bc)
}

func TestBetweennessWeighted(t *testing.T) {
	g := build(t, false, 3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, g.SetAttribute(core.Edges, "w", []any{1.0, 2.0}))

	bc, err := centrality.Betweenness(g, centrality.WithWeights("w"))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 0}, bc)
}

func TestEdgeBetweennessPath(t *testing.T) {
	// a-b-c: the pair (a,c) crosses both edges, the adjacent pairs one
	// each, so every edge carries two paths.
	g := build(t, false, 3, [][2]int{{0, 1}, {1, 2}})

	eb, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2}, eb)
}

func TestEdgeBetweennessParallelSplit(t *testing.T) {
	g := build(t, false, 2, [][2]int{{0, 1}, {0, 1}})

	eb, err := centrality.EdgeBetweenness(g)
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, 0.5}, eb)
}

func TestEdgeBetweennessWeighted(t *testing.T) {
	// The heavy a-c edge is bypassed via b and carries no paths.
	g := build(t, false, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, g.SetAttribute(core.Edges, "w", []any{1.0, 1.0, 3.0}))

	eb, err := centrality.EdgeBetweenness(g, centrality.WithWeights("w"))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2, 0}, eb)
}

func TestEdgeBetweennessDirected(t *testing.T) {
	g := build(t, true, 3, [][2]int{{0, 1}, {1, 2}})

	eb, err := centrality.EdgeBetweenness(g, centrality.WithMode(centrality.Out))
	require.NoError(t, err)
	require.Equal(t, []float64{2, 2}, eb)
}

func TestEigenvectorPath(t *testing.T) {
	g := build(t, false, 3, [][2]int{{0, 1}, {1, 2}})

	ev, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	require.InDelta(t, 1/math.Sqrt2, ev[0], 1e-6)
	require.InDelta(t, 1.0, ev[1], 1e-6)
	require.InDelta(t, 1/math.Sqrt2, ev[2], 1e-6)
}

func TestEigenvectorStar(t *testing.T) {
	g := build(t, false, 4, [][2]int{{0, 1}, {0, 2}, {0, 3}})

	ev, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, ev[0], 1e-6)
	for _, leaf := range []int{1, 2, 3} {
		require.InDelta(t, 1/math.Sqrt(3), ev[leaf], 1e-6)
	}
}

func TestEigenvectorDirectedCycle(t *testing.T) {
	g := build(t, true, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})

	ev, err := centrality.Eigenvector(g)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1}, ev, 1e-6)
}

func TestEigenvectorUnscaled(t *testing.T) {
	g := build(t, false, 2, [][2]int{{0, 1}})

	ev, err := centrality.Eigenvector(g, centrality.WithScale(false))
	require.NoError(t, err)
	// Unit L2 norm instead of max 1.
	require.InDelta(t, 1/math.Sqrt2, ev[0], 1e-6)
	require.InDelta(t, 1/math.Sqrt2, ev[1], 1e-6)
}

func TestPageRank(t *testing.T) {
	g := build(t, false, 2, [][2]int{{0, 1}})

	pr, err := centrality.PageRank(g)
	require.NoError(t, err)
	require.InDelta(t, 0.5, pr[0], 1e-9)
	require.InDelta(t, 0.5, pr[1], 1e-9)
}

func TestPageRankDangling(t *testing.T) {
	g := build(t, true, 2, [][2]int{{0, 1}})

	pr, err := centrality.PageRank(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, pr[0]+pr[1], 1e-9)
	require.Greater(t, pr[1], pr[0])
}

func TestOptionViolations(t *testing.T) {
	g := build(t, false, 1, nil)

	_, err := centrality.Degree(g, centrality.WithMode(centrality.Mode(5)))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.PageRank(g, centrality.WithDamping(1.5))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.PageRank(g, centrality.WithMaxIter(0))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	_, err = centrality.PageRank(g, centrality.WithTolerance(0))
	require.ErrorIs(t, err, centrality.ErrOptionViolation)

	_, err = centrality.Degree(nil)
	require.ErrorIs(t, err, centrality.ErrGraphNil)
}
