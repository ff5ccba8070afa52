// Edge lifecycle: addition, deletion by endpoints, existence queries.
package core

import "fmt"

// AddEdges appends edges in the order given, each with all-missing
// attribute values. In an undirected graph the endpoints are stored in
// ascending order. Parallel edges and self-loops are allowed.
func (g *Graph) AddEdges(pairs []Endpoints) error {
	for _, p := range pairs {
		if p.Source < 0 || p.Source >= g.nVert {
			return fmt.Errorf("%w: source %d (have %d vertices)", ErrVertexRange, p.Source, g.nVert)
		}
		if p.Target < 0 || p.Target >= g.nVert {
			return fmt.Errorf("%w: target %d (have %d vertices)", ErrVertexRange, p.Target, g.nVert)
		}
	}
	for _, p := range pairs {
		g.edges = append(g.edges, g.canonical(p))
		g.eattrs.Append(nil)
	}

	return nil
}

// DeleteEdges removes one edge per endpoint pair, matching undirected
// pairs in either orientation. With parallel edges the lowest surviving
// ordinal is taken; surviving edges keep their relative order.
func (g *Graph) DeleteEdges(pairs []Endpoints) error {
	doomed := make(map[int]struct{}, len(pairs))
	for _, p := range pairs {
		idx, ok := g.edgeIndexSkipping(p, doomed)
		if !ok {
			return fmt.Errorf("%w: (%d,%d)", ErrEdgeNotFound, p.Source, p.Target)
		}
		doomed[idx] = struct{}{}
	}
	if len(doomed) == 0 {
		return nil
	}

	kept := g.edges[:0]
	var doomedRows []int
	for i, e := range g.edges {
		if _, dead := doomed[i]; dead {
			doomedRows = append(doomedRows, i)
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	if len(g.eattrs.Columns()) == 0 {
		return nil
	}

	return g.eattrs.DeleteRows(doomedRows)
}

// EdgeIndex returns the ordinal of the first edge with the given
// endpoints (canonical orientation for undirected graphs). A miss is a
// normal negative-query outcome: ok=false, never an error.
func (g *Graph) EdgeIndex(p Endpoints) (int, bool) {
	return g.edgeIndexSkipping(p, nil)
}

// EdgeList returns a copy of the endpoint list in ordinal order.
func (g *Graph) EdgeList() []Endpoints {
	out := make([]Endpoints, len(g.edges))
	copy(out, g.edges)

	return out
}

// edgeIndexSkipping finds the first edge matching p whose ordinal is not
// in the skip set.
func (g *Graph) edgeIndexSkipping(p Endpoints, skip map[int]struct{}) (int, bool) {
	want := g.canonical(p)
	for i, e := range g.edges {
		if _, taken := skip[i]; taken {
			continue
		}
		if g.canonical(e) == want {
			return i, true
		}
	}

	return 0, false
}
