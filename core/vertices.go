// Vertex lifecycle: addition, deletion with compaction, name lookups.
package core

import "fmt"

// AddVertices appends n vertices with all-missing attribute values.
// New ordinals continue the dense range; existing ordinals are unchanged.
func (g *Graph) AddVertices(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	for i := 0; i < n; i++ {
		g.vattrs.Append(nil) // one all-missing row per vertex
	}
	g.nVert += n

	return nil
}

// DeleteVertices removes the given vertex ordinals (any order, duplicates
// tolerated) together with every incident edge, then compacts both ordinal
// spaces. Surviving vertices and edges keep their relative order.
func (g *Graph) DeleteVertices(ids []int) error {
	doomed := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id < 0 || id >= g.nVert {
			return fmt.Errorf("%w: %d (have %d vertices)", ErrVertexRange, id, g.nVert)
		}
		doomed[id] = struct{}{}
	}
	if len(doomed) == 0 {
		return nil
	}

	// Remap surviving ordinals: remap[old] = new, -1 for deleted.
	remap := make([]int, g.nVert)
	next := 0
	var doomedRows []int
	for v := 0; v < g.nVert; v++ {
		if _, dead := doomed[v]; dead {
			remap[v] = -1
			doomedRows = append(doomedRows, v)
			continue
		}
		remap[v] = next
		next++
	}

	// Drop incident edges and renumber the rest.
	keptEdges := g.edges[:0]
	var doomedEdgeRows []int
	for i, e := range g.edges {
		if remap[e.Source] < 0 || remap[e.Target] < 0 {
			doomedEdgeRows = append(doomedEdgeRows, i)
			continue
		}
		keptEdges = append(keptEdges, Endpoints{Source: remap[e.Source], Target: remap[e.Target]})
	}
	g.edges = keptEdges

	// A store without columns tracks no rows; skip it.
	if len(g.eattrs.Columns()) > 0 {
		if err := g.eattrs.DeleteRows(doomedEdgeRows); err != nil {
			return err
		}
	}
	if len(g.vattrs.Columns()) > 0 {
		if err := g.vattrs.DeleteRows(doomedRows); err != nil {
			return err
		}
	}
	g.nVert = next

	return nil
}

// Names returns the vertex name column as strings; vertices with a
// missing or non-string name yield "".
func (g *Graph) Names() []string {
	out := make([]string, g.nVert)
	col, ok := g.vattrs.Column(ColName)
	if !ok {
		return out
	}
	for i, v := range col {
		if s, isStr := v.(string); isStr {
			out[i] = s
		}
	}

	return out
}

// VertexIndex resolves a caller-visible name to a vertex ordinal.
// A negative lookup returns ok=false; it is not an error.
// When names repeat (possible after join explosion) the lowest ordinal wins.
func (g *Graph) VertexIndex(name any) (int, bool) {
	col, ok := g.vattrs.Column(ColName)
	if !ok {
		return 0, false
	}
	for i, v := range col {
		if v == name {
			return i, true
		}
	}

	return 0, false
}
