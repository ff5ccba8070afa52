// Degree and strength.
package centrality

import (
	"github.com/tidygraph/go-tidygraph/core"
)

// Degree returns the (possibly weighted) degree of every vertex.
//
// Directed graphs honor the mode: In counts incoming edges, Out
// outgoing, All both. Undirected graphs count each incident edge once
// and a self-loop twice (classic convention); WithLoops(false) skips
// self-loops entirely. With WithWeights the edge attribute is summed
// instead of counting 1 per edge (strength).
func Degree(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}

	w, err := unitOrWeights(g, o.Weights)
	if err != nil {
		return nil, err
	}

	out := make([]float64, g.VertexCount())
	for i, e := range g.EdgeList() {
		loop := e.Source == e.Target
		if loop && !o.Loops {
			continue
		}
		if !g.Directed() {
			out[e.Source] += w[i]
			out[e.Target] += w[i] // a self-loop lands here twice
			continue
		}
		if loop {
			// A directed self-loop is one incoming and one outgoing edge.
			if o.Mode == All {
				out[e.Source] += 2 * w[i]
			} else {
				out[e.Source] += w[i]
			}
			continue
		}
		if o.Mode == All || o.Mode == Out {
			out[e.Source] += w[i]
		}
		if o.Mode == All || o.Mode == In {
			out[e.Target] += w[i]
		}
	}

	return out, nil
}

// unitOrWeights returns per-edge weights: all ones when attr is empty.
func unitOrWeights(g *core.Graph, attr string) ([]float64, error) {
	if attr == "" {
		w := make([]float64, g.EdgeCount())
		for i := range w {
			w[i] = 1
		}

		return w, nil
	}

	return edgeWeights(g, attr)
}
