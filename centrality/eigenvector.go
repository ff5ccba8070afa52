// Eigenvector centrality by power iteration.
package centrality

import (
	"math"

	"github.com/tidygraph/go-tidygraph/core"
)

// Eigenvector returns the leading-eigenvector score of every vertex: a
// vertex scores in proportion to the summed scores of its neighbours,
// weight-proportionally when weighted. Directed graphs use the left
// eigenvector, so score flows along edge direction. A self-loop on an
// undirected graph contributes twice, matching an adjacency matrix
// whose diagonal holds twice the loop weight. The result is scaled so
// the largest score is 1 unless WithScale(false) is given; iteration
// stops when the L1 change drops below the tolerance or MaxIter is
// reached.
func Eigenvector(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}
	w, err := unitOrWeights(g, o.Weights)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}

	// In-arcs: adj[v] lists the vertices whose score flows into v.
	adj := make([][]arc, n)
	for i, e := range g.EdgeList() {
		if g.Directed() {
			adj[e.Target] = append(adj[e.Target], arc{to: e.Source, w: w[i], id: i})
			continue
		}
		if e.Source == e.Target {
			adj[e.Source] = append(adj[e.Source], arc{to: e.Source, w: 2 * w[i], id: i})
			continue
		}
		adj[e.Source] = append(adj[e.Source], arc{to: e.Target, w: w[i], id: i})
		adj[e.Target] = append(adj[e.Target], arc{to: e.Source, w: w[i], id: i})
	}

	score := make([]float64, n)
	next := make([]float64, n)
	for i := range score {
		score[i] = 1 / float64(n)
	}

	for iter := 0; iter < o.MaxIter; iter++ {
		// Iterate on I+A rather than A: the shift keeps bipartite
		// graphs, whose spectrum pairs +r with -r, from oscillating.
		// The eigenvectors are the same.
		for v := 0; v < n; v++ {
			next[v] = score[v]
			for _, a := range adj[v] {
				next[v] += a.w * score[a.to]
			}
		}
		var norm float64
		for _, f := range next {
			norm += f * f
		}
		norm = math.Sqrt(norm)
		var diff float64
		for i := range next {
			next[i] /= norm
			diff += math.Abs(next[i] - score[i])
		}
		score, next = next, score
		if diff < o.Tol {
			break
		}
	}

	if o.Scale {
		var top float64
		for _, f := range score {
			if f > top {
				top = f
			}
		}
		if top > 0 {
			for i := range score {
				score[i] /= top
			}
		}
	}

	return score, nil
}
