// Damped power-iteration PageRank.
package centrality

import (
	"math"

	"github.com/tidygraph/go-tidygraph/core"
)

// PageRank returns the stationary rank of every vertex under the random
// surfer model: with probability damping follow an out-edge
// (weight-proportionally when weighted), otherwise jump uniformly.
// Dangling mass is redistributed uniformly. Iteration stops when the L1
// change drops below the tolerance or MaxIter is reached.
func PageRank(g *core.Graph, opts ...Option) ([]float64, error) {
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

	// Out-arcs and total out-weight per vertex. Undirected edges count
	// in both directions.
	adj := adjacency(g, Out, w)
	if !g.Directed() {
		adj = adjacency(g, All, w)
	}
	outSum := make([]float64, n)
	for u := range adj {
		for _, a := range adj[u] {
			outSum[u] += a.w
		}
	}

	rank := make([]float64, n)
	next := make([]float64, n)
	for i := range rank {
		rank[i] = 1 / float64(n)
	}

	base := (1 - o.Damping) / float64(n)
	for iter := 0; iter < o.MaxIter; iter++ {
		var dangling float64
		for i := range next {
			next[i] = 0
		}
		for u := 0; u < n; u++ {
			if outSum[u] == 0 {
				dangling += rank[u]
				continue
			}
			share := o.Damping * rank[u] / outSum[u]
			for _, a := range adj[u] {
				next[a.to] += share * a.w
			}
		}
		spread := base + o.Damping*dangling/float64(n)
		var diff float64
		for i := range next {
			next[i] += spread
			diff += math.Abs(next[i] - rank[i])
		}
		rank, next = next, rank
		if diff < o.Tol {
			break
		}
	}

	return rank, nil
}
