// Brandes' betweenness accumulation over edges.
package centrality

import (
	"container/heap"
	"math"

	"github.com/tidygraph/go-tidygraph/core"
)

// edgePred records how a shortest path reached a vertex: the
// predecessor and the edge travelled.
type edgePred struct {
	u int
	e int
}

// EdgeBetweenness returns, per edge, the number of shortest paths
// between vertex pairs travelling along it. Equal-length parallel edges
// split the count between them. Directed graphs count directed paths
// under the mode policy; undirected counts are halved since each path
// is discovered from both endpoints.
func EdgeBetweenness(g *core.Graph, opts ...Option) ([]float64, error) {
	o, err := build(g, opts)
	if err != nil {
		return nil, err
	}
	w, err := unitOrWeights(g, o.Weights)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	adj := adjacency(g, o.Mode, w)
	eb := make([]float64, g.EdgeCount())

	sigma := make([]float64, n) // shortest path counts
	dist := make([]float64, n)
	delta := make([]float64, n) // dependency accumulator
	preds := make([][]edgePred, n)

	for s := 0; s < n; s++ {
		for i := 0; i < n; i++ {
			sigma[i] = 0
			dist[i] = math.Inf(1)
			delta[i] = 0
			preds[i] = preds[i][:0]
		}
		sigma[s] = 1
		dist[s] = 0

		// Vertices in non-decreasing distance order.
		order := make([]int, 0, n)

		if o.Weights == "" {
			queue := []int{s}
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				order = append(order, u)
				for _, a := range adj[u] {
					v := a.to
					if math.IsInf(dist[v], 1) {
						dist[v] = dist[u] + 1
						queue = append(queue, v)
					}
					if dist[v] == dist[u]+1 {
						sigma[v] += sigma[u]
						preds[v] = append(preds[v], edgePred{u: u, e: a.id})
					}
				}
			}
		} else {
			pq := &distHeap{{v: s, d: 0}}
			done := make([]bool, n)
			for pq.Len() > 0 {
				item := heap.Pop(pq).(distItem)
				u := item.v
				if done[u] {
					continue
				}
				done[u] = true
				order = append(order, u)
				for _, a := range adj[u] {
					v := a.to
					nd := dist[u] + a.w
					if nd < dist[v] {
						dist[v] = nd
						sigma[v] = sigma[u]
						preds[v] = append(preds[v][:0], edgePred{u: u, e: a.id})
						heap.Push(pq, distItem{v: v, d: nd})
					} else if nd == dist[v] && !done[v] {
						sigma[v] += sigma[u]
						preds[v] = append(preds[v], edgePred{u: u, e: a.id})
					}
				}
			}
		}

		// Accumulate dependencies onto the edges, farthest first.
		for i := len(order) - 1; i > 0; i-- {
			v := order[i]
			coef := (1 + delta[v]) / sigma[v]
			for _, p := range preds[v] {
				c := sigma[p.u] * coef
				delta[p.u] += c
				eb[p.e] += c
			}
		}
	}

	if !g.Directed() {
		for i := range eb {
			eb[i] /= 2
		}
	}

	return eb, nil
}
