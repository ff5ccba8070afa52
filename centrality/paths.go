// Shortest-path machinery shared by Closeness, Harmonic and Betweenness:
// breadth-first search for unweighted graphs, Dijkstra with a lazy
// decrease-key heap for weighted ones.
package centrality

import (
	"container/heap"
	"math"

	"github.com/tidygraph/go-tidygraph/core"
)

// arc is one adjacency entry: target vertex, edge weight and the dense
// edge ordinal it came from.
type arc struct {
	to int
	w  float64
	id int
}

// adjacency builds per-vertex arc lists under the mode policy.
// w holds per-edge weights (all ones when unweighted).
func adjacency(g *core.Graph, mode Mode, w []float64) [][]arc {
	adj := make([][]arc, g.VertexCount())
	for i, e := range g.EdgeList() {
		if !g.Directed() || mode == All {
			adj[e.Source] = append(adj[e.Source], arc{to: e.Target, w: w[i], id: i})
			if e.Source != e.Target {
				adj[e.Target] = append(adj[e.Target], arc{to: e.Source, w: w[i], id: i})
			}
			continue
		}
		if mode == Out {
			adj[e.Source] = append(adj[e.Source], arc{to: e.Target, w: w[i], id: i})
		} else {
			adj[e.Target] = append(adj[e.Target], arc{to: e.Source, w: w[i], id: i})
		}
	}

	return adj
}

// distances computes single-source shortest distances over adj.
// Unreachable vertices hold math.Inf(1). weighted selects Dijkstra.
func distances(adj [][]arc, src int, weighted bool) []float64 {
	n := len(adj)
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[src] = 0

	if !weighted {
		// Plain BFS frontier walk.
		queue := []int{src}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, a := range adj[u] {
				if math.IsInf(dist[a.to], 1) {
					dist[a.to] = dist[u] + 1
					queue = append(queue, a.to)
				}
			}
		}

		return dist
	}

	// Dijkstra with lazy decrease-key: duplicates are pushed and stale
	// entries skipped on pop.
	pq := &distHeap{{v: src, d: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if item.d > dist[item.v] {
			continue // stale entry
		}
		for _, a := range adj[item.v] {
			if nd := item.d + a.w; nd < dist[a.to] {
				dist[a.to] = nd
				heap.Push(pq, distItem{v: a.to, d: nd})
			}
		}
	}

	return dist
}

// Closeness returns, per vertex, the ratio of reachable vertices to the
// summed distance towards them; isolated vertices score 0. With
// WithNormalized the value is additionally scaled by reachable/(n-1).
func Closeness(g *core.Graph, opts ...Option) ([]float64, error) {
	return pathMeasure(g, opts, func(dist []float64, n int, normalized bool) float64 {
		var sum float64
		reach := 0
		for _, d := range dist {
			if d == 0 || math.IsInf(d, 1) {
				continue
			}
			sum += d
			reach++
		}
		if reach == 0 || sum == 0 {
			return 0
		}
		c := float64(reach) / sum
		if normalized && n > 1 {
			c *= float64(reach) / float64(n-1)
		}

		return c
	})
}

// Harmonic returns, per vertex, the sum of inverse distances to every
// other vertex (unreachable contributing 0). With WithNormalized the sum
// is divided by n-1.
func Harmonic(g *core.Graph, opts ...Option) ([]float64, error) {
	return pathMeasure(g, opts, func(dist []float64, n int, normalized bool) float64 {
		var sum float64
		for _, d := range dist {
			if d == 0 || math.IsInf(d, 1) {
				continue
			}
			sum += 1 / d
		}
		if normalized && n > 1 {
			sum /= float64(n - 1)
		}

		return sum
	})
}

// pathMeasure runs one shortest-path pass per vertex and folds the
// distance vector into a single score.
func pathMeasure(g *core.Graph, opts []Option, fold func(dist []float64, n int, normalized bool) float64) ([]float64, error) {
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
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		out[v] = fold(distances(adj, v, o.Weights != ""), n, o.Normalized)
	}

	return out, nil
}

// distItem / distHeap implement the Dijkstra priority queue.
type distItem struct {
	v int
	d float64
}

type distHeap []distItem

func (h distHeap) Len() int            { return len(h) }
func (h distHeap) Less(i, j int) bool  { return h[i].d < h[j].d }
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
