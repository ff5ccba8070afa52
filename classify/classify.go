// Shape recognition over the dense-ordinal graph store.
package classify

import (
	"errors"

	"github.com/tidygraph/go-tidygraph/core"
)

// ErrEmptyGraph is returned by IsTree and IsForest for a graph with no
// vertices; the shape is undefined there.
var ErrEmptyGraph = errors.New("classify: graph has no vertices")

// IsTree reports whether g is a tree: a connected graph whose underlying
// undirected graph has exactly n-1 edges and no cycles.
func IsTree(g *core.Graph) (bool, error) {
	if g.VertexCount() == 0 {
		return false, ErrEmptyGraph
	}

	return g.EdgeCount() == g.VertexCount()-1 && len(WeakComponents(g)) == 1, nil
}

// IsForest reports whether g is a forest: every weak component is a tree.
func IsForest(g *core.Graph) (bool, error) {
	if g.VertexCount() == 0 {
		return false, ErrEmptyGraph
	}
	comp := componentOf(g)
	vs := make([]int, 0)    // vertices per component
	es := make([]int, 0)    // edges per component
	grow := func(id int) { // ensure counters exist up to id
		for len(vs) <= id {
			vs = append(vs, 0)
			es = append(es, 0)
		}
	}
	for _, c := range comp {
		grow(c)
		vs[c]++
	}
	for _, e := range g.EdgeList() {
		es[comp[e.Source]]++
	}
	for i := range vs {
		if es[i] != vs[i]-1 {
			return false, nil
		}
	}

	return true, nil
}

// IsDAG reports whether g is a directed acyclic graph. An undirected
// graph qualifies only when it has no edges.
func IsDAG(g *core.Graph) bool {
	if !g.Directed() {
		return g.EdgeCount() == 0
	}

	// Kahn's algorithm: repeatedly peel zero in-degree vertices.
	n := g.VertexCount()
	indeg := make([]int, n)
	out := make([][]int, n)
	for _, e := range g.EdgeList() {
		indeg[e.Target]++
		out[e.Source] = append(out[e.Source], e.Target)
	}
	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	seen := 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		seen++
		for _, v := range out[u] {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	return seen == n
}

// IsSimple reports whether g has no self-loops and no parallel edges
// (under canonical orientation for undirected graphs).
func IsSimple(g *core.Graph) bool {
	seen := make(map[core.Endpoints]struct{}, g.EdgeCount())
	for _, e := range g.EdgeList() {
		if e.Source == e.Target {
			return false
		}
		k := e
		if !g.Directed() && k.Source > k.Target {
			k.Source, k.Target = k.Target, k.Source
		}
		if _, dup := seen[k]; dup {
			return false
		}
		seen[k] = struct{}{}
	}

	return true
}

// IsBipartite reports whether the underlying undirected graph is
// two-colorable. Self-loops make a graph non-bipartite.
func IsBipartite(g *core.Graph) bool {
	n := g.VertexCount()
	adj := underlying(g)
	color := make([]int, n) // 0 unseen, 1/2 the two sides
	for s := 0; s < n; s++ {
		if color[s] != 0 {
			continue
		}
		color[s] = 1
		queue := []int{s}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range adj[u] {
				if v == u {
					return false // self-loop
				}
				if color[v] == 0 {
					color[v] = 3 - color[u]
					queue = append(queue, v)
					continue
				}
				if color[v] == color[u] {
					return false
				}
			}
		}
	}

	return true
}

// WeakComponents returns the weakly connected components as slices of
// vertex ordinals, each in ascending order, components ordered by their
// smallest vertex.
func WeakComponents(g *core.Graph) [][]int {
	comp := componentOf(g)
	var out [][]int
	for v, c := range comp {
		for len(out) <= c {
			out = append(out, nil)
		}
		out[c] = append(out[c], v)
	}

	return out
}

// componentOf labels every vertex with its weak component, components
// numbered by first-seen (smallest) vertex.
func componentOf(g *core.Graph) []int {
	n := g.VertexCount()
	adj := underlying(g)
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	next := 0
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		// BFS to collect the component.
		comp[s] = next
		queue := []int{s}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range adj[u] {
				if comp[v] < 0 {
					comp[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return comp
}

// underlying builds undirected adjacency lists, ignoring direction.
func underlying(g *core.Graph) [][]int {
	adj := make([][]int, g.VertexCount())
	for _, e := range g.EdgeList() {
		adj[e.Source] = append(adj[e.Source], e.Target)
		if e.Source != e.Target {
			adj[e.Target] = append(adj[e.Target], e.Source)
		}
	}

	return adj
}
