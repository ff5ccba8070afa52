// Describe: a one-line structural summary of the graph.
package tidygraph

import (
	"fmt"
	"strings"

	"github.com/tidygraph/go-tidygraph/classify"
)

// Describe returns a short human-readable description of the graph's
// shape, e.g. "unrooted tree", "rooted forest with 3 trees" or
// "directed acyclic simple graph with 2 component(s)".
func (t *Graph) Describe() string {
	if t.g.VertexCount() == 0 {
		return "An empty graph"
	}

	tree, _ := classify.IsTree(t.g)
	forest, _ := classify.IsForest(t.g)
	components := len(classify.WeakComponents(t.g))

	var parts []string
	if tree || forest {
		if t.g.Directed() {
			parts = append(parts, "rooted")
		} else {
			parts = append(parts, "unrooted")
		}
		if components > 1 {
			parts = append(parts, fmt.Sprintf("forest with %d trees", components))
		} else {
			parts = append(parts, "tree")
		}

		return strings.Join(parts, " ")
	}

	switch {
	case classify.IsDAG(t.g):
		parts = append(parts, "directed acyclic")
	case classify.IsBipartite(t.g):
		parts = append(parts, "bipartite")
	case t.g.Directed():
		parts = append(parts, "directed")
	default:
		parts = append(parts, "undirected")
	}
	if classify.IsSimple(t.g) {
		parts = append(parts, "simple graph")
	} else {
		parts = append(parts, "multigraph")
	}
	parts = append(parts, fmt.Sprintf("with %d component(s)", components))

	return strings.Join(parts, " ")
}
