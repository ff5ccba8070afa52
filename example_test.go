package tidygraph_test

import (
	"fmt"

	tidygraph "github.com/tidygraph/go-tidygraph"
	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/join"
	"github.com/tidygraph/go-tidygraph/table"
)

// Build a small undirected graph from tables, join fresh attributes
// into its node table, and extend its edge set with an outer join.
func Example() {
	nodes, _ := table.Build(
		table.Column{Name: "name", Values: []any{"a", "b", "c"}},
	)
	edges, _ := table.Build(
		table.Column{Name: "from", Values: []any{"a", "b"}},
		table.Column{Name: "to", Values: []any{"b", "c"}},
	)
	g, _ := tidygraph.FromTables(edges, nodes, false)

	scores, _ := table.Build(
		table.Column{Name: "name", Values: []any{"a", "b"}},
		table.Column{Name: "score", Values: []any{1, 2}},
	)
	_ = g.Join(scores) // left join into the node table

	closing, _ := table.Build(
		table.Column{Name: "from", Values: []any{"c"}},
		table.Column{Name: "to", Values: []any{"a"}},
	)
	_ = g.Activate(core.Edges).Join(closing, join.WithKind(join.Outer))

	score, _ := g.Core().Attribute(core.Nodes, "score")
	fmt.Println("score:", score)
	fmt.Println("edges:", g.Core().EdgeCount())
	fmt.Println(g.Describe())
	// Output:
	// score: [1 2 <nil>]
	// edges: 3
	// undirected simple graph with 1 component(s)
}
