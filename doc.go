// Package tidygraph is a tidy, table-first interface over an in-memory
// graph: activate nodes or edges, then join, mutate and measure them as
// if they were dataframes.
//
// The pieces:
//
//   - core: the graph store. Dense ordinal identities, attribute
//     columns, compacting deletion, snapshot tables.
//   - table: the uniform tabular representation plus CSV, YAML and
//     msgpack adapters.
//   - join: relational joins (inner/left/right/outer) between a graph
//     table and a caller table, mutating the graph to the result.
//   - centrality: degree/strength, closeness, harmonic, betweenness,
//     pagerank.
//   - classify: tree, forest, DAG, bipartite and simple recognition.
//
// This package ties them together behind a single Graph wrapper:
//
//	g, err := tidygraph.FromTables(edges, nodes, false)
//	...
//	err = g.Activate(core.Edges).Join(updates, join.WithKind(join.Outer))
//
// A Graph is not safe for concurrent use; one call owns it at a time.
package tidygraph
