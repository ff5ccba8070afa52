// Package classify recognizes structural shapes of a core.Graph:
// trees, forests, DAGs, bipartite and simple graphs, and weak
// connectivity components.
//
// Directed graphs are classified on their underlying undirected graph
// where the shape is an undirected notion (tree, forest, bipartite,
// components): each directed edge is treated as a single undirected edge
// of a multigraph.
//
// All checks are pure queries; none of them mutates the graph.
package classify
