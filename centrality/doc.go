// Package centrality computes importance measures over a core.Graph:
// degree (and weighted strength), closeness, harmonic, betweenness,
// edge betweenness, eigenvector, and pagerank.
//
// What
//
//   - Degree counts incident edges per vertex, with directional modes
//     (in/out/all) and a self-loop policy; with WithWeights it becomes
//     strength, summing an edge attribute instead of counting.
//   - Closeness and Harmonic are built on shortest-path distances:
//     breadth-first search when unweighted, Dijkstra with a lazy
//     decrease-key heap when an edge weight attribute is given.
//   - Betweenness and EdgeBetweenness are Brandes' accumulation over
//     the same two shortest-path machines, attributing path counts to
//     vertices and to the edges travelled respectively.
//   - Eigenvector is power iteration towards the adjacency matrix's
//     leading eigenvector (the left one on directed graphs).
//   - PageRank is damped power iteration with uniform redistribution of
//     dangling mass.
//
// All measures return one value per vertex (per edge for
// EdgeBetweenness), aligned with the dense ordinals, and never mutate
// the graph. Edge weights are read from a named edge attribute column
// and must be non-negative numbers.
package centrality
