// Package core provides the graph store underneath the tidy join engine:
// a directed or undirected graph with dense ordinal identities and
// per-context attribute columns.
//
// What
//
//   - Vertices and edges are identified by dense ordinals 0..count-1.
//     Deletions compact the ordinal space, preserving the relative order
//     of the survivors.
//   - Attributes are ordered columns (name → value slice) aligned
//     index-for-index with the vertex or edge ordinals. A nil cell is a
//     missing value. The "name" vertex column is how callers address
//     vertices from the outside.
//   - In an undirected graph an edge's endpoints are stored in ascending
//     order, so (a,b) and (b,a) are one edge and the edge table never
//     carries both orientations.
//   - Snapshots: VertexTable and EdgeTable export disposable table.Table
//     copies carrying the identity column ("vertex ID" / "edge ID") equal
//     to the ordinal index.
//
// Concurrency
//
//	The store is deliberately unsynchronized: one join call assumes
//	exclusive access for its duration, and callers sharing a Graph across
//	goroutines must serialize externally.
//
// Errors:
//
//	ErrNegativeCount    - negative vertex count requested.
//	ErrVertexRange      - endpoint or ordinal outside 0..n-1.
//	ErrEdgeNotFound     - no edge with the requested endpoints.
//	ErrReservedName     - attribute name collides with a reserved column.
//	ErrLengthMismatch   - attribute values not aligned with entity count.
package core
