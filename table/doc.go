// Package table provides the uniform in-memory tabular representation
// shared by the graph store, the join engine, and the file adapters.
//
// What
//
//   - Table: an ordered collection of named columns of equal length.
//   - Cell values are arbitrary (any); a nil cell denotes a missing value.
//   - Column order is stable: it is the insertion order, and every adapter
//     and consumer preserves it.
//   - Adapters: CSV (header row + typed cells), YAML (mapping of column
//     name to value list, document order preserved), and a compact msgpack
//     binary codec for snapshots.
//
// Why
//
//   - Join semantics depend on exact row and column ordering; a map-only
//     representation would lose both.
//   - Callers bring data from files or build tables programmatically; both
//     paths converge on the same Table before any graph mutation happens.
//
// Missing values
//
//	A nil cell is "missing" everywhere: CSV reads empty cells as nil and
//	writes nil as empty, YAML uses null, msgpack uses nil. DropEmpty removes
//	columns whose every cell is missing.
package table
