// Package join synchronizes a graph's vertex or edge table with an
// externally supplied table under relational join semantics.
//
// What
//
//   - Join computes an inner, left, right or outer join between the
//     graph's active table (X) and a caller table (Y), then mutates the
//     graph so that its structure and attributes reflect the result:
//     vertices or edges may be deleted, added, and their whole attribute
//     set is replaced by the merged columns.
//   - Node joins key on every non-reserved column both sides share,
//     which always includes "name" (an explicit WithOn may narrow the
//     key, but must keep "name"). Edge joins key on the ("from","to")
//     endpoint names, resolved to vertex ordinals before matching.
//     Edges never create vertices implicitly: a right or outer edge
//     join naming an unknown vertex fails before any mutation.
//   - Undirected graphs match edge keys under a canonical orientation,
//     so (a,b) and (b,a) are one key and no mirrored duplicate rows can
//     appear in a result.
//   - One-to-many matches "explode": for a key with nx existing rows and
//     ny caller rows, the first nx caller rows continue existing
//     entities and the surplus become new vertices or parallel edges.
//     Classification is a single pass over per-key (existing, seen)
//     counters.
//   - Attribute name collisions between X and Y are resolved with the
//     caller's suffix pair (default ".x"/".y"); columns that end up
//     entirely missing are dropped.
//
// Atomicity
//
//	Every validation failure - missing identity columns, reserved column
//	names, unknown join kind, bad "on" specification, unresolvable
//	endpoint names - is raised before the graph is touched. A failed
//	Join leaves the graph exactly as it was.
//
// Ordering discipline
//
//	The final attribute assignment must align index-for-index with the
//	post-mutation ordinal order. The engine therefore emits merged rows
//	as: continuations in X (ordinal) order first, then new rows in Y
//	encounter order - exactly the order deletion compaction followed by
//	appending produces.
package join
