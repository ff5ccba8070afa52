// Row classification: one pass over per-key (existing, seen) counters
// decides, for every row of the merge, whether it continues an existing
// entity, deletes one, or introduces a new one.
package join

// pairing binds one existing (X) row to its matched caller (Y) row.
// y is -1 when the X row survives without a match.
type pairing struct {
	x int
	y int
}

// plan is the outcome of classification, consumed once to drive the
// structural mutation and the merged-table build.
//
// keep is ordered by X ordinal, news by Y encounter order; together with
// compaction-stable deletion this yields the exact post-mutation order.
type plan struct {
	keep []pairing
	dele []int // X ordinals to delete
	news []int // Y rows becoming new entities
}

// bucket collects the row positions sharing one join key.
type bucket struct {
	xs []int
	ys []int
}

// buildPlan classifies every row for the given kind.
//
// xKeys[i] is the comparable join key of X row i; yKeys[j] of Y row j.
// yValid[j] == false marks a caller row whose key could not be resolved
// (edge joins with unknown endpoint names under inner/left); such rows
// match nothing and are never materialized.
func buildPlan(kind Kind, xKeys, yKeys []any, yValid []bool) plan {
	buckets := make(map[any]*bucket, len(xKeys))
	at := func(k any) *bucket {
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}

		return b
	}
	for i, k := range xKeys {
		b := at(k)
		b.xs = append(b.xs, i)
	}
	for j, k := range yKeys {
		if !yValid[j] {
			continue
		}
		b := at(k)
		b.ys = append(b.ys, j)
	}

	var p plan

	// Existing rows, in X order. seenX counts this key's X rows so far,
	// pairing the i-th existing entity with the i-th caller row.
	seenX := make(map[any]int, len(buckets))
	for i, k := range xKeys {
		b := buckets[k]
		pos := seenX[k]
		seenX[k] = pos + 1
		ny := len(b.ys)

		if ny == 0 {
			// Key absent from Y.
			switch kind {
			case Inner, Right:
				p.dele = append(p.dele, i)
			case Left, Outer:
				p.keep = append(p.keep, pairing{x: i, y: -1})
			}
			continue
		}

		if kind == Right {
			// Right results carry exactly Y's cardinality: existing rows
			// beyond it are deleted, never re-matched.
			if pos < ny {
				p.keep = append(p.keep, pairing{x: i, y: b.ys[pos]})
			} else {
				p.dele = append(p.dele, i)
			}
			continue
		}

		// Inner/Left/Outer: every key-matched existing row survives.
		// Surplus existing rows reuse the last caller row of the key.
		m := pos
		if m >= ny {
			m = ny - 1
		}
		p.keep = append(p.keep, pairing{x: i, y: b.ys[m]})
	}

	// Caller rows, in Y encounter order. A row whose seen counter
	// exceeds the key's existing count introduces a new entity.
	seenY := make(map[any]int, len(buckets))
	for j, k := range yKeys {
		if !yValid[j] {
			continue
		}
		b := buckets[k]
		pos := seenY[k]
		seenY[k] = pos + 1

		if pos < len(b.xs) {
			continue // continuation, already paired above
		}
		if kind == Left {
			continue // left never adds entities
		}
		if len(b.xs) == 0 {
			// Key absent from X: materialized by right/outer only.
			if kind == Right || kind == Outer {
				p.news = append(p.news, j)
			}
			continue
		}
		// Explosion: surplus caller rows of a matched key become new
		// entities for every kind that may add.
		p.news = append(p.news, j)
	}

	return p
}
