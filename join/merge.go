// Merged-table construction and the attribute reconciler.
package join

import (
	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/table"
)

// mergeInput carries everything buildMerged needs to assemble the final
// table: the classified plan, both source tables, the attribute columns
// to carry from each side, and the optional emitted key columns.
type mergeInput struct {
	p     plan
	x     *table.Table
	y     *table.Table
	xCols []string
	yCols []string

	// keyCols, when non-empty, are emitted first and unsuffixed:
	// continuation rows take the X value, new rows the Y value (node
	// joins emit "name" and any shared key columns; edge joins none).
	keyCols []string

	lsuffix string
	rsuffix string
}

// buildMerged assembles the merge result: continuation rows in X order
// followed by new rows in Y encounter order. Colliding column names are
// suffixed; key columns are emitted once, unsuffixed.
func buildMerged(in mergeInput) *table.Table {
	collide := make(map[string]struct{})
	ySet := make(map[string]struct{}, len(in.yCols))
	for _, c := range in.yCols {
		ySet[c] = struct{}{}
	}
	for _, c := range in.xCols {
		if _, ok := ySet[c]; ok {
			collide[c] = struct{}{}
		}
	}

	rows := len(in.p.keep) + len(in.p.news)
	out := table.New()

	for _, c := range in.keyCols {
		xv, xok := in.x.Column(c)
		yv, yok := in.y.Column(c)
		vals := make([]any, 0, rows)
		for _, pr := range in.p.keep {
			if xok {
				vals = append(vals, xv[pr.x])
			} else {
				vals = append(vals, nil)
			}
		}
		for _, j := range in.p.news {
			if yok {
				vals = append(vals, yv[j])
			} else {
				vals = append(vals, nil)
			}
		}
		_ = out.AddColumn(c, vals)
	}

	for _, c := range in.xCols {
		src, _ := in.x.Column(c)
		vals := make([]any, 0, rows)
		for _, pr := range in.p.keep {
			vals = append(vals, src[pr.x])
		}
		for range in.p.news {
			vals = append(vals, nil) // new entities have no X side
		}
		name := c
		if _, ok := collide[c]; ok {
			name = c + in.lsuffix
		}
		_ = out.AddColumn(name, vals)
	}

	for _, c := range in.yCols {
		src, _ := in.y.Column(c)
		vals := make([]any, 0, rows)
		for _, pr := range in.p.keep {
			if pr.y >= 0 {
				vals = append(vals, src[pr.y])
			} else {
				vals = append(vals, nil) // key absent from the caller side
			}
		}
		for _, j := range in.p.news {
			vals = append(vals, src[j])
		}
		name := c
		if _, ok := collide[c]; ok {
			name = c + in.rsuffix
		}
		_ = out.AddColumn(name, vals)
	}

	return out
}

// reconcile replaces the whole attribute set of the active context with
// the merged table's non-reserved columns. The merged row order already
// matches the post-mutation ordinal order; this is where the ordering
// invariant pays off, one aligned SetAttribute per column.
func reconcile(g *core.Graph, a core.Active, merged *table.Table) error {
	merged.DropEmpty()
	g.ClearAttributes(a)
	for _, col := range merged.Columns() {
		if core.Reserved(a, col) {
			continue
		}
		vals, _ := merged.Column(col)
		if err := g.SetAttribute(a, col, vals); err != nil {
			return err
		}
	}

	return nil
}
