// Node join engine: keys on the columns both sides share.
package join

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/table"
)

// joinNodes computes the configured join between the graph's vertex
// table and y, then applies the structural and attribute changes.
//
// The join key defaults to every non-reserved column present on both
// sides, which always includes "name". Keying on the shared columns is
// what makes a left join against the graph's own table a no-op: shared
// attribute columns match instead of colliding into suffixed pairs.
func joinNodes(g *core.Graph, y *table.Table, o Options) error {
	x := g.VertexTable()

	keyCols := o.On
	if len(keyCols) == 0 {
		keyCols = commonColumns(x, y)
	} else {
		for _, c := range keyCols {
			if c != core.ColName && !x.Has(c) {
				return fmt.Errorf("%w: %q is not a vertex attribute", ErrBadOn, c)
			}
		}
	}

	xKeys := compositeKeys(x, keyCols, g.VertexCount())
	yKeys := compositeKeys(y, keyCols, y.Len())
	yValid := make([]bool, y.Len())
	for i := range yValid {
		yValid[i] = true // node keys never fail to resolve
	}

	p := buildPlan(o.Kind, xKeys, yKeys, yValid)

	merged := buildMerged(mergeInput{
		p:       p,
		x:       x,
		y:       y,
		xCols:   attributeColumns(core.Nodes, x, keyCols...),
		yCols:   attributeColumns(core.Nodes, y, keyCols...),
		keyCols: keyCols,
		lsuffix: o.LSuffix,
		rsuffix: o.RSuffix,
	})

	// Structural mutation: deletions compact first, additions append.
	if len(p.dele) > 0 {
		if err := g.DeleteVertices(p.dele); err != nil {
			return err
		}
	}
	if len(p.news) > 0 {
		if err := g.AddVertices(len(p.news)); err != nil {
			return err
		}
	}

	return reconcile(g, core.Nodes, merged)
}

// commonColumns lists the non-reserved columns present on both sides,
// "name" first, the rest in X column order.
func commonColumns(x, y *table.Table) []string {
	out := []string{core.ColName}
	for _, c := range x.Columns() {
		if c == core.ColName || core.Reserved(core.Nodes, c) {
			continue
		}
		if y.Has(c) {
			out = append(out, c)
		}
	}

	return out
}

// compositeKeys builds one comparable key per row from the named
// columns. A column absent from t contributes a missing value, so an
// unnamed snapshot matches only missing caller names.
func compositeKeys(t *table.Table, cols []string, n int) []any {
	parts := make([][]any, len(cols))
	for i, c := range cols {
		col, ok := t.Column(c)
		if !ok {
			col = make([]any, n)
		}
		parts[i] = col
	}

	keys := make([]any, n)
	if len(cols) == 1 {
		for r, v := range parts[0] {
			if v == nil || reflect.ValueOf(v).Comparable() {
				keys[r] = v
				continue
			}
			// Slices and maps from the codecs cannot index the plan's
			// buckets; encode them like composite keys.
			keys[r] = fmt.Sprintf("%#v", v)
		}

		return keys
	}

	var b strings.Builder
	for r := 0; r < n; r++ {
		b.Reset()
		for i := range parts {
			if i > 0 {
				b.WriteByte(0x1f)
			}
			fmt.Fprintf(&b, "%#v", parts[i][r])
		}
		keys[r] = b.String()
	}

	return keys
}

// attributeColumns lists the columns of t to carry into the merge:
// everything except reserved bookkeeping columns and the join key(s).
func attributeColumns(a core.Active, t *table.Table, keys ...string) []string {
	skip := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		skip[k] = struct{}{}
	}
	var out []string
	for _, c := range t.Columns() {
		if core.Reserved(a, c) {
			continue
		}
		if _, ok := skip[c]; ok {
			continue
		}
		out = append(out, c)
	}

	return out
}
