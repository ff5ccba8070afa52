// Edge join engine: keys on resolved endpoint ordinals, with canonical
// orientation for undirected graphs.
package join

import (
	"fmt"
	"reflect"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/table"
)

// joinEdges computes the configured join between the graph's edge table
// and y. Y's "from"/"to" endpoint names are resolved to vertex ordinals
// first; a right or outer join naming an unknown vertex fails before any
// mutation (edges never implicitly create vertices).
func joinEdges(g *core.Graph, y *table.Table, o Options) error {
	x := g.EdgeTable()
	edges := g.EdgeList()

	xKeys := make([]any, len(edges))
	for i, e := range edges {
		xKeys[i] = canonicalKey(g.Directed(), e)
	}

	ySrc, yDst, yValid, err := resolveEndpoints(g, y, o.Kind)
	if err != nil {
		return err
	}
	yKeys := make([]any, y.Len())
	for j := range yKeys {
		if !yValid[j] {
			continue
		}
		yKeys[j] = canonicalKey(g.Directed(), core.Endpoints{Source: ySrc[j], Target: yDst[j]})
	}

	p := buildPlan(o.Kind, xKeys, yKeys, yValid)

	merged := buildMerged(mergeInput{
		p:       p,
		x:       x,
		y:       y,
		xCols:   attributeColumns(core.Edges, x),
		yCols:   attributeColumns(core.Edges, y),
		lsuffix: o.LSuffix,
		rsuffix: o.RSuffix,
	})

	// Structural mutation: deletions compact first, additions append in
	// Y encounter order so the merged rows line up with the final edge
	// ordinals.
	if len(p.dele) > 0 {
		pairs := make([]core.Endpoints, len(p.dele))
		for i, ord := range p.dele {
			pairs[i] = edges[ord]
		}
		if err = g.DeleteEdges(pairs); err != nil {
			return err
		}
	}
	if len(p.news) > 0 {
		pairs := make([]core.Endpoints, len(p.news))
		for i, j := range p.news {
			pairs[i] = core.Endpoints{Source: ySrc[j], Target: yDst[j]}
		}
		if err = g.AddEdges(pairs); err != nil {
			return err
		}
	}

	return reconcile(g, core.Edges, merged)
}

// resolveEndpoints maps Y's "from"/"to" name columns onto vertex
// ordinals. Under right and outer semantics an unresolvable name is a
// hard error; under inner and left the row is marked invalid and simply
// matches nothing.
func resolveEndpoints(g *core.Graph, y *table.Table, kind Kind) (src, dst []int, valid []bool, err error) {
	names, _ := g.VertexTable().Column(core.ColName)
	index := make(map[any]int, len(names))
	for i, n := range names {
		if n == nil || !reflect.ValueOf(n).Comparable() {
			continue
		}
		if _, taken := index[n]; !taken {
			index[n] = i
		}
	}

	from, _ := y.Column(core.ColFrom)
	to, _ := y.Column(core.ColTo)
	n := y.Len()
	src = make([]int, n)
	dst = make([]int, n)
	valid = make([]bool, n)
	strict := kind == Right || kind == Outer

	for j := 0; j < n; j++ {
		s, okS := lookupName(index, from[j])
		t, okT := lookupName(index, to[j])
		if !okS || !okT {
			if strict {
				bad := from[j]
				if okS {
					bad = to[j]
				}

				return nil, nil, nil, fmt.Errorf("%w: %v", ErrUnknownVertex, bad)
			}
			continue
		}
		src[j], dst[j], valid[j] = s, t, true
	}

	return src, dst, valid, nil
}

// lookupName resolves an endpoint cell against the name index. Cells
// holding slices or maps cannot be map keys and can never name a
// vertex, so they resolve to nothing instead of panicking.
func lookupName(index map[any]int, v any) (int, bool) {
	if v != nil && !reflect.ValueOf(v).Comparable() {
		return 0, false
	}
	i, ok := index[v]

	return i, ok
}

// canonicalKey returns the matching key of an endpoint pair: ascending
// orientation for undirected graphs, the pair itself otherwise. This is
// what makes (a,b) and (b,a) one logical edge without mirrored rows.
func canonicalKey(directed bool, e core.Endpoints) core.Endpoints {
	if !directed && e.Source > e.Target {
		return core.Endpoints{Source: e.Target, Target: e.Source}
	}

	return e
}
