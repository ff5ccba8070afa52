package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tidygraph/go-tidygraph/table"
)

func sample(t *testing.T) *table.Table {
	t.Helper()
	out, err := table.Build(
		table.Column{Name: "name", Values: []any{"a", "b", "c"}},
		table.Column{Name: "score", Values: []any{int64(1), int64(2), nil}},
	)
	require.NoError(t, err)

	return out
}

func TestBuildAndAccess(t *testing.T) {
	tb := sample(t)

	require.Equal(t, 3, tb.Len())
	require.Equal(t, []string{"name", "score"}, tb.Columns())
	require.True(t, tb.Has("score"))
	require.False(t, tb.Has("missing"))

	v, ok := tb.Value("score", 1)
	require.True(t, ok)
	require.Equal(t, int64(2), v)
	_, ok = tb.Value("score", 7)
	require.False(t, ok)

	row, err := tb.Row(2)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"name": "c", "score": nil}, row)
	_, err = tb.Row(3)
	require.ErrorIs(t, err, table.ErrRowRange)
}

func TestAddColumnRules(t *testing.T) {
	tb := table.New()
	require.ErrorIs(t, tb.AddColumn("", nil), table.ErrEmptyName)
	require.NoError(t, tb.AddColumn("a", []any{1, 2}))
	require.ErrorIs(t, tb.AddColumn("a", []any{3, 4}), table.ErrColumnExists)
	require.ErrorIs(t, tb.AddColumn("b", []any{1}), table.ErrLengthMismatch)

	// The stored column is a private copy.
	src := []any{1, 2}
	require.NoError(t, tb.AddColumn("c", src))
	src[0] = 99
	v, _ := tb.Value("c", 0)
	require.Equal(t, 1, v)
}

func TestSetColumn(t *testing.T) {
	tb := sample(t)
	require.ErrorIs(t, tb.SetColumn("score", []any{int64(9)}), table.ErrLengthMismatch)
	require.NoError(t, tb.SetColumn("score", []any{int64(9), int64(8), int64(7)}))
	col, _ := tb.Column("score")
	require.Equal(t, []any{int64(9), int64(8), int64(7)}, col)

	// Absent names are simply added.
	require.NoError(t, tb.SetColumn("extra", []any{nil, nil, nil}))
	require.Equal(t, []string{"name", "score", "extra"}, tb.Columns())
}

func TestDropAndRename(t *testing.T) {
	tb := sample(t)
	tb.Drop("missing", "score")
	require.Equal(t, []string{"name"}, tb.Columns())

	require.ErrorIs(t, tb.Rename("missing", "x"), table.ErrColumnNotFound)
	require.NoError(t, tb.Rename("name", "label"))
	require.Equal(t, []string{"label"}, tb.Columns())

	require.NoError(t, tb.AddColumn("other", []any{nil, nil, nil}))
	require.ErrorIs(t, tb.Rename("label", "other"), table.ErrColumnExists)
}

func TestAppend(t *testing.T) {
	tb := sample(t)

	tb.Append(map[string]any{"name": "d", "grade": "A"})

	require.Equal(t, 4, tb.Len())
	row, err := tb.Row(3)
	require.NoError(t, err)
	require.Equal(t, map[string]any{"name": "d", "score": nil, "grade": "A"}, row)
	// The new column is back-filled with missing values.
	grade, _ := tb.Column("grade")
	require.Equal(t, []any{nil, nil, nil, "A"}, grade)

	// A nil row appends all-missing cells.
	tb.Append(nil)
	require.Equal(t, 5, tb.Len())
}

func TestDeleteRows(t *testing.T) {
	tb := sample(t)
	require.ErrorIs(t, tb.DeleteRows([]int{5}), table.ErrRowRange)

	require.NoError(t, tb.DeleteRows([]int{2, 0, 0}))
	require.Equal(t, 1, tb.Len())
	name, _ := tb.Column("name")
	require.Equal(t, []any{"b"}, name)
}

func TestCloneIsDeep(t *testing.T) {
	tb := sample(t)
	cp := tb.Clone()
	require.True(t, tb.Equal(cp))

	require.NoError(t, cp.Set("name", 0, "z"))
	cp.Drop("score")

	v, _ := tb.Value("name", 0)
	require.Equal(t, "a", v)
	require.True(t, tb.Has("score"))
	require.False(t, tb.Equal(cp))
}

func TestDropEmpty(t *testing.T) {
	tb, err := table.Build(
		table.Column{Name: "keep", Values: []any{nil, int64(1)}},
		table.Column{Name: "gone", Values: []any{nil, nil}},
	)
	require.NoError(t, err)

	tb.DropEmpty()

	require.Equal(t, []string{"keep"}, tb.Columns())

	// A zero-row table keeps its (vacuously empty) columns.
	empty, err := table.Build(table.Column{Name: "a", Values: nil})
	require.NoError(t, err)
	empty.DropEmpty()
	require.Equal(t, []string{"a"}, empty.Columns())
}

func TestEqual(t *testing.T) {
	a := sample(t)
	b := sample(t)
	require.True(t, a.Equal(b))

	require.NoError(t, b.Set("score", 0, int64(5)))
	require.False(t, a.Equal(b))

	c := sample(t)
	require.NoError(t, c.Rename("score", "points"))
	require.False(t, a.Equal(c))
}

func TestEqualNonComparableCells(t *testing.T) {
	build := func(v any) *table.Table {
		out, err := table.Build(table.Column{Name: "tags", Values: []any{v}})
		require.NoError(t, err)

		return out
	}

	// Decoded YAML sequences land in cells as []any; comparing them
	// must not panic.
	a := build([]any{"x", "y"})
	b := build([]any{"x", "y"})
	require.True(t, a.Equal(b))

	require.False(t, a.Equal(build([]any{"x"})))
	require.False(t, a.Equal(build("x")))
	require.False(t, build("x").Equal(a))
}
