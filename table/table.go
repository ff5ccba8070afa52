// Package table implements the ordered-column Table type.
//
// This file declares Table, Column, sentinel errors, and all in-memory
// operations. Adapters live in csv.go, yaml.go and msgpack.go.
package table

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// Sentinel errors for table operations.
var (
	// ErrColumnExists is returned when adding a column under a taken name.
	ErrColumnExists = errors.New("table: column already exists")

	// ErrColumnNotFound is returned when a named column is absent.
	ErrColumnNotFound = errors.New("table: column not found")

	// ErrLengthMismatch is returned when a column's length disagrees with
	// the table's row count.
	ErrLengthMismatch = errors.New("table: column length mismatch")

	// ErrRowRange is returned for an out-of-range row index.
	ErrRowRange = errors.New("table: row index out of range")

	// ErrEmptyName is returned when a column name is the empty string.
	ErrEmptyName = errors.New("table: column name is empty")
)

// Column pairs a name with its values; used by Build for literal tables.
type Column struct {
	Name   string
	Values []any
}

// Table is an ordered collection of equally sized named columns.
// A nil cell denotes a missing value.
//
// The zero Table is not ready for use; construct with New or Build.
type Table struct {
	names []string
	cols  map[string][]any
}

// New returns an empty Table with no columns and no rows.
func New() *Table {
	return &Table{cols: make(map[string][]any)}
}

// Build constructs a Table from the given columns, in order.
// All columns must share one length.
func Build(cols ...Column) (*Table, error) {
	t := New()
	for _, c := range cols {
		if err := t.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}

	return len(t.cols[t.names[0]])
}

// Columns returns the column names in insertion order (fresh slice).
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]

	return ok
}

// Column returns the values of the named column (the live slice) and
// whether the column exists. Callers must not resize the returned slice.
func (t *Table) Column(name string) ([]any, bool) {
	vals, ok := t.cols[name]

	return vals, ok
}

// AddColumn appends a column. The first column fixes the row count;
// subsequent columns must match it.
func (t *Table) AddColumn(name string, values []any) error {
	if name == "" {
		return ErrEmptyName
	}
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("%w: %q", ErrColumnExists, name)
	}
	if len(t.names) > 0 && len(values) != t.Len() {
		return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, name, len(values), t.Len())
	}

	// Store a private copy so later caller mutation cannot alias the table.
	col := make([]any, len(values))
	copy(col, values)
	t.names = append(t.names, name)
	t.cols[name] = col

	return nil
}

// SetColumn replaces the values of an existing column, or appends the
// column when absent. Length must match for non-empty tables.
func (t *Table) SetColumn(name string, values []any) error {
	if _, ok := t.cols[name]; !ok {
		return t.AddColumn(name, values)
	}
	if len(values) != t.Len() {
		return fmt.Errorf("%w: %q has %d values, want %d", ErrLengthMismatch, name, len(values), t.Len())
	}
	col := make([]any, len(values))
	copy(col, values)
	t.cols[name] = col

	return nil
}

// Drop removes the named columns; unknown names are ignored.
func (t *Table) Drop(names ...string) {
	doomed := make(map[string]struct{}, len(names))
	for _, n := range names {
		doomed[n] = struct{}{}
	}
	kept := t.names[:0]
	for _, n := range t.names {
		if _, ok := doomed[n]; ok {
			delete(t.cols, n)
			continue
		}
		kept = append(kept, n)
	}
	t.names = kept
}

// Rename changes a column's name in place, keeping its position.
func (t *Table) Rename(from, to string) error {
	if to == "" {
		return ErrEmptyName
	}
	if _, ok := t.cols[from]; !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, from)
	}
	if _, ok := t.cols[to]; ok && from != to {
		return fmt.Errorf("%w: %q", ErrColumnExists, to)
	}
	for i, n := range t.names {
		if n == from {
			t.names[i] = to
			break
		}
	}
	t.cols[to] = t.cols[from]
	if from != to {
		delete(t.cols, from)
	}

	return nil
}

// Value returns the cell at (column, row); ok is false for an unknown
// column or out-of-range row.
func (t *Table) Value(name string, row int) (any, bool) {
	col, ok := t.cols[name]
	if !ok || row < 0 || row >= len(col) {
		return nil, false
	}

	return col[row], true
}

// Set assigns the cell at (column, row).
func (t *Table) Set(name string, row int, v any) error {
	col, ok := t.cols[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	if row < 0 || row >= len(col) {
		return fmt.Errorf("%w: %d", ErrRowRange, row)
	}
	col[row] = v

	return nil
}

// Row returns row i as a name→value map (missing cells included as nil).
func (t *Table) Row(i int) (map[string]any, error) {
	if i < 0 || i >= t.Len() {
		return nil, fmt.Errorf("%w: %d", ErrRowRange, i)
	}
	out := make(map[string]any, len(t.names))
	for _, n := range t.names {
		out[n] = t.cols[n][i]
	}

	return out, nil
}

// Append adds one row at the bottom. Values are taken by column name;
// absent names yield missing cells. Names unknown to the table introduce
// new columns back-filled with missing values.
func (t *Table) Append(row map[string]any) {
	n := t.Len()
	// Introduce any new columns first, back-filled with nil.
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys) // deterministic introduction order for new columns
	for _, k := range keys {
		if _, ok := t.cols[k]; !ok {
			t.names = append(t.names, k)
			t.cols[k] = make([]any, n)
		}
	}
	for _, name := range t.names {
		t.cols[name] = append(t.cols[name], row[name])
	}
}

// DeleteRows removes the given row indices (any order, duplicates allowed),
// preserving the relative order of the surviving rows.
func (t *Table) DeleteRows(rows []int) error {
	n := t.Len()
	doomed := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		if r < 0 || r >= n {
			return fmt.Errorf("%w: %d", ErrRowRange, r)
		}
		doomed[r] = struct{}{}
	}
	if len(doomed) == 0 {
		return nil
	}
	for _, name := range t.names {
		col := t.cols[name]
		kept := col[:0]
		for i := 0; i < n; i++ {
			if _, ok := doomed[i]; ok {
				continue
			}
			kept = append(kept, col[i])
		}
		t.cols[name] = kept
	}

	return nil
}

// Clone returns a deep copy of the table structure.
// Cell values themselves are copied shallowly.
func (t *Table) Clone() *Table {
	out := New()
	for _, n := range t.names {
		_ = out.AddColumn(n, t.cols[n]) // AddColumn copies the slice
	}

	return out
}

// DropEmpty removes every column whose cells are all missing.
func (t *Table) DropEmpty() {
	var doomed []string
	for _, n := range t.names {
		empty := true
		for _, v := range t.cols[n] {
			if v != nil {
				empty = false
				break
			}
		}
		if empty && t.Len() > 0 {
			doomed = append(doomed, n)
		}
	}
	t.Drop(doomed...)
}

// Equal reports whether two tables have identical column order, names and
// cell values. Intended for tests and snapshot comparison.
func (t *Table) Equal(o *Table) bool {
	if t.Len() != o.Len() || len(t.names) != len(o.names) {
		return false
	}
	for i, n := range t.names {
		if o.names[i] != n {
			return false
		}
		a, b := t.cols[n], o.cols[n]
		for r := range a {
			if !cellEqual(a[r], b[r]) {
				return false
			}
		}
	}

	return true
}

// cellEqual compares two cells. Decoded YAML and msgpack documents can
// put slices or maps into a cell, which the == operator would panic on.
func cellEqual(a, b any) bool {
	if comparableCell(a) && comparableCell(b) {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

func comparableCell(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
