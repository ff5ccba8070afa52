package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrNoHeader is returned when a CSV input has no header row.
var ErrNoHeader = errors.New("table: csv input has no header row")

// ReadCSV parses CSV data into a Table. The first record is the header.
// Empty cells become missing values; other cells are parsed as bool,
// int64 or float64 when possible and kept as strings otherwise.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("table: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}

	header := records[0]
	cols := make([][]any, len(header))
	for _, rec := range records[1:] {
		for i := range header {
			cols[i] = append(cols[i], parseCell(rec[i]))
		}
	}

	t := New()
	for i, name := range header {
		if err = t.AddColumn(name, cols[i]); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// WriteCSV renders the table as CSV with a header row.
// Missing values are written as empty cells.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("table: writing csv header: %w", err)
	}
	rec := make([]string, len(t.names))
	for i := 0; i < t.Len(); i++ {
		for j, name := range t.names {
			rec[j] = formatCell(t.cols[name][i])
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("table: writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// parseCell infers a typed value from one CSV cell.
func parseCell(s string) any {
	if s == "" {
		return nil
	}
	if b, err := strconv.ParseBool(s); err == nil && (s == "true" || s == "false") {
		return b
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}

	return s
}

// formatCell renders one value for CSV output.
func formatCell(v any) string {
	if v == nil {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}
