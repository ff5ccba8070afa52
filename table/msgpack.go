package table

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// snapshot is the msgpack wire shape of a Table: column order travels
// separately from the cell data so round-trips preserve it.
type snapshot struct {
	Names []string         `msgpack:"names"`
	Cols  map[string][]any `msgpack:"cols"`
}

// WriteMsgpack encodes the table in a compact binary form.
func WriteMsgpack(w io.Writer, t *Table) error {
	enc := msgpack.NewEncoder(w)
	snap := snapshot{Names: t.Columns(), Cols: make(map[string][]any, len(t.names))}
	for _, n := range t.names {
		snap.Cols[n] = t.cols[n]
	}
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("table: encoding msgpack: %w", err)
	}

	return nil
}

// ReadMsgpack decodes a table written by WriteMsgpack.
// Integer cells decode as int64, matching the CSV and YAML adapters.
func ReadMsgpack(r io.Reader) (*Table, error) {
	dec := msgpack.NewDecoder(r)
	var snap snapshot
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("table: decoding msgpack: %w", err)
	}

	t := New()
	for _, n := range snap.Names {
		col, ok := snap.Cols[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, n)
		}
		for i, v := range col {
			col[i] = normalizeMsgpack(v)
		}
		if err := t.AddColumn(n, col); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// normalizeMsgpack maps decoder output onto canonical cell types.
func normalizeMsgpack(v any) any {
	switch x := v.(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	default:
		return v
	}
}
