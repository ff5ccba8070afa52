package table

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrBadYAML is returned when YAML input is not a mapping of column name
// to a sequence of values.
var ErrBadYAML = errors.New("table: yaml input must map column names to value lists")

// ReadYAML parses a YAML mapping of column name to value list into a
// Table, preserving document order of the columns.
func ReadYAML(data []byte) (*Table, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("table: parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, ErrBadYAML
	}

	return FromYAMLNode(doc.Content[0])
}

// FromYAMLNode builds a Table from an already decoded YAML mapping node.
// Used by callers that embed a table inside a larger document.
func FromYAMLNode(node *yaml.Node) (*Table, error) {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, ErrBadYAML
	}

	t := New()
	// Mapping content alternates key, value; order is the document order.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: column %q", ErrBadYAML, key.Value)
		}
		values := make([]any, 0, len(val.Content))
		for _, item := range val.Content {
			var v any
			if err := item.Decode(&v); err != nil {
				return nil, fmt.Errorf("table: decoding yaml cell in %q: %w", key.Value, err)
			}
			values = append(values, normalizeYAML(v))
		}
		if err := t.AddColumn(key.Value, values); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// WriteYAML renders the table as a YAML mapping of column name to value
// list, in column order.
func WriteYAML(t *Table) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range t.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: name}
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range t.cols[name] {
			item := &yaml.Node{}
			if err := item.Encode(v); err != nil {
				return nil, fmt.Errorf("table: encoding yaml cell in %q: %w", name, err)
			}
			seq.Content = append(seq.Content, item)
		}
		root.Content = append(root.Content, key, seq)
	}

	return yaml.Marshal(root)
}

// normalizeYAML maps yaml.v3 decoded numbers onto the canonical cell
// types used everywhere else (int64 for integers).
func normalizeYAML(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	default:
		return v
	}
}
