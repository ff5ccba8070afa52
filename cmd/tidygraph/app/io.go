// File adapters: the graph YAML document and tables in any supported
// format, picked by file extension.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	tidygraph "github.com/tidygraph/go-tidygraph"
	"github.com/tidygraph/go-tidygraph/table"
)

// ErrBadGraphDoc is returned when the graph YAML document is malformed.
var ErrBadGraphDoc = errors.New("graph document must be a mapping with nodes and edges tables")

// ErrBadExtension is returned for a table file of unknown format.
var ErrBadExtension = errors.New("unsupported table format (want .csv, .yaml, .yml or .msgpack)")

// readGraph loads a graph from a YAML document of the shape
//
//	directed: false
//	nodes:
//	  name: [a, b, c]
//	edges:
//	  from: [a]
//	  to: [b]
func readGraph(path string) (*tidygraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s", ErrBadGraphDoc, path)
	}

	var (
		directed bool
		nodes    *table.Table
		edges    *table.Table
	)
	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "directed":
			if err = val.Decode(&directed); err != nil {
				return nil, fmt.Errorf("%w: directed: %v", ErrBadGraphDoc, err)
			}
		case "nodes":
			if nodes, err = table.FromYAMLNode(val); err != nil {
				return nil, fmt.Errorf("nodes table: %w", err)
			}
		case "edges":
			if edges, err = table.FromYAMLNode(val); err != nil {
				return nil, fmt.Errorf("edges table: %w", err)
			}
		default:
			return nil, fmt.Errorf("%w: unknown key %q", ErrBadGraphDoc, key.Value)
		}
	}

	return tidygraph.FromTables(edges, nodes, directed)
}

// readTable loads a table, picking the codec from the file extension.
func readTable(path string) (*table.Table, error) {
	switch filepath.Ext(path) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return table.ReadCSV(f)
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		return table.ReadYAML(data)
	case ".msgpack":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return table.ReadMsgpack(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadExtension, path)
	}
}

// writeTable renders a table in the format named by ext (as in
// filepath.Ext, ".csv" etc.).
func writeTable(w io.Writer, ext string, t *table.Table) error {
	switch ext {
	case ".csv":
		return table.WriteCSV(w, t)
	case ".yaml", ".yml":
		data, err := table.WriteYAML(t)
		if err != nil {
			return err
		}
		_, err = w.Write(data)

		return err
	case ".msgpack":
		return table.WriteMsgpack(w, t)
	default:
		return fmt.Errorf("%w: %q", ErrBadExtension, ext)
	}
}
