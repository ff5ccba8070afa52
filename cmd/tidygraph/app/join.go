package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidygraph/go-tidygraph/core"
	"github.com/tidygraph/go-tidygraph/join"
)

type joinCmd struct {
	graphPath string
	tablePath string
	into      string
	how       string
	on        []string
	lsuffix   string
	rsuffix   string
	out       string
}

// NewJoin builds the join subcommand: synchronize the graph's node or
// edge table with a caller table and print the result as CSV.
func NewJoin() *cobra.Command {
	c := &joinCmd{}
	cmd := &cobra.Command{
		Use:   "join -g <graph.yaml> -t <table.{csv,yaml,msgpack}> [flags]",
		Short: "join a table into the graph and print the merged table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&c.graphPath, "graph", "g", "", "graph YAML document")
	flags.StringVarP(&c.tablePath, "table", "t", "", "caller table file")
	flags.StringVar(&c.into, "into", "nodes", "join target: nodes or edges")
	flags.StringVar(&c.how, "how", "left", "join kind: inner, left, right or outer")
	flags.StringSliceVar(&c.on, "on", nil, "join key column(s)")
	flags.StringVar(&c.lsuffix, "lsuffix", join.DefaultLSuffix, "suffix for graph-side column collisions")
	flags.StringVar(&c.rsuffix, "rsuffix", join.DefaultRSuffix, "suffix for caller-side column collisions")
	flags.StringVarP(&c.out, "output", "o", "", "write the merged table here instead of stdout")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func (c *joinCmd) run(cmd *cobra.Command) error {
	g, err := readGraph(c.graphPath)
	if err != nil {
		return err
	}
	y, err := readTable(c.tablePath)
	if err != nil {
		return err
	}

	var active core.Active
	switch c.into {
	case "nodes":
		active = core.Nodes
	case "edges":
		active = core.Edges
	default:
		return fmt.Errorf("unknown join target %q (want nodes or edges)", c.into)
	}
	kind, err := join.ParseKind(c.how)
	if err != nil {
		return err
	}

	opts := []join.Option{
		join.WithKind(kind),
		join.WithSuffixes(c.lsuffix, c.rsuffix),
	}
	if len(c.on) > 0 {
		opts = append(opts, join.WithOn(c.on...))
	}
	if err = g.Activate(active).Join(y, opts...); err != nil {
		return err
	}

	result := g.VertexTable()
	if active == core.Edges {
		result = g.EdgeTable()
	}

	if c.out == "" {
		return writeTable(cmd.OutOrStdout(), ".csv", result)
	}
	f, err := os.Create(c.out)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeTable(f, ".csv", result)
}
