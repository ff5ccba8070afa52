package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

type describeCmd struct {
	graphPath string
}

// NewDescribe builds the describe subcommand: a one-line structural
// summary of the graph.
func NewDescribe() *cobra.Command {
	c := &describeCmd{}
	cmd := &cobra.Command{
		Use:   "describe -g <graph.yaml>",
		Short: "summarize the graph's structure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&c.graphPath, "graph", "g", "", "graph YAML document")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (c *describeCmd) run(cmd *cobra.Command) error {
	g, err := readGraph(c.graphPath)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), g.Describe())

	return nil
}
