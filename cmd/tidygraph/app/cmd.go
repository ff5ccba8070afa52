// Package app wires the tidygraph command tree.
package app

import (
	"github.com/spf13/cobra"
)

// New builds the root command with all subcommands attached.
func New() *cobra.Command {
	maincmd := &cobra.Command{
		Use:   "tidygraph <cmd> <options>",
		Short: "inspect and join graph tables",
		Long: `
tidygraph loads a graph from a YAML document (directed flag plus a
nodes and an edges table), joins caller tables into it under relational
join semantics, and reports on its structure.
`,
		SilenceUsage: true,
	}

	maincmd.AddCommand(NewDescribe())
	maincmd.AddCommand(NewJoin())
	maincmd.AddCommand(NewConvert())

	return maincmd
}
