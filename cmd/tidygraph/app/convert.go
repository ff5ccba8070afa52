package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewConvert builds the convert subcommand: re-encode a table file,
// formats picked by extension.
func NewConvert() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in.{csv,yaml,msgpack}> <out.{csv,yaml,msgpack}>",
		Short: "convert a table file between formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := readTable(args[0])
			if err != nil {
				return err
			}
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			return writeTable(f, filepath.Ext(args[1]), t)
		},
	}
}
