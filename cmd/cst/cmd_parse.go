package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cst/parser"
)

func newParseCmd() *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			log.Debugf("parsing %s (%d bytes)", args[0], len(src))
			root := parser.Parse(src)

			if showSource {
				fmt.Print(root.StringWithSource(src))
			} else {
				fmt.Print(root.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSource, "source", true, "include token text in the dump")

	return cmd
}
