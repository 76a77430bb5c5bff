package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dhamidi/cst/parser"
	"github.com/dhamidi/cst/syntax"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <file> <offset>",
		Short: "Show the list element containing a byte offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse offset: %w", err)
			}

			root := parser.Parse(src)
			tok := syntax.TokenAt(root, offset)

			// Walk outwards until some ancestor is a list element.
			for n := tok; n != nil; n = n.Parent() {
				item, err := syntax.ListItemInfo(n)
				if err != nil {
					continue
				}

				idx, err := syntax.ListItemIndexAt(item.List, offset)
				if err != nil {
					return err
				}

				fmt.Printf("list      %s [%d:%d-%d)\n", item.List.Kind, item.List.FullStart, item.List.Start, item.List.End)
				fmt.Printf("element   %s %q index %d\n", n.Kind, n.Text(src), item.Index)
				fmt.Printf("at offset index %d\n", idx)
				return nil
			}

			fmt.Println("no containing list")
			return nil
		},
	}
}
