package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/cst/lsp"
	"github.com/dhamidi/cst/parser"
	"github.com/dhamidi/cst/syntax"
)

func newAtCmd() *cobra.Command {
	var line, character int

	cmd := &cobra.Command{
		Use:   "at <file> [offset]",
		Short: "Show the syntax at a byte offset or editor position",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			offset, err := resolveOffset(src, args, line, character)
			if err != nil {
				return err
			}
			log.Debugf("querying %s at offset %d", args[0], offset)

			root := parser.Parse(src)

			describe(src, "token", syntax.TokenAt(root, offset))
			describe(src, "node", syntax.NodeAt(root, offset))
			describe(src, "left-of-cursor", syntax.TokenLeftOfCursor(root, offset))

			preceding := syntax.PrecedingToken(root, offset)
			describe(src, "preceding", preceding)
			if preceding != nil {
				describe(src, "next", syntax.NextToken(preceding, root))
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&line, "line", -1, "zero-based line (LSP coordinates, use with --character)")
	cmd.Flags().IntVar(&character, "character", 0, "zero-based UTF-16 column (LSP coordinates)")

	return cmd
}

// resolveOffset picks the query offset from either the positional byte
// offset or the --line/--character pair.
func resolveOffset(src []byte, args []string, line, character int) (int, error) {
	if line >= 0 {
		pos := protocol.Position{
			Line:      protocol.UInteger(line),
			Character: protocol.UInteger(character),
		}
		return lsp.OffsetAt(src, pos), nil
	}
	if len(args) < 2 {
		return 0, fmt.Errorf("need a byte offset argument or --line/--character")
	}
	offset, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, fmt.Errorf("parse offset: %w", err)
	}
	if offset < 0 || offset > len(src) {
		return 0, fmt.Errorf("offset %d out of range [0, %d]", offset, len(src))
	}
	return offset, nil
}

func describe(src []byte, label string, n *syntax.Node) {
	if n == nil {
		fmt.Printf("%-14s (none)\n", label)
		return
	}
	text := n.Text(src)
	if len(text) > 40 {
		text = text[:40] + "..."
	}
	fmt.Printf("%-14s %s [%d:%d-%d) %q\n", label, n.Kind, n.FullStart, n.Start, n.End, text)
}
