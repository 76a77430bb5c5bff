// Package lsp converts between the byte offsets the syntax queries
// consume and the line/character positions language server clients speak.
// Characters are counted in UTF-16 code units, per the protocol.
package lsp

import (
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/cst/syntax"
)

// OffsetAt returns the byte offset of pos in src. Positions past the end
// of a line clamp to the line end; lines past the end of the document
// clamp to len(src).
func OffsetAt(src []byte, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		next := lineEnd(src, offset)
		if next >= len(src) {
			return len(src)
		}
		offset = next + 1
	}

	end := lineEnd(src, offset)
	units := protocol.UInteger(0)
	for offset < end && units < pos.Character {
		r, size := utf8.DecodeRune(src[offset:])
		offset += size
		units += utf16Len(r)
	}
	return offset
}

// PositionAt returns the line/character position of the byte at offset.
// Offsets outside src clamp to the document bounds.
func PositionAt(src []byte, offset int) protocol.Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src) {
		offset = len(src)
	}

	var pos protocol.Position
	for i := 0; i < offset; {
		r, size := utf8.DecodeRune(src[i:])
		i += size
		if r == '\n' {
			pos.Line++
			pos.Character = 0
		} else {
			pos.Character += utf16Len(r)
		}
	}
	return pos
}

// RangeOf returns the rendered span of n as a protocol range.
func RangeOf(src []byte, n *syntax.Node) protocol.Range {
	return protocol.Range{
		Start: PositionAt(src, n.Start),
		End:   PositionAt(src, n.End),
	}
}

// TokenAtPosition resolves the token at a client position via full-span
// resolution.
func TokenAtPosition(src []byte, root *syntax.Node, pos protocol.Position) *syntax.Node {
	return syntax.TokenAt(root, OffsetAt(src, pos))
}

// TokenLeftOfPosition resolves the token a cursor at a client position is
// editing.
func TokenLeftOfPosition(src []byte, root *syntax.Node, pos protocol.Position) *syntax.Node {
	return syntax.TokenLeftOfCursor(root, OffsetAt(src, pos))
}

// lineEnd returns the offset of the newline terminating the line that
// begins at start, or len(src).
func lineEnd(src []byte, start int) int {
	for i := start; i < len(src); i++ {
		if src[i] == '\n' {
			return i
		}
	}
	return len(src)
}

func utf16Len(r rune) protocol.UInteger {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
