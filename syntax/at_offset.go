package syntax

// TokenAt returns the deepest node whose full span [FullStart, End)
// contains offset, descending from root one matching child at a time.
// Because leading trivia is part of a token's full span, an offset inside
// a comment or whitespace run resolves to the token that trivia is
// attached to. For any offset < len(src) the result is a token leaf; at
// offset == len(src) it is the end-of-input placeholder, which matches
// with offset == End so the trailing boundary stays resolvable.
func TokenAt(root *Node, offset int) *Node {
	n := root
	for {
		next := fullSpanChild(n, offset)
		if next == nil {
			return n
		}
		n = next
	}
}

func fullSpanChild(n *Node, offset int) *Node {
	for _, child := range n.Children {
		if child.FullStart > offset {
			break
		}
		if offset < child.End || (offset == child.End && child.Kind == KindEOF) {
			return child
		}
	}
	return nil
}

// NodeAt returns the deepest node whose rendered span [Start, End)
// contains offset. Unlike TokenAt, an offset inside leading trivia does
// not match the token owning that trivia; the descent stops one level
// higher, so the result may be a composite node.
func NodeAt(root *Node, offset int) *Node {
	n := root
	for {
		next := renderedSpanChild(n, offset)
		if next == nil {
			return n
		}
		n = next
	}
}

func renderedSpanChild(n *Node, offset int) *Node {
	for _, child := range n.Children {
		if child.Start <= offset && offset < child.End {
			return child
		}
	}
	return nil
}

// TokenLeftOfCursor resolves the token a cursor at offset is editing.
// A cursor strictly inside a token's rendered span belongs to that token;
// a cursor at a boundary between two tokens belongs to the left-hand one,
// found via PrecedingToken. Returns nil when no token lies at or before
// the offset.
func TokenLeftOfCursor(root *Node, offset int) *Node {
	tok := TokenAt(root, offset)
	if tok != nil && tok.Kind.IsToken() && tok.Start < offset && offset < tok.End {
		return tok
	}
	return PrecedingToken(root, offset)
}
