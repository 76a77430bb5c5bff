package syntax

// PrecedingToken returns the rightmost token whose end is at or before
// offset, or nil when no such token exists (the offset sits before the
// first token, or the tree has no tokens at all).
func PrecedingToken(root *Node, offset int) *Node {
	return precedingToken(root, offset)
}

func precedingToken(n *Node, offset int) *Node {
	if n.Kind.IsToken() {
		return n
	}

	for i, child := range n.Children {
		if offset < child.End && hasTokens(child) {
			if child.Start >= offset {
				// The offset falls in a gap or in this child's
				// leading trivia; the target token ends earlier.
				return rightmostToken(rightmostWithTokens(n.Children[:i]))
			}
			return precedingToken(child, offset)
		}
	}

	// Offset is at or past the end of every child.
	return rightmostToken(rightmostWithTokens(n.Children))
}

// NextToken returns the token immediately following t in document order,
// searching within ancestor: the token whose full start coincides with
// t's end. Returns nil when ancestor leaves no room past t or no such
// token exists.
func NextToken(t, ancestor *Node) *Node {
	if t == nil || ancestor == nil || ancestor.End <= t.End {
		return nil
	}
	return nextToken(t, ancestor)
}

func nextToken(t, n *Node) *Node {
	if n.Kind.IsToken() && n.FullStart == t.End {
		return n
	}

	for _, child := range n.Children {
		encloses := child.FullStart <= t.FullStart && child.End > t.End
		if (encloses || child.FullStart == t.End) && hasTokens(child) {
			if found := nextToken(t, child); found != nil {
				return found
			}
		}
	}
	return nil
}

// hasTokens reports whether n can yield a real token: the end-of-input
// marker never does, and otherwise only nodes with nonzero full width do.
// Zero width covers the missing-element placeholder, empty list groups,
// and composites error recovery builds out of placeholders alone.
func hasTokens(n *Node) bool {
	return n.Kind != KindEOF && n.FullStart < n.End
}

// rightmostWithTokens returns the last token-bearing node among children,
// or nil.
func rightmostWithTokens(children []*Node) *Node {
	for i := len(children) - 1; i >= 0; i-- {
		if hasTokens(children[i]) {
			return children[i]
		}
	}
	return nil
}

// rightmostToken descends to the last token under n.
func rightmostToken(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Kind.IsToken() {
		return n
	}
	return rightmostToken(rightmostWithTokens(n.Children))
}
