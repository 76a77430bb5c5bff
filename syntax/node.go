package syntax

import "fmt"

// Node is the unit of the syntax tree. Offsets are byte offsets into the
// source document. FullStart includes leading trivia (whitespace and
// comments attached to this node); Start is the first non-trivia byte;
// End is exclusive. Trailing trivia always belongs to the next token's
// leading span, so for any token FullStart <= Start <= End and the full
// spans of consecutive tokens tile the document.
type Node struct {
	Kind      Kind
	FullStart int
	Start     int
	End       int
	Children  []*Node

	parent *Node
}

// Parent returns the logical enclosing node, established once by
// LinkParents. For children of a list group this points past the list to
// the node that owns the list.
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) ChildCount() int {
	return len(n.Children)
}

func (n *Node) ChildAt(i int) *Node {
	return n.Children[i]
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// Text returns the rendered text of the node, excluding leading trivia.
func (n *Node) Text(src []byte) string {
	if n.Start >= n.End || n.End > len(src) {
		return ""
	}
	return string(src[n.Start:n.End])
}

// FullText returns the node's text including its leading trivia.
func (n *Node) FullText(src []byte) string {
	if n.FullStart >= n.End || n.End > len(src) {
		return ""
	}
	return string(src[n.FullStart:n.End])
}

// LinkParents establishes the parent association for every node reachable
// from root. It must be called exactly once after the tree is built; the
// tree is immutable afterwards. Children of a list group receive the list
// group's own parent, keeping the list invisible to the logical parent
// chain.
func LinkParents(root *Node) {
	link(root, nil)
}

func link(n, parent *Node) {
	n.parent = parent
	logical := n
	if n.Kind == KindList {
		logical = parent
	}
	for _, child := range n.Children {
		link(child, logical)
	}
}

func (n *Node) String() string {
	return n.stringIndent(0, nil)
}

// StringWithSource renders the tree with each leaf's source text.
func (n *Node) StringWithSource(src []byte) string {
	return n.stringIndent(0, src)
}

func (n *Node) stringIndent(indent int, src []byte) string {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	result := prefix + n.Kind.String() + fmt.Sprintf(" [%d:%d-%d)", n.FullStart, n.Start, n.End)
	if src != nil && len(n.Children) == 0 {
		if text := n.Text(src); text != "" {
			result += " " + text
		}
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, src)
	}
	return result
}
