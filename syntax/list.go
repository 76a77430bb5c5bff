package syntax

import "fmt"

// ListItem names a list element's position: the containing list group and
// the element's index among the list's children.
type ListItem struct {
	List  *Node
	Index int
}

// ContainingList returns the list group that holds n as an element.
// Because an element's parent pointer skips past the list group to the
// logical parent, the list is found by scanning the parent's children for
// a list whose full span encloses n's.
func ContainingList(n *Node) (*Node, error) {
	parent := n.Parent()
	if parent == nil {
		return nil, fmt.Errorf("containing list: node has no parent: %w", ErrPrecondition)
	}

	for _, child := range parent.Children {
		if child.Kind == KindList && child.FullStart <= n.FullStart && n.End <= child.End {
			return child, nil
		}
	}
	return nil, fmt.Errorf("containing list: %s node is not a list element: %w", n.Kind, ErrPrecondition)
}

// ListItemInfo resolves the list group containing n and n's index in it.
// The index scan compares node identity, not spans.
func ListItemInfo(n *Node) (ListItem, error) {
	list, err := ContainingList(n)
	if err != nil {
		return ListItem{}, err
	}

	for i, child := range list.Children {
		if child == n {
			return ListItem{List: list, Index: i}, nil
		}
	}
	return ListItem{}, fmt.Errorf("list item info: node not among list children: %w", ErrNotFound)
}

// ListItemIndexAt returns the index of the list element whose rendered
// span [Start, End) contains offset, or -1 when no element does. An
// offset exactly at an element's end belongs to the next element. The
// missing index is a routine outcome for boundary offsets; the error is
// reserved for calling this on a node that is not a list group.
func ListItemIndexAt(list *Node, offset int) (int, error) {
	if list.Kind != KindList {
		return -1, fmt.Errorf("list item index: %s node is not a list group: %w", list.Kind, ErrPrecondition)
	}

	for i, child := range list.Children {
		if child.Start <= offset && offset < child.End {
			return i, nil
		}
	}
	return -1, nil
}
