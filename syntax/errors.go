package syntax

import "errors"

var (
	// ErrPrecondition reports a query called on a node that cannot satisfy
	// it: a non-list where a list group is required, or a node with no
	// parent passed to a containment search.
	ErrPrecondition = errors.New("precondition violation")

	// ErrNotFound reports that a query completed but the requested element
	// does not exist in the tree.
	ErrNotFound = errors.New("not found")
)
