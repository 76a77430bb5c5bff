// Package syntax models an immutable, trivia-preserving concrete syntax
// tree and answers position queries over it: which token or node a byte
// offset belongs to, which token precedes or follows a boundary, and
// which list slot an element or offset falls into.
//
// # Tree model
//
// Every node carries three offsets:
//
//	FullStart   start including leading trivia (whitespace, comments)
//	Start       start of the first non-trivia byte
//	End         one past the last byte (exclusive)
//
// Trivia is always attached to the *following* token's leading span, so
// token full spans tile the document with no gaps: every byte of the
// source, trivia included, belongs to exactly one token's [FullStart, End).
// The end-of-input placeholder owns any trailing trivia.
//
// A builder constructs the tree once, calls LinkParents, and the tree is
// read-only from then on. List groups (KindList) sit between a logical
// parent and the elements of a syntactic list; LinkParents makes element
// parent pointers skip past the list group, which is why ContainingList
// exists as a search instead of a field.
//
// # Queries
//
// All queries are pure, synchronous reads. They allocate no tree nodes,
// hold no state between calls, and are safe for concurrent use as long as
// no tree rebuild is in flight:
//
//	TokenAt            full-span descent; trivia resolves to its owner token
//	NodeAt             rendered-span descent; may stop at a composite
//	TokenLeftOfCursor  token a cursor is editing; boundaries go left
//	PrecedingToken     rightmost token ending at or before an offset
//	NextToken          token starting exactly at a token's end
//	ContainingList     list group holding an element
//	ListItemInfo       (list, index) for an element
//	ListItemIndexAt    index of the element covering an offset
//
// Absent boundary tokens are nil results. List navigation distinguishes
// caller mistakes (ErrPrecondition: wrong kind, missing parent) from
// routine misses (ErrNotFound, or the -1 index sentinel).
package syntax
