// Package linkedtree provides LinkedRBTree: an order-statistic red-black
// tree (see rbtree.Tree) extended with a doubly linked in-order chain and a
// payload-held back-reference to its owning node, giving O(1) neighbor
// (Next/Prev) queries from a payload handle instead of the O(log n) tree
// walk the unlinked tree needs. There are no parent or child accessors.
//
// Payloads must implement Linkable[T] so the tree has somewhere to store the
// back-reference; a payload already bound to a node cannot be inserted into
// a second tree.
package linkedtree

import "errors"

var (
	// ErrAbsentElement is returned when an operation is asked to insert the
	// absent element.
	ErrAbsentElement = errors.New("linkedtree: cannot insert the absent element")

	// ErrAlreadyLinked is returned when Add is given a payload that already
	// carries a back-reference to a node, in this tree or another.
	ErrAlreadyLinked = errors.New("linkedtree: payload is already linked to a node")

	// ErrOutOfRange is returned by Get when the requested rank falls outside
	// [0, Size()).
	ErrOutOfRange = errors.New("linkedtree: rank out of range")

	// ErrNoSuchElement is returned by the queue facade's Element and RemoveHead
	// when the tree is empty.
	ErrNoSuchElement = errors.New("linkedtree: no such element")

	// ErrInvariant is the sentinel Swap panics with when it leaves a swapped
	// payload out of order relative to its chain neighbors. Tree state after
	// this panic is unspecified; do not call Swap unless the caller can prove
	// ordering is preserved.
	ErrInvariant = errors.New("linkedtree: invariant violated")
)
