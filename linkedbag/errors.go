// Package linkedbag provides LinkedRBTreeBag: a bag.RBTreeBag (multiset
// layered on a red-black tree, without rank-based access) additionally threaded with a
// doubly linked in-order chain and payload back-references, giving O(1)
// neighbor queries from a payload handle exactly as linkedtree.Tree does for
// the plain set case.
//
// Swap does not swap counts: multiplicity belongs to the node, not the
// payload, so swapping two payloads' identity data leaves each node's count
// where it was.
package linkedbag

import "errors"

var (
	// ErrAbsentElement is returned when an operation is asked to insert the
	// absent element.
	ErrAbsentElement = errors.New("linkedbag: cannot insert the absent element")

	// ErrAlreadyLinked is returned when Add is given a payload that already
	// carries a back-reference to a node, in this bag or another.
	ErrAlreadyLinked = errors.New("linkedbag: payload is already linked to a node")

	// ErrNonPositiveCount is returned by Add/Remove when given a
	// non-positive multiplicity.
	ErrNonPositiveCount = errors.New("linkedbag: count must be positive")

	// ErrInvariant is the sentinel Swap panics with when it leaves a swapped
	// payload out of order relative to its chain neighbors.
	ErrInvariant = errors.New("linkedbag: invariant violated")
)
