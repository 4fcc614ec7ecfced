// Package bag provides RBTreeBag: a multiset layered on a red-black tree.
// Distinct keys are distinct nodes; duplicates increase a node's count and
// the tree's total bagSize rather than allocating a second node, so size()
// (distinct elements) and bagSize() (total occurrences) are tracked
// separately. Nodes carry no subtree size, so the bag offers no rank-based
// access (no Get by position).
package bag

import "errors"

var (
	// ErrAbsentElement is returned when an operation is asked to insert the
	// absent element.
	ErrAbsentElement = errors.New("bag: cannot insert the absent element")

	// ErrNonPositiveCount is returned by Add/Remove when given a
	// non-positive multiplicity.
	ErrNonPositiveCount = errors.New("bag: count must be positive")
)
