// Package rbtree provides an order-statistic red-black tree: a self-balancing
// binary search tree augmented with subtree sizes so that rank (position in
// sorted order) and select (element at a given rank) are both O(log n).
//
// The tree stores a set of comparable payloads; equality for membership
// purposes is defined solely by the comparator supplied at construction, not
// by any notion of value or hash equality the payload type might otherwise
// have.
package rbtree

import "errors"

var (
	// ErrAbsentElement is returned when an operation is asked to insert the
	// absent element. The tree has no representation for "no value" among its
	// stored payloads; absence is only ever expressed via optional.Value.
	ErrAbsentElement = errors.New("rbtree: cannot insert the absent element")

	// ErrOutOfRange is returned by Get when the requested rank falls outside
	// [0, Size()).
	ErrOutOfRange = errors.New("rbtree: rank out of range")

	// ErrNoSuchElement is returned by the queue facade's Element and RemoveHead
	// when the tree is empty.
	ErrNoSuchElement = errors.New("rbtree: no such element")
)
