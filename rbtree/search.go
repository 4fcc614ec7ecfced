package rbtree

import "github.com/amp-labs/amp-common/optional"

// Choice is returned by a Search oracle to direct the descent.
type Choice int

const (
	// GoLeft descends into the left subtree, continuing the search.
	GoLeft Choice = iota
	// GoRight descends into the right subtree, continuing the search.
	GoRight
	// Current terminates the search, returning the current node's payload.
	Current
	// Left terminates the search, returning the left child's payload (or
	// None if there is no left child).
	Left
	// Right terminates the search, returning the right child's payload (or
	// None if there is no right child).
	Right
	// Stop terminates the search immediately with None.
	Stop
)

// Oracle inspects the comparator and the payloads of the current node and
// its children (None when a child is absent) and returns a Choice directing
// the descent.
type Oracle[T any] func(cmp Comparator[T], current T, left, right optional.Value[T]) Choice

// Search performs a user-directed descent from the root, driven by oracle.
// Terminal choices (Current/Left/Right) return the referenced payload;
// GoLeft/GoRight descend and re-invoke the oracle; any other choice
// (including Stop, or descending past a missing child) returns None.
func (t *Tree[T]) Search(oracle Oracle[T]) optional.Value[T] {
	n := t.root

	for n != nil {
		left := childPayload(n.left)
		right := childPayload(n.right)

		switch oracle(t.cmp, n.payload, left, right) {
		case Current:
			return optional.Some(n.payload)
		case Left:
			return left
		case Right:
			return right
		case GoLeft:
			n = n.left
		case GoRight:
			n = n.right
		default:
			return optional.None[T]()
		}
	}

	return optional.None[T]()
}

func childPayload[T any](n *node[T]) optional.Value[T] {
	if n == nil {
		return optional.None[T]()
	}

	return optional.Some(n.payload)
}
