package linkedtree

import "github.com/amp-labs/amp-common/optional"

// Choice is returned by a Search oracle to direct the descent. Mirrors
// rbtree.Choice.
type Choice int

const (
	GoLeft Choice = iota
	GoRight
	Current
	Left
	Right
	Stop
)

// Oracle inspects the comparator and the payloads of the current node and
// its children (None when a child is absent) and returns a Choice directing
// the descent.
type Oracle[T Linkable[T]] func(cmp Comparator[T], current T, left, right optional.Value[T]) Choice

// Search performs a user-directed descent from the root, driven by oracle.
//
// Deprecated: kept for source-compatibility with the unlinked tree's API;
// the payload-local Next/Prev queries are O(1) and should be
// preferred over this O(depth) descent whenever a payload handle is
// available.
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

func childPayload[T Linkable[T]](n *Node[T]) optional.Value[T] {
	if n == nil {
		return optional.None[T]()
	}

	return optional.Some(n.payload)
}
