package bag

import "fmt"

type color bool

const (
	black, red color = true, false
)

func (c color) String() string {
	if c == red {
		return "Red"
	}

	return "Black"
}

// Comparator defines a total order over payloads of type T.
type Comparator[T any] func(a, b T) int

// node is a single node of the bag tree. Unlike rbtree.node it has no size
// field; instead count is this key's multiplicity and bagSize is the
// augmented sum of count across the subtree: bagSize == count +
// bagSize(left) + bagSize(right).
type node[T any] struct {
	payload T
	color   color
	left    *node[T]
	right   *node[T]
	parent  *node[T]
	count   int
	bagSize int
}

// String returns a human-readable representation of the node.
func (n *node[T]) String() string {
	if n == nil {
		return "<nil>"
	}

	return fmt.Sprintf("(%v x%d : %s)", n.payload, n.count, n.color)
}

func isRed[T any](n *node[T]) bool {
	return n != nil && n.color == red
}

func isBlack[T any](n *node[T]) bool {
	return !isRed(n)
}

func bagSizeOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	return n.bagSize
}

// recomputeBagSize recalculates n.bagSize from its own count and its
// children. Called after any structural change or count adjustment.
func recomputeBagSize[T any](n *node[T]) {
	if n == nil {
		return
	}

	n.bagSize = n.count + bagSizeOf(n.left) + bagSizeOf(n.right)
}

func grandparent[T any](n *node[T]) *node[T] {
	if n == nil || n.parent == nil {
		return nil
	}

	return n.parent.parent
}

func minimum[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}
