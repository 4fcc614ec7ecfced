package bag

import "math/bits"

func redDepth(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n+1)) - 1
}

type pairEntry[T any] struct {
	elem  T
	count int
}

type buildFrame[T any] struct {
	lo, hi      int
	parent      *node[T]
	isLeftChild bool
	depth       int
}

// bulkBuild constructs a maximally balanced red-black tree in O(n) from
// sorted, duplicate-free (elem, count) pairs, mirroring rbtree.bulkBuild but
// seeding each node's count from the pair instead of defaulting to 1.
func (b *RBTreeBag[T]) bulkBuild(sorted []pairEntry[T]) {
	n := len(sorted)
	if n == 0 {
		b.root = nil
		b.distinctCount = 0

		return
	}

	rd := redDepth(n)

	var root *node[T]

	stack := []buildFrame[T]{{lo: 0, hi: n, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.lo >= f.hi {
			continue
		}

		mid := f.lo + (f.hi-f.lo)/2

		nd := &node[T]{payload: sorted[mid].elem, parent: f.parent, color: black, count: sorted[mid].count}
		if f.depth == rd {
			nd.color = red
		}

		switch {
		case f.parent == nil:
			root = nd
		case f.isLeftChild:
			f.parent.left = nd
		default:
			f.parent.right = nd
		}

		stack = append(stack,
			buildFrame[T]{lo: f.lo, hi: mid, parent: nd, isLeftChild: true, depth: f.depth + 1},
			buildFrame[T]{lo: mid + 1, hi: f.hi, parent: nd, isLeftChild: false, depth: f.depth + 1},
		)
	}

	computeBagSizes(root)

	b.root = root
	b.distinctCount = n
}

func computeBagSizes[T any](n *node[T]) int {
	if n == nil {
		return 0
	}

	n.bagSize = n.count + computeBagSizes(n.left) + computeBagSizes(n.right)

	return n.bagSize
}
