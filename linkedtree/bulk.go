package linkedtree

import "math/bits"

func redDepth(n int) int {
	if n <= 0 {
		return 0
	}

	return bits.Len(uint(n+1)) - 1
}

type buildFrame[T Linkable[T]] struct {
	lo, hi      int
	parent      *Node[T]
	isLeftChild bool
	depth       int
}

// buildFromSorted replaces the tree's contents with a freshly bulk-built
// tree over sorted (duplicate-free, ascending per t.cmp). Nodes are colored
// as they are built; the linked chain is then threaded linearly across the
// input sequence, per the chain invariant that it must agree with in-order
// position regardless of tree shape, and subtree sizes are computed last.
func (t *Tree[T]) buildFromSorted(sorted []T) {
	n := len(sorted)

	if n == 0 {
		t.root, t.min, t.max = nil, nil, nil
		t.size = 0

		return
	}

	rd := redDepth(n)

	nodes := make([]*Node[T], n)

	var root *Node[T]

	stack := []buildFrame[T]{{lo: 0, hi: n, depth: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.lo >= f.hi {
			continue
		}

		mid := f.lo + (f.hi-f.lo)/2

		nd := &Node[T]{payload: sorted[mid], parent: f.parent, color: black}
		if f.depth == rd {
			nd.color = red
		}

		sorted[mid].SetNode(nd)
		nodes[mid] = nd

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

	for i, nd := range nodes {
		if i > 0 {
			nd.prev = nodes[i-1]
		}

		if i < len(nodes)-1 {
			nd.next = nodes[i+1]
		}
	}

	computeSizes(root)

	t.root = root
	t.size = n
	t.min = nodes[0]
	t.max = nodes[n-1]
}

func computeSizes[T Linkable[T]](n *Node[T]) int {
	if n == nil {
		return 0
	}

	n.size = 1 + computeSizes(n.left) + computeSizes(n.right)

	return n.size
}
