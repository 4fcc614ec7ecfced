package linkedtree

import (
	"fmt"
	"sort"

	"github.com/amp-labs/amp-common/assert"
	"github.com/amp-labs/amp-common/optional"
)

// Tree is an order-statistic red-black tree (see rbtree.Tree) that also
// threads a doubly linked in-order chain through its nodes and stores a
// back-reference on each payload, so Next/Prev queries from a payload handle
// are O(1) instead of O(log n). It has no parent or child accessors.
type Tree[T Linkable[T]] struct {
	root     *Node[T]
	min, max *Node[T]
	size     int
	cmp      Comparator[T]
	isAbsent func(T) bool
}

// New creates an empty tree ordered by cmp.
func New[T Linkable[T]](cmp Comparator[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewWithAbsent creates an empty tree that additionally rejects inserting
// any payload isAbsent identifies as the sentinel "absent" value.
func NewWithAbsent[T Linkable[T]](cmp Comparator[T], isAbsent func(T) bool) *Tree[T] {
	t := New(cmp)
	t.isAbsent = isAbsent

	return t
}

func (t *Tree[T]) absentValue(x T) bool {
	return t.isAbsent != nil && t.isAbsent(x)
}

// Size returns the number of elements in the tree in O(1).
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Contains reports whether an element comparing equal to x is present.
func (t *Tree[T]) Contains(x T) bool {
	return t.find(x) != nil
}

func (t *Tree[T]) find(x T) *Node[T] {
	n := t.root
	for n != nil {
		c := t.cmp(x, n.payload)

		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}

	return nil
}

// Add inserts x, threading it into the linked chain between its in-order
// predecessor and successor and rebalancing as needed. Fails with
// ErrAlreadyLinked if x already carries a back-reference to a node (in this
// tree or another), and with ErrAbsentElement if x is the absent sentinel.
func (t *Tree[T]) Add(x T) (bool, error) {
	if t.absentValue(x) {
		return false, ErrAbsentElement
	}

	if x.GetNode() != nil {
		return false, ErrAlreadyLinked
	}

	parent := (*Node[T])(nil)
	n := t.root

	for n != nil {
		c := t.cmp(x, n.payload)

		switch {
		case c == 0:
			return false, nil
		case c < 0:
			parent = n
			n = n.left
		default:
			parent = n
			n = n.right
		}
	}

	z := &Node[T]{payload: x, color: red, parent: parent, size: 1}
	x.SetNode(z)

	switch {
	case parent == nil:
		t.root = z
	case t.cmp(x, parent.payload) < 0:
		parent.left = z
		z.next = parent
		z.prev = parent.prev

		if parent.prev != nil {
			parent.prev.next = z
		}

		parent.prev = z
	default:
		parent.right = z
		z.prev = parent
		z.next = parent.next

		if parent.next != nil {
			parent.next.prev = z
		}

		parent.next = z
	}

	fixSizesToRoot(parent)
	t.fixupInsert(z)

	t.size++

	if t.min == nil || z.prev == nil {
		t.min = z
	}

	if t.max == nil || z.next == nil {
		t.max = z
	}

	return true, nil
}

// Remove deletes the element comparing equal to x, if any, and reports
// whether the tree was mutated.
func (t *Tree[T]) Remove(x T) bool {
	n := t.find(x)
	if n == nil {
		return false
	}

	t.bstDelete(n)

	return true
}

// Get returns the element at in-order rank i (0-based).
func (t *Tree[T]) Get(i int) (T, error) {
	if i < 0 || i >= t.size {
		var zero T

		return zero, ErrOutOfRange
	}

	n := t.root
	for {
		l := sizeOf(n.left)

		switch {
		case i == l:
			return n.payload, nil
		case i < l:
			n = n.left
		default:
			i -= l + 1
			n = n.right
		}
	}
}

// GetMin returns the smallest element, or None if the tree is empty.
func (t *Tree[T]) GetMin() optional.Value[T] {
	if t.min == nil {
		return optional.None[T]()
	}

	return optional.Some(t.min.payload)
}

// GetMax returns the largest element, or None if the tree is empty.
func (t *Tree[T]) GetMax() optional.Value[T] {
	if t.max == nil {
		return optional.None[T]()
	}

	return optional.Some(t.max.payload)
}

// GetRoot returns the root element, or None if the tree is empty.
func (t *Tree[T]) GetRoot() optional.Value[T] {
	if t.root == nil {
		return optional.None[T]()
	}

	return optional.Some(t.root.payload)
}

// Next returns the in-order successor of x in O(1) via x's own back-reference,
// or None if x is the maximum or not linked into this tree.
func (t *Tree[T]) Next(x T) optional.Value[T] {
	n := x.GetNode()
	if n == nil || n.next == nil {
		return optional.None[T]()
	}

	return optional.Some(n.next.payload)
}

// Prev returns the in-order predecessor of x in O(1) via x's own
// back-reference, or None if x is the minimum or not linked into this tree.
func (t *Tree[T]) Prev(x T) optional.Value[T] {
	n := x.GetNode()
	if n == nil || n.prev == nil {
		return optional.None[T]()
	}

	return optional.Some(n.prev.payload)
}

// BinarySearch returns the stored element comparing equal to target.
func (t *Tree[T]) BinarySearch(target T) optional.Value[T] {
	n := t.find(target)
	if n == nil {
		return optional.None[T]()
	}

	return optional.Some(n.payload)
}

// Swap exchanges the payloads of two already-inserted keys in O(1),
// delegating the non-key data exchange to swapPayloads (the caller-supplied
// payload-level swap). The tree-level back-references and node pointers are
// repointed so a and b end up held by each other's former nodes.
//
// Postcondition check: after swapping, prev(a) < a < next(a) and likewise
// for b must still hold under the comparator, since swap does not
// re-sort the tree. Violating this corrupts the tree; such misuse panics
// with an Invariant-kind error rather than silently corrupting state.
func (t *Tree[T]) Swap(a, b T, swapPayloads func(a, b T)) {
	na := a.GetNode()
	nb := b.GetNode()

	assert.NotNil(na, "linkedtree: Swap called with an unlinked payload")
	assert.NotNil(nb, "linkedtree: Swap called with an unlinked payload")

	swapPayloads(a, b)

	na.payload = b
	nb.payload = a
	b.SetNode(na)
	a.SetNode(nb)

	t.checkOrderInvariant(na)
	t.checkOrderInvariant(nb)
}

// checkOrderInvariant panics with an Invariant-kind error if n's payload is
// no longer properly ordered relative to its chain neighbors.
func (t *Tree[T]) checkOrderInvariant(n *Node[T]) {
	if n.prev != nil && t.cmp(n.prev.payload, n.payload) >= 0 {
		panic(fmt.Errorf("%w: Swap violated chain ordering", ErrInvariant))
	}

	if n.next != nil && t.cmp(n.payload, n.next.payload) >= 0 {
		panic(fmt.Errorf("%w: Swap violated chain ordering", ErrInvariant))
	}
}

// Merge inserts key if no equal element exists, or otherwise replaces the
// existing equal element's payload with fn(existing, key). Returns the
// previous payload, or None if key was freshly inserted.
func (t *Tree[T]) Merge(key T, fn func(existing, incoming T) T) (optional.Value[T], error) {
	n := t.find(key)
	if n == nil {
		_, err := t.Add(key)

		return optional.None[T](), err
	}

	prev := n.payload
	merged := fn(prev, key)

	prev.SetNode(nil)
	n.payload = merged
	merged.SetNode(n)

	return optional.Some(prev), nil
}

// Clear removes every element, severing every payload's back-reference
// before releasing its node.
func (t *Tree[T]) Clear() {
	for n := t.min; n != nil; n = n.next {
		n.payload.SetNode(nil)
	}

	t.root, t.min, t.max = nil, nil, nil
	t.size = 0
}

// AddAll inserts every element of elems not already present, switching to
// the O(n) bulk-build path if the tree is currently empty.
func (t *Tree[T]) AddAll(elems []T) bool {
	if len(elems) == 0 {
		return false
	}

	if t.IsEmpty() {
		sorted := make([]T, len(elems))
		copy(sorted, elems)
		sort.Slice(sorted, func(i, j int) bool { return t.cmp(sorted[i], sorted[j]) < 0 })
		t.buildFromSorted(dedupeSorted(t.cmp, sorted))

		return t.size > 0
	}

	mutated := false

	for _, x := range elems {
		ok, err := t.Add(x)
		if err == nil && ok {
			mutated = true
		}
	}

	return mutated
}

func dedupeSorted[T Linkable[T]](cmp Comparator[T], sorted []T) []T {
	if len(sorted) == 0 {
		return sorted
	}

	out := make([]T, 0, len(sorted))
	out = append(out, sorted[0])

	for _, v := range sorted[1:] {
		if cmp(out[len(out)-1], v) != 0 {
			out = append(out, v)
		}
	}

	return out
}
