package rbtree

import (
	"sort"

	"github.com/amp-labs/amp-common/optional"
)

// Tree is an order-statistic red-black tree: a self-balancing BST augmented
// with subtree sizes so that rank and select are both O(log n). It stores a
// set of payloads ordered by a caller-supplied Comparator; duplicates (per
// the comparator) are rejected by Add.
//
// The zero value is not usable; construct with New or NewFromSorted.
type Tree[T any] struct {
	root     *node[T]
	min, max *node[T]
	size     int
	cmp      Comparator[T]
	absent   T
	isAbsent func(T) bool
}

// New creates an empty tree ordered by cmp.
func New[T any](cmp Comparator[T]) *Tree[T] {
	return &Tree[T]{cmp: cmp}
}

// NewWithAbsent creates an empty tree ordered by cmp, where isAbsent
// identifies the sentinel "absent" payload value that Add must reject. If
// isAbsent is nil, no payload is ever considered absent.
func NewWithAbsent[T any](cmp Comparator[T], isAbsent func(T) bool) *Tree[T] {
	t := New(cmp)
	t.isAbsent = isAbsent

	return t
}

// NewFromCollection builds a tree containing the distinct (per cmp) elements
// of elems. If elems is already sorted per cmp, pass it to NewFromSorted
// instead to get the O(n) bulk-build path; this constructor always sorts
// first, giving O(n log n) for arbitrary input.
func NewFromCollection[T any](cmp Comparator[T], elems []T) *Tree[T] {
	sorted := make([]T, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return cmp(sorted[i], sorted[j]) < 0 })

	return NewFromSorted(cmp, sorted)
}

// NewFromSorted builds a tree in O(n) from sorted, which must already be in
// ascending order per cmp. Adjacent duplicates are collapsed, keeping the
// first occurrence.
func NewFromSorted[T any](cmp Comparator[T], sorted []T) *Tree[T] {
	t := New(cmp)
	t.buildFromSorted(dedupeSorted(cmp, sorted))

	return t
}

// dedupeSorted drops adjacent elements that compare equal, keeping the first.
func dedupeSorted[T any](cmp Comparator[T], sorted []T) []T {
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

// buildFromSorted replaces the tree's contents with a freshly bulk-built tree
// over sorted, which must be duplicate-free and ascending per t.cmp.
func (t *Tree[T]) buildFromSorted(sorted []T) {
	t.root = bulkBuild(sorted)
	t.size = len(sorted)

	if t.root == nil {
		t.min, t.max = nil, nil

		return
	}

	t.min = minimum(t.root)
	t.max = maximum(t.root)
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

// find returns the node comparing equal to x, or nil.
func (t *Tree[T]) find(x T) *node[T] {
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

func (t *Tree[T]) absentValue(x T) bool {
	return t.isAbsent != nil && t.isAbsent(x)
}

// Add inserts x, rebalancing as needed. Returns false without mutating the
// tree if x is the absent sentinel or an equal element already exists.
func (t *Tree[T]) Add(x T) (bool, error) {
	if t.absentValue(x) {
		return false, ErrAbsentElement
	}

	parent := (*node[T])(nil)
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

	z := &node[T]{payload: x, color: red, parent: parent, size: 1}

	switch {
	case parent == nil:
		t.root = z
	case t.cmp(x, parent.payload) < 0:
		parent.left = z
	default:
		parent.right = z
	}

	fixSizesToRoot(parent)
	t.fixupInsert(z)

	t.size++

	if t.min == nil || t.cmp(x, t.min.payload) < 0 {
		t.min = z
	}

	if t.max == nil || t.cmp(x, t.max.payload) > 0 {
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

// Next returns the successor of the element comparing equal to x, or None if
// x is absent from the tree or is the maximum.
func (t *Tree[T]) Next(x T) optional.Value[T] {
	n := t.find(x)
	if n == nil {
		return optional.None[T]()
	}

	s := successor(n)
	if s == nil {
		return optional.None[T]()
	}

	return optional.Some(s.payload)
}

// Prev returns the predecessor of the element comparing equal to x, or None
// if x is absent from the tree or is the minimum.
func (t *Tree[T]) Prev(x T) optional.Value[T] {
	n := t.find(x)
	if n == nil {
		return optional.None[T]()
	}

	p := predecessor(n)
	if p == nil {
		return optional.None[T]()
	}

	return optional.Some(p.payload)
}

// BinarySearch returns the stored element comparing equal to target, useful
// when the payload carries data beyond the comparison key.
func (t *Tree[T]) BinarySearch(target T) optional.Value[T] {
	n := t.find(target)
	if n == nil {
		return optional.None[T]()
	}

	return optional.Some(n.payload)
}

// Clear removes every element, resetting all header state.
func (t *Tree[T]) Clear() {
	t.root, t.min, t.max = nil, nil, nil
	t.size = 0
}

// AddAll inserts every element of elems not already present. If the tree is
// currently empty, this switches to the O(n) bulk-build path over a sorted
// copy of elems; otherwise it inserts one by one. Returns whether the tree
// was mutated.
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

// RetainAll removes every element not present in keep, choosing whichever of
// two strategies is cheaper: rebuild from the k kept elements, or delete the
// n-k elements that must go one at a time.
func (t *Tree[T]) RetainAll(keep []T) bool {
	keepSet := make(map[*node[T]]struct{}, len(keep))

	for _, x := range keep {
		if n := t.find(x); n != nil {
			keepSet[n] = struct{}{}
		}
	}

	n := t.size
	k := len(keepSet)

	if n == k {
		return false
	}

	rebuildCost := k
	deleteCost := n - k

	if rebuildCost <= deleteCost {
		kept := make([]T, 0, k)

		for nd := range t.inorder() {
			if _, ok := keepSet[nd]; ok {
				kept = append(kept, nd.payload)
			}
		}

		t.buildFromSorted(kept)

		return true
	}

	toRemove := make([]*node[T], 0, deleteCost)

	for nd := range t.inorder() {
		if _, ok := keepSet[nd]; !ok {
			toRemove = append(toRemove, nd)
		}
	}

	for _, nd := range toRemove {
		t.bstDelete(nd)
	}

	return true
}

// inorder yields every node of the tree in sorted order.
func (t *Tree[T]) inorder() func(yield func(*node[T]) bool) {
	return func(yield func(*node[T]) bool) {
		n := t.min
		for n != nil {
			if !yield(n) {
				return
			}

			n = successor(n)
		}
	}
}
