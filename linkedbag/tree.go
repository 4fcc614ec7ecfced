package linkedbag

import (
	"fmt"
	"iter"
	"sort"

	"github.com/amp-labs/amp-common/assert"
	"github.com/amp-labs/amp-common/optional"
)

// LinkedRBTreeBag is a bag.RBTreeBag additionally threaded with a doubly
// linked in-order chain and payload back-references.
type LinkedRBTreeBag[T Linkable[T]] struct {
	root          *Node[T]
	min, max      *Node[T]
	cmp           Comparator[T]
	distinctCount int
	isAbsent      func(T) bool
}

// New creates an empty bag ordered by cmp.
func New[T Linkable[T]](cmp Comparator[T]) *LinkedRBTreeBag[T] {
	return &LinkedRBTreeBag[T]{cmp: cmp}
}

// NewWithAbsent creates an empty bag that additionally rejects inserting any
// payload isAbsent identifies as the sentinel "absent" value.
func NewWithAbsent[T Linkable[T]](cmp Comparator[T], isAbsent func(T) bool) *LinkedRBTreeBag[T] {
	b := New(cmp)
	b.isAbsent = isAbsent

	return b
}

// NewFromSorted builds a bag in O(n) from pairs already sorted and
// deduplicated by cmp, trusting the caller's ordering.
func NewFromSorted[T Linkable[T]](cmp Comparator[T], sortedElems []T, counts []int) *LinkedRBTreeBag[T] {
	b := New(cmp)

	pairs := make([]pairEntry[T], len(sortedElems))
	for i, e := range sortedElems {
		pairs[i] = pairEntry[T]{elem: e, count: counts[i]}
	}

	b.buildFromSorted(pairs)

	return b
}

func (b *LinkedRBTreeBag[T]) absentValue(x T) bool {
	return b.isAbsent != nil && b.isAbsent(x)
}

func (b *LinkedRBTreeBag[T]) find(x T) *Node[T] {
	n := b.root
	for n != nil {
		c := b.cmp(x, n.payload)

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

// Size returns the number of distinct elements.
func (b *LinkedRBTreeBag[T]) Size() int {
	return b.distinctCount
}

// BagSize returns the sum of counts across all distinct elements.
func (b *LinkedRBTreeBag[T]) BagSize() int {
	return bagSizeOf(b.root)
}

// IsEmpty reports whether the bag has no elements.
func (b *LinkedRBTreeBag[T]) IsEmpty() bool {
	return b.distinctCount == 0
}

// Contains reports whether e has a multiplicity greater than zero.
func (b *LinkedRBTreeBag[T]) Contains(e T) bool {
	return b.Count(e) > 0
}

// Count returns e's current multiplicity, 0 if absent.
func (b *LinkedRBTreeBag[T]) Count(e T) int {
	n := b.find(e)
	if n == nil {
		return 0
	}

	return n.count
}

// Add increases e's multiplicity by k, threading a freshly inserted node
// into the chain between its in-order predecessor and successor. If an
// element comparing equal is already present, only that node's count grows
// and e itself is not linked; otherwise Add fails with ErrAlreadyLinked if e
// already carries a back-reference.
func (b *LinkedRBTreeBag[T]) Add(e T, k int) (bool, error) {
	if k <= 0 {
		return false, ErrNonPositiveCount
	}

	if b.absentValue(e) {
		return false, ErrAbsentElement
	}

	if n := b.find(e); n != nil {
		n.addCount(k)
		fixBagSizesToRoot(n.parent)

		return true, nil
	}

	if e.GetNode() != nil {
		return false, ErrAlreadyLinked
	}

	b.insert(e, k)

	return true, nil
}

func (b *LinkedRBTreeBag[T]) insert(e T, k int) {
	parent := (*Node[T])(nil)
	n := b.root

	for n != nil {
		parent = n

		if b.cmp(e, n.payload) < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	z := &Node[T]{payload: e, color: red, parent: parent, count: k, bagSize: k}
	e.SetNode(z)

	switch {
	case parent == nil:
		b.root = z
	case b.cmp(e, parent.payload) < 0:
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

	fixBagSizesToRoot(parent)
	b.fixupInsert(z)
	b.distinctCount++

	if b.min == nil || z.prev == nil {
		b.min = z
	}

	if b.max == nil || z.next == nil {
		b.max = z
	}
}

// Remove decreases e's multiplicity by k, removing e entirely (through the
// standard delete+rebalance path) if k is at least e's count.
func (b *LinkedRBTreeBag[T]) Remove(e T, k int) (bool, error) {
	if k <= 0 {
		return false, ErrNonPositiveCount
	}

	n := b.find(e)
	if n == nil {
		return false, nil
	}

	if k >= n.count {
		b.deleteNode(n)

		return true, nil
	}

	n.addCount(-k)
	fixBagSizesToRoot(n.parent)

	return true, nil
}

// RemoveAllOf removes every occurrence of e.
func (b *LinkedRBTreeBag[T]) RemoveAllOf(e T) bool {
	n := b.find(e)
	if n == nil {
		return false
	}

	b.deleteNode(n)

	return true
}

// Next returns the in-order successor of e in O(1), or None if e is the
// maximum or not linked into this bag.
func (b *LinkedRBTreeBag[T]) Next(e T) optional.Value[T] {
	n := e.GetNode()
	if n == nil || n.next == nil {
		return optional.None[T]()
	}

	return optional.Some(n.next.payload)
}

// Prev returns the in-order predecessor of e in O(1), or None if e is the
// minimum or not linked into this bag.
func (b *LinkedRBTreeBag[T]) Prev(e T) optional.Value[T] {
	n := e.GetNode()
	if n == nil || n.prev == nil {
		return optional.None[T]()
	}

	return optional.Some(n.prev.payload)
}

// Swap exchanges the payloads of two already-inserted keys in O(1).
//
// Swap does NOT swap counts: a node's count is a property of its tree
// position (the distinct key currently occupying that slot), not of the
// payload identity data being exchanged. Callers that need multiplicities
// to follow the swapped payloads must adjust counts themselves afterward.
func (b *LinkedRBTreeBag[T]) Swap(a, c T, swapPayloads func(a, c T)) {
	na := a.GetNode()
	nc := c.GetNode()

	assert.NotNil(na, "linkedbag: Swap called with an unlinked payload")
	assert.NotNil(nc, "linkedbag: Swap called with an unlinked payload")

	swapPayloads(a, c)

	na.payload = c
	nc.payload = a
	c.SetNode(na)
	a.SetNode(nc)

	b.checkOrderInvariant(na)
	b.checkOrderInvariant(nc)
}

func (b *LinkedRBTreeBag[T]) checkOrderInvariant(n *Node[T]) {
	if n.prev != nil && b.cmp(n.prev.payload, n.payload) >= 0 {
		panic(fmt.Errorf("%w: Swap violated chain ordering", ErrInvariant))
	}

	if n.next != nil && b.cmp(n.payload, n.next.payload) >= 0 {
		panic(fmt.Errorf("%w: Swap violated chain ordering", ErrInvariant))
	}
}

// Clear removes every element, severing every payload's back-reference.
func (b *LinkedRBTreeBag[T]) Clear() {
	for n := b.min; n != nil; n = n.next {
		n.payload.SetNode(nil)
	}

	b.root, b.min, b.max = nil, nil, nil
	b.distinctCount = 0
}

// Entries iterates every distinct element in sorted order paired with its
// multiplicity, walking the linked chain.
func (b *LinkedRBTreeBag[T]) Entries() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for n := b.min; n != nil; n = n.next {
			if !yield(n.payload, n.count) {
				return
			}
		}
	}
}

// source is the minimal contract this package needs from another bag-shaped
// collection for AddAll/RemoveAll/RetainAll, mirroring bag.Bag without
// importing it (both packages are leaves; no cycle risk either way, but this
// keeps linkedbag independent of bag's exact interface shape).
type source[T any] interface {
	Count(e T) int
	Entries() iter.Seq2[T, int]
}

// AddAll adds every entry of other, combining multiplicities for elements
// already present. If this bag is currently empty, it switches to an O(n)
// bulk-build path instead of inserting one element at a time.
func (b *LinkedRBTreeBag[T]) AddAll(other source[T]) bool {
	if b.IsEmpty() {
		var pairs []pairEntry[T]

		for e, k := range other.Entries() {
			pairs = append(pairs, pairEntry[T]{elem: e, count: k})
		}

		if len(pairs) == 0 {
			return false
		}

		sort.Slice(pairs, func(i, j int) bool { return b.cmp(pairs[i].elem, pairs[j].elem) < 0 })
		b.buildFromSorted(pairs)

		return true
	}

	changed := false

	for e, k := range other.Entries() {
		if ok, _ := b.Add(e, k); ok {
			changed = true
		}
	}

	return changed
}

// RemoveAll decreases each of this bag's elements by other's multiplicity,
// removing any element whose count drops to zero.
func (b *LinkedRBTreeBag[T]) RemoveAll(other source[T]) bool {
	changed := false

	for e, k := range other.Entries() {
		if ok, _ := b.Remove(e, k); ok {
			changed = true
		}
	}

	return changed
}

// RetainAll keeps, for every element, the lesser of this bag's count and
// other's count, removing elements other does not contain at all.
func (b *LinkedRBTreeBag[T]) RetainAll(other source[T]) bool {
	type adjustment struct {
		elem T
		to   int
	}

	var toAdjust []adjustment

	for e, mine := range b.Entries() {
		theirs := other.Count(e)

		switch {
		case theirs == 0:
			toAdjust = append(toAdjust, adjustment{e, 0})
		case theirs < mine:
			toAdjust = append(toAdjust, adjustment{e, theirs})
		}
	}

	for _, adj := range toAdjust {
		if adj.to == 0 {
			b.RemoveAllOf(adj.elem)

			continue
		}

		n := b.find(adj.elem)
		n.count = adj.to
		fixBagSizesToRoot(n)
	}

	return len(toAdjust) > 0
}

// AddAllMap adds every (element, count) pair from m. A separate free
// function, rather than a method, because keying a Go map requires
// comparable, a stricter constraint than LinkedRBTreeBag's own Linkable.
func AddAllMap[T interface {
	Linkable[T]
	comparable
}](bag *LinkedRBTreeBag[T], m map[T]int) bool {
	changed := false

	for e, k := range m {
		if ok, _ := bag.Add(e, k); ok {
			changed = true
		}
	}

	return changed
}

// RemoveAllMap decreases every (element, count) pair from m.
func RemoveAllMap[T interface {
	Linkable[T]
	comparable
}](bag *LinkedRBTreeBag[T], m map[T]int) bool {
	changed := false

	for e, k := range m {
		if ok, _ := bag.Remove(e, k); ok {
			changed = true
		}
	}

	return changed
}
