package linkedtree

import "iter"

// All returns an iterator over the tree's elements in sorted order, walking
// the linked chain rather than re-deriving successors through the tree.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.min; n != nil; n = n.next {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// ListIterator is a bidirectional cursor over a tree's elements, walking the
// linked chain. It supports removing the last element returned by Next or
// Prev; Set and Add are not supported.
type ListIterator[T Linkable[T]] struct {
	tree    *Tree[T]
	cursor  *Node[T]
	lastRet *Node[T]
}

// ListIterator returns a bidirectional iterator positioned before the first
// element (fromStart true) or after the last element (fromStart false).
func (t *Tree[T]) ListIterator(fromStart bool) *ListIterator[T] {
	it := &ListIterator[T]{tree: t}

	if fromStart {
		it.cursor = t.min
	}

	return it
}

// HasNext reports whether a call to Next would yield an element.
func (it *ListIterator[T]) HasNext() bool {
	return it.cursor != nil
}

// Next returns the next element and advances the cursor.
func (it *ListIterator[T]) Next() (T, bool) {
	if it.cursor == nil {
		var zero T

		return zero, false
	}

	n := it.cursor
	it.lastRet = n
	it.cursor = n.next

	return n.payload, true
}

// HasPrev reports whether a call to Prev would yield an element.
func (it *ListIterator[T]) HasPrev() bool {
	if it.cursor == nil {
		return it.tree.max != nil
	}

	return it.cursor.prev != nil
}

// Prev returns the previous element and retreats the cursor.
func (it *ListIterator[T]) Prev() (T, bool) {
	var p *Node[T]
	if it.cursor == nil {
		p = it.tree.max
	} else {
		p = it.cursor.prev
	}

	if p == nil {
		var zero T

		return zero, false
	}

	it.lastRet = p
	it.cursor = p

	return p.payload, true
}

// Remove removes the element last returned by Next or Prev.
func (it *ListIterator[T]) Remove() {
	if it.lastRet == nil {
		return
	}

	removed := it.lastRet
	wasCursor := it.cursor == removed
	next := removed.next

	it.tree.bstDelete(removed)
	it.lastRet = nil

	if wasCursor {
		it.cursor = next
	}
}
