package rbtree

import "iter"

// All returns an iterator over the tree's elements in sorted order. The
// iterator is not restartable; concurrent modification during iteration is
// undefined, matching the plain Go map/slice iteration contract.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := t.min; n != nil; n = successor(n) {
			if !yield(n.payload) {
				return
			}
		}
	}
}

// ListIterator is a bidirectional cursor over a tree's elements. It supports
// removing the last element returned by Next or Prev; Set and Add are not
// supported, matching a read-mostly in-order cursor.
type ListIterator[T any] struct {
	tree    *Tree[T]
	cursor  *node[T]
	lastRet *node[T]
}

// ListIterator returns a bidirectional iterator positioned before the first
// element (fromStart true) or after the last element (fromStart false).
func (t *Tree[T]) ListIterator(fromStart bool) *ListIterator[T] {
	it := &ListIterator[T]{tree: t}

	if fromStart {
		it.cursor = t.min
	} else {
		it.cursor = nil
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
	it.cursor = successor(n)

	return n.payload, true
}

// HasPrev reports whether a call to Prev would yield an element.
func (it *ListIterator[T]) HasPrev() bool {
	if it.cursor == nil {
		return it.tree.max != nil
	}

	return predecessor(it.cursor) != nil
}

// Prev returns the previous element and retreats the cursor.
func (it *ListIterator[T]) Prev() (T, bool) {
	var p *node[T]
	if it.cursor == nil {
		p = it.tree.max
	} else {
		p = predecessor(it.cursor)
	}

	if p == nil {
		var zero T

		return zero, false
	}

	it.lastRet = p
	it.cursor = p

	return p.payload, true
}

// Remove removes the element last returned by Next or Prev. If Prev
// returned it, the cursor still sits on it, so Remove advances the cursor to
// its successor; if Next returned it, Next already moved the cursor past it
// before Remove runs, so Remove leaves the cursor where it is. Calling
// Remove without an intervening Next/Prev, or calling it twice in a row, is
// a no-op.
func (it *ListIterator[T]) Remove() {
	if it.lastRet == nil {
		return
	}

	removed := it.lastRet
	wasCursor := it.cursor == removed

	next := successor(removed)

	it.tree.bstDelete(removed)
	it.lastRet = nil

	if wasCursor {
		it.cursor = next
	}
}
