package linkedtree

import "github.com/amp-labs/amp-common/optional"

// Offer is an alias for Add, completing the queue facade.
func (t *Tree[T]) Offer(x T) (bool, error) {
	return t.Add(x)
}

// Poll removes and returns the minimum element, or None if the tree is
// empty.
func (t *Tree[T]) Poll() optional.Value[T] {
	if t.min == nil {
		return optional.None[T]()
	}

	v := t.min.payload
	t.bstDelete(t.min)

	return optional.Some(v)
}

// Peek returns the minimum element without removing it, or None if the tree
// is empty.
func (t *Tree[T]) Peek() optional.Value[T] {
	return t.GetMin()
}

// RemoveHead pops the minimum element, failing with ErrNoSuchElement if the
// tree is empty.
func (t *Tree[T]) RemoveHead() (T, error) {
	if t.min == nil {
		var zero T

		return zero, ErrNoSuchElement
	}

	v := t.min.payload
	t.bstDelete(t.min)

	return v, nil
}

// Element returns the minimum element, failing with ErrNoSuchElement if the
// tree is empty.
func (t *Tree[T]) Element() (T, error) {
	if t.min == nil {
		var zero T

		return zero, ErrNoSuchElement
	}

	return t.min.payload, nil
}
