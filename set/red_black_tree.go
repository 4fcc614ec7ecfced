// Package set provides a red-black tree implementation of the Set interface.
// This file contains redBlackTreeSet, a thin adapter over rbtree.Tree: a
// self-balancing binary search tree augmented with subtree sizes, giving
// guaranteed O(log n) insertion, deletion, and lookup, plus O(log n)
// rank/select that a hash-backed set cannot offer.
package set

import (
	"iter"

	"github.com/amp-labs/amp-common/hashing"
	"github.com/amp-labs/amp-common/rbtree"
	"github.com/amp-labs/amp-common/sortable"
)

// redBlackTreeSet is a self-balancing binary search tree implementation of
// the Set interface, keeping elements in sorted order. It carries no payload
// beyond the key itself, so it drives rbtree.Tree directly rather than
// wrapping key and value together the way an ordered map would.
type redBlackTreeSet[K sortable.Sortable[K]] struct {
	tree *rbtree.Tree[K]
}

// sortableCompare builds an rbtree.Comparator from the Sortable interface's
// Equals/LessThan pair.
func sortableCompare[K sortable.Sortable[K]](a, b K) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}

// NewRedBlackTreeSet creates a new empty red-black tree set.
// The returned set maintains elements in sorted order and provides O(log n) operations.
func NewRedBlackTreeSet[K sortable.Sortable[K]]() Set[K] {
	return &redBlackTreeSet[K]{tree: rbtree.New(sortableCompare[K])}
}

// AddAll adds multiple elements to the set.
// Returns an error if any element fails to be added (though current implementation never returns errors).
func (r *redBlackTreeSet[K]) AddAll(elements ...K) error {
	r.tree.AddAll(elements)

	return nil
}

// Add inserts a new element into the set.
// If the element already exists, the set remains unchanged.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Add(element K) error {
	_, err := r.tree.Add(element)
	if err != nil {
		return err
	}

	return nil
}

// Remove deletes an element from the set.
// If the element does not exist, the set remains unchanged.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Remove(element K) error {
	r.tree.Remove(element)

	return nil
}

// Clear removes all elements from the set.
// Time complexity: O(1).
func (r *redBlackTreeSet[K]) Clear() {
	r.tree.Clear()
}

// Contains checks if an element exists in the set.
// Time complexity: O(log n).
func (r *redBlackTreeSet[K]) Contains(element K) (bool, error) {
	return r.tree.Contains(element), nil
}

// Size returns the number of elements in the set.
// Time complexity: O(1).
func (r *redBlackTreeSet[K]) Size() int {
	return r.tree.Size()
}

// Entries returns all elements in the set as a slice, in sorted order.
// Time complexity: O(n).
func (r *redBlackTreeSet[K]) Entries() []K {
	if r.tree.Size() == 0 {
		return nil
	}

	entries := make([]K, 0, r.tree.Size())

	for k := range r.Seq() {
		entries = append(entries, k)
	}

	return entries
}

// Seq returns an iterator that yields elements in sorted order (in-order traversal).
// This enables Go 1.23+ range-over-func syntax: for element := range set.Seq() { ... }
// Time complexity: O(n) to iterate all elements.
func (r *redBlackTreeSet[K]) Seq() iter.Seq[K] {
	return r.tree.All()
}

// Union returns a new set containing all elements from both this set and the other set.
// Time complexity: O(n + m) where n and m are the sizes of the two sets.
func (r *redBlackTreeSet[K]) Union(other Set[K]) (Set[K], error) {
	out := NewRedBlackTreeSet[K]()

	for k := range r.Seq() {
		if err := out.Add(k); err != nil {
			return nil, err
		}
	}

	for k := range other.Seq() {
		if err := out.Add(k); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Intersection returns a new set containing only elements that exist in both this set and the other set.
// Time complexity: O(n log m) where n is the size of this set and m is the size of the other set.
func (r *redBlackTreeSet[K]) Intersection(other Set[K]) (Set[K], error) {
	out := NewRedBlackTreeSet[K]()

	for k := range r.Seq() {
		contains, err := other.Contains(k)
		if err != nil {
			return nil, err
		}

		if contains {
			if err := out.Add(k); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// HashFunction returns nil because red-black tree sets do not use hashing.
// This method exists to satisfy callers that type-assert for it.
func (r *redBlackTreeSet[K]) HashFunction() hashing.HashFunc {
	return nil
}

// Clone creates a shallow copy of the set with all the same elements.
// Time complexity: O(n).
func (r *redBlackTreeSet[K]) Clone() Set[K] {
	out := NewRedBlackTreeSet[K]()

	for k := range r.Seq() {
		_ = out.Add(k)
	}

	return out
}
