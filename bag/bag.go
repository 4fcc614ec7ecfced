package bag

import "iter"

// Bag is a set-like interface with multiplicity-aware operations. The bulk
// operations (AddAll, RemoveAll, RetainAll) are not part of this interface
// and have no default implementation for other Bag types: RBTreeBag provides
// them as its own methods, which accept any Bag as their argument.
type Bag[T any] interface {
	// Add increases e's multiplicity by k (k >= 1); inserts e with count k if
	// it was absent. Returns whether the bag changed.
	Add(e T, k int) (bool, error)

	// Remove decreases e's multiplicity by k (k >= 1), removing e entirely if
	// k >= count(e). Returns whether the bag changed.
	Remove(e T, k int) (bool, error)

	// RemoveAllOf removes every occurrence of e (the Set-form remove).
	// Returns whether the bag changed.
	RemoveAllOf(e T) bool

	// Count returns e's current multiplicity, 0 if absent.
	Count(e T) int

	// BagSize returns the sum of counts across all distinct elements.
	BagSize() int

	// Size returns the number of distinct elements.
	Size() int

	// Contains reports whether e has a multiplicity greater than zero.
	Contains(e T) bool

	// IsEmpty reports whether the bag has no elements.
	IsEmpty() bool

	// Entries iterates every distinct element paired with its multiplicity.
	Entries() iter.Seq2[T, int]
}
