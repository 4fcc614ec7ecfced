package rbtree

// Comparator defines a total order over payloads of type T. It returns a
// negative number if a sorts before b, zero if they are equal for tree
// purposes, and a positive number if a sorts after b. The tree never uses
// any other notion of equality: two payloads that compare equal are treated
// as the same element, even if they are otherwise distinguishable.
type Comparator[T any] func(a, b T) int
