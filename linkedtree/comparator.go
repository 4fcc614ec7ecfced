package linkedtree

// Comparator defines a total order over payloads of type T, exactly like
// rbtree.Comparator. The two are kept as distinct types (rather than a
// shared import) because the node types they order differ: this tree's
// payloads must additionally satisfy Linkable[T].
type Comparator[T Linkable[T]] func(a, b T) int
