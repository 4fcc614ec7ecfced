package linkedtree_test

import (
	"math/rand"
	"testing"

	"github.com/amp-labs/amp-common/linkedtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// item is a minimal Linkable payload: an int key plus the back-reference
// slot the tree uses for O(1) neighbor queries.
type item struct {
	key  int
	node *linkedtree.Node[*item]
}

func (i *item) GetNode() *linkedtree.Node[*item]  { return i.node }
func (i *item) SetNode(n *linkedtree.Node[*item]) { i.node = n }

func itemCmp(a, b *item) int {
	return a.key - b.key
}

func newItems(keys ...int) []*item {
	out := make([]*item, len(keys))
	for i, k := range keys {
		out[i] = &item{key: k}
	}

	return out
}

func collectKeys(tr *linkedtree.Tree[*item]) []int {
	out := make([]int, 0, tr.Size())
	for it := range tr.All() {
		out = append(out, it.key)
	}

	return out
}

func TestLinkedTree_InsertionAndIteration(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)

	for _, it := range newItems(5, 1, 4, 2, 3) {
		ok, err := tr.Add(it)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5}, collectKeys(tr))
}

func TestLinkedTree_AlreadyLinkedRejected(t *testing.T) {
	t.Parallel()

	tr1 := linkedtree.New(itemCmp)
	tr2 := linkedtree.New(itemCmp)

	it := &item{key: 1}

	ok, err := tr1.Add(it)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = tr2.Add(it)
	require.ErrorIs(t, err, linkedtree.ErrAlreadyLinked)
}

func TestLinkedTree_NeighborsAfterRemoval(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)

	items := newItems(10, 20, 30, 40, 50)

	perm := rand.New(rand.NewSource(2)).Perm(len(items))
	for _, i := range perm {
		_, err := tr.Add(items[i])
		require.NoError(t, err)
	}

	var thirty, twenty *item

	for _, it := range items {
		switch it.key {
		case 30:
			thirty = it
		case 20:
			twenty = it
		}
	}

	require.True(t, tr.Remove(thirty))

	next := tr.Next(twenty)
	require.True(t, next.NonEmpty())
	assert.Equal(t, 40, next.GetOrPanic().key)

	prev := tr.Prev(twenty)
	require.True(t, prev.NonEmpty())
	assert.Equal(t, 10, prev.GetOrPanic().key)

	require.True(t, tr.Remove(twenty))

	var ten *item

	for _, it := range items {
		if it.key == 10 {
			ten = it
		}
	}

	next = tr.Next(ten)
	require.True(t, next.NonEmpty())
	assert.Equal(t, 40, next.GetOrPanic().key)
}

func TestLinkedTree_SwapValidOrder(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)

	a := &item{key: 10}
	b := &item{key: 20}

	_, err := tr.Add(a)
	require.NoError(t, err)
	_, err = tr.Add(b)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		tr.Swap(a, b, func(a, b *item) {
			a.key, b.key = b.key, a.key
		})
	})

	assert.Equal(t, []int{10, 20}, collectKeys(tr))
}

func TestLinkedTree_SwapInvalidOrderPanics(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)

	a := &item{key: 10}
	b := &item{key: 20}
	c := &item{key: 30}

	for _, it := range []*item{a, b, c} {
		_, err := tr.Add(it)
		require.NoError(t, err)
	}

	assert.Panics(t, func() {
		tr.Swap(a, c, func(_, _ *item) {})
	})
}

func TestLinkedTree_Merge(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)

	prev, err := tr.Merge(&item{key: 1}, func(existing, incoming *item) *item { return incoming })
	require.NoError(t, err)
	assert.True(t, prev.Empty())

	prev, err = tr.Merge(&item{key: 1}, func(existing, incoming *item) *item {
		return &item{key: existing.key + incoming.key}
	})
	require.NoError(t, err)
	require.True(t, prev.NonEmpty())
	assert.Equal(t, 1, prev.GetOrPanic().key)

	v, err := tr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 2, v.key)
}

func TestLinkedTree_ClearSeversBackReferences(t *testing.T) {
	t.Parallel()

	tr := linkedtree.New(itemCmp)
	items := newItems(1, 2, 3)

	for _, it := range items {
		_, err := tr.Add(it)
		require.NoError(t, err)
	}

	tr.Clear()

	for _, it := range items {
		assert.Nil(t, it.GetNode())
	}

	assert.Equal(t, 0, tr.Size())
}

func TestLinkedTree_BulkBuildThreadsChain(t *testing.T) {
	t.Parallel()

	items := newItems(1, 2, 3, 4, 5, 6, 7)

	tr := linkedtree.New(itemCmp)
	assert.True(t, tr.AddAll(items))

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collectKeys(tr))

	mid := items[3]
	assert.Equal(t, 5, tr.Next(mid).GetOrPanic().key)
	assert.Equal(t, 3, tr.Prev(mid).GetOrPanic().key)
}
