package linkedbag_test

import (
	"strings"
	"testing"

	"github.com/amp-labs/amp-common/linkedbag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type word struct {
	text string
	node *linkedbag.Node[*word]
}

func (w *word) GetNode() *linkedbag.Node[*word]  { return w.node }
func (w *word) SetNode(n *linkedbag.Node[*word]) { w.node = n }

func wordCmp(a, b *word) int {
	return strings.Compare(a.text, b.text)
}

func TestLinkedBag_Multiplicities(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	apple1 := &word{text: "apple"}
	apple2 := &word{text: "apple"}
	banana := &word{text: "banana"}

	ok, err := b.Add(apple1, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Add(apple2, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = b.Add(banana, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 3, b.Count(&word{text: "apple"}))
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, 4, b.BagSize())

	ok, err = b.Remove(&word{text: "apple"}, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, b.Count(&word{text: "apple"}))
	assert.Equal(t, 3, b.BagSize())
}

func TestLinkedBag_NeighborsAfterRemoval(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	a := &word{text: "a"}
	c := &word{text: "c"}
	e := &word{text: "e"}

	for _, w := range []*word{a, c, e} {
		ok, err := b.Add(w, 1)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	assert.Equal(t, c, b.Next(a).GetOrPanic())
	assert.Equal(t, a, b.Prev(c).GetOrPanic())

	ok, err := b.Remove(c, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, e, b.Next(a).GetOrPanic())
	assert.Equal(t, a, b.Prev(e).GetOrPanic())
	assert.Nil(t, c.GetNode())
}

func TestLinkedBag_AddRejectsNonPositiveCount(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	_, err := b.Add(&word{text: "x"}, 0)
	require.ErrorIs(t, err, linkedbag.ErrNonPositiveCount)

	_, err = b.Add(&word{text: "x"}, -3)
	require.ErrorIs(t, err, linkedbag.ErrNonPositiveCount)
}

func TestLinkedBag_AddRejectsAlreadyLinked(t *testing.T) {
	t.Parallel()

	b1 := linkedbag.New[*word](wordCmp)
	b2 := linkedbag.New[*word](wordCmp)

	w := &word{text: "shared"}

	ok, err := b1.Add(w, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = b2.Add(w, 1)
	require.ErrorIs(t, err, linkedbag.ErrAlreadyLinked)
}

func TestLinkedBag_SwapDoesNotSwapCounts(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	lo := &word{text: "a"}
	hi := &word{text: "z"}

	_, err := b.Add(lo, 5)
	require.NoError(t, err)

	_, err = b.Add(hi, 1)
	require.NoError(t, err)

	loCountBefore := b.Count(lo)
	hiCountBefore := b.Count(hi)

	b.Swap(lo, hi, func(a, c *word) {
		a.text, c.text = c.text, a.text
	})

	assert.Equal(t, "z", lo.text)
	assert.Equal(t, "a", hi.text)

	assert.Equal(t, hiCountBefore, b.Count(&word{text: "z"}))
	assert.Equal(t, loCountBefore, b.Count(&word{text: "a"}))
}

func TestLinkedBag_RemoveAllOfRemovesEveryOccurrence(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	w := &word{text: "dup"}

	_, err := b.Add(w, 7)
	require.NoError(t, err)

	assert.True(t, b.RemoveAllOf(&word{text: "dup"}))
	assert.False(t, b.Contains(&word{text: "dup"}))
	assert.Equal(t, 0, b.Size())
}

func TestLinkedBag_ClearSeversBackReferences(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	w1 := &word{text: "m"}
	w2 := &word{text: "n"}

	_, err := b.Add(w1, 1)
	require.NoError(t, err)

	_, err = b.Add(w2, 1)
	require.NoError(t, err)

	b.Clear()

	assert.Nil(t, w1.GetNode())
	assert.Nil(t, w2.GetNode())
	assert.Equal(t, 0, b.Size())
	assert.Equal(t, 0, b.BagSize())
}

func TestLinkedBag_EntriesSortedOrder(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	for _, text := range []string{"banana", "apple", "cherry"} {
		_, err := b.Add(&word{text: text}, 1)
		require.NoError(t, err)
	}

	var texts []string

	var counts []int

	for w, k := range b.Entries() {
		texts = append(texts, w.text)
		counts = append(counts, k)
	}

	assert.Equal(t, []string{"apple", "banana", "cherry"}, texts)
	assert.Equal(t, []int{1, 1, 1}, counts)
}

func TestLinkedBag_AddAllRemoveAll(t *testing.T) {
	t.Parallel()

	b1 := linkedbag.New[*word](wordCmp)
	b2 := linkedbag.New[*word](wordCmp)

	for _, e := range []struct {
		text  string
		count int
	}{{"a", 2}, {"b", 3}} {
		_, err := b1.Add(&word{text: e.text}, e.count)
		require.NoError(t, err)
	}

	for _, e := range []struct {
		text  string
		count int
	}{{"b", 1}, {"c", 4}} {
		_, err := b2.Add(&word{text: e.text}, e.count)
		require.NoError(t, err)
	}

	assert.True(t, b1.AddAll(b2))
	assert.Equal(t, 2, b1.Count(&word{text: "a"}))
	assert.Equal(t, 4, b1.Count(&word{text: "b"}))
	assert.Equal(t, 4, b1.Count(&word{text: "c"}))

	assert.True(t, b1.RemoveAll(b2))
	assert.Equal(t, 2, b1.Count(&word{text: "a"}))
	assert.Equal(t, 3, b1.Count(&word{text: "b"}))
	assert.Equal(t, 0, b1.Count(&word{text: "c"}))
}

func TestLinkedBag_RetainAll(t *testing.T) {
	t.Parallel()

	b1 := linkedbag.New[*word](wordCmp)
	b2 := linkedbag.New[*word](wordCmp)

	for _, e := range []struct {
		text  string
		count int
	}{{"a", 5}, {"b", 2}, {"c", 1}} {
		_, err := b1.Add(&word{text: e.text}, e.count)
		require.NoError(t, err)
	}

	_, err := b2.Add(&word{text: "a"}, 2)
	require.NoError(t, err)

	_, err = b2.Add(&word{text: "b"}, 9)
	require.NoError(t, err)

	assert.True(t, b1.RetainAll(b2))
	assert.Equal(t, 2, b1.Count(&word{text: "a"}))
	assert.Equal(t, 2, b1.Count(&word{text: "b"}))
	assert.False(t, b1.Contains(&word{text: "c"}))
}

func TestLinkedBag_AddAllMapRemoveAllMap(t *testing.T) {
	t.Parallel()

	b := linkedbag.New[*word](wordCmp)

	m := map[*word]int{
		{text: "x"}: 2,
		{text: "y"}: 5,
	}

	assert.True(t, linkedbag.AddAllMap(b, m))
	assert.Equal(t, 7, b.BagSize())

	assert.True(t, linkedbag.RemoveAllMap(b, m))
	assert.Equal(t, 0, b.BagSize())
}

func TestLinkedBag_BulkBuildThreadsChainAndCounts(t *testing.T) {
	t.Parallel()

	elems := []*word{{text: "a"}, {text: "b"}, {text: "c"}, {text: "d"}, {text: "e"}}
	counts := []int{1, 2, 1, 3, 1}

	b := linkedbag.NewFromSorted(wordCmp, elems, counts)

	assert.Equal(t, 5, b.Size())
	assert.Equal(t, 8, b.BagSize())

	var gotTexts []string

	for w := range b.Entries() {
		gotTexts = append(gotTexts, w.text)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, gotTexts)

	for i, e := range elems {
		assert.NotNil(t, e.GetNode(), "element %d should be linked", i)
	}

	assert.Equal(t, elems[0], b.Prev(elems[1]).GetOrPanic())
	assert.Equal(t, elems[2], b.Next(elems[1]).GetOrPanic())
}
