package orderstat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type Int int

func (i Int) Less(o Int) bool {
	return i < o
}

func assertIntEq(t *testing.T, exp, got Int) {
	t.Helper()
	if exp != got {
		t.Fatalf("expected %d, got %d", exp, got)
	}
}

func TestOrderStatTree(t *testing.T) {
	tree := MakeItemStatTree[Int]()
	tree.Set(2)
	tree.Set(3)
	tree.Set(5)
	tree.Set(4)
	iter := tree.MakeIter()
	iter.First()
	for _, exp := range []Int{2, 3, 4, 5} {
		assertIntEq(t, exp, iter.Cur())
		iter.Next()
	}
	iter.Nth(2)
	assertIntEq(t, 4, iter.Cur())
	iter.Last()
	assertIntEq(t, 5, iter.Cur())
	iter.Prev()
	assertIntEq(t, 4, iter.Cur())
	iter.Nth(4)
	require.False(t, iter.Valid())
}

func TestOrderStatNth(t *testing.T) {
	t.Parallel()
	tree := MakeItemStatTree[Int]()
	const maxN = 1000
	N := rand.Intn(maxN)
	items := make([]int, 0, N)
	for i := 0; i < N; i++ {
		items = append(items, i)
	}
	perm := rand.Perm(N)
	for _, idx := range perm {
		tree.Set(Int(items[idx]))
	}
	removePerm := rand.Perm(N)
	retainAll := rand.Float64() < .25
	var removed []int
	for _, idx := range removePerm {
		if !retainAll && rand.Float64() < .05 {
			continue
		}
		require.True(t, tree.Remove(Int(items[idx])))
		removed = append(removed, items[idx])
	}
	t.Logf("removed %d/%d", len(removed), N)
	require.NoError(t, tree.Verify())
	for _, i := range removed {
		tree.Set(Int(i))
	}
	require.Equal(t, N, tree.Len())
	perm = rand.Perm(N)

	iter := tree.MakeIter()
	for _, idx := range perm {
		iter.Nth(idx)
		assertIntEq(t, Int(items[idx]), iter.Cur())
		for i := idx + 1; i < N; i++ {
			iter.Next()
			assertIntEq(t, Int(items[i]), iter.Cur())
		}
		iter.Next()
		if iter.Valid() {
			t.Fatal("expected invalid")
		}
	}
}

func TestOrderStatAtRank(t *testing.T) {
	tree := MakeOrderedStatTree[int]()
	for _, v := range []int{50, 10, 40, 20, 30} {
		tree.Set(v)
	}
	for i, exp := range []int{10, 20, 30, 40, 50} {
		require.Equal(t, exp, tree.At(i))
		idx, ok := tree.Rank(exp)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
	idx, ok := tree.Rank(35)
	require.False(t, ok)
	require.Equal(t, 3, idx)
	require.Equal(t, 2, tree.CountRange(15, 40))
	require.Equal(t, 0, tree.CountRange(40, 15))
	require.Equal(t, 5, tree.CountRange(0, 100))
	require.Panics(t, func() { tree.At(5) })
	require.Panics(t, func() { tree.At(-1) })
	require.False(t, tree.Remove(35))
}

func TestOrderStatClone(t *testing.T) {
	tree := MakeOrderedStatTree[string]()
	tree.Set("b")
	tree.Set("a")
	clone := tree.Clone()
	iter := tree.MakeIter()

	tree.Set("c")
	clone.Remove("a")
	require.Equal(t, 3, tree.Len())
	require.Equal(t, 1, clone.Len())
	require.True(t, tree.Has("a"))
	require.False(t, clone.Has("a"))

	var seen []string
	for iter.First(); iter.Valid(); iter.Next() {
		seen = append(seen, iter.Cur())
	}
	require.Equal(t, []string{"a", "b"}, seen)

	iter = tree.MakeIter()
	iter.SeekGE("bb")
	require.Equal(t, "c", iter.Cur())
}
