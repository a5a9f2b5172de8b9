package wbtree

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intPairs(keys ...int) []Pair[int, int] {
	out := make([]Pair[int, int], 0, len(keys))
	for _, k := range keys {
		out = append(out, Pair[int, int]{Key: k, Value: k})
	}
	return out
}

func TestMapScenario(t *testing.T) {
	m := MakeOrderedMap[int, int]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2, 6} {
		m = m.Insert(k, k)
		require.NoError(t, m.Verify())
	}
	require.Equal(t, intPairs(1, 2, 3, 4, 5, 6, 7, 8, 9), m.ToAssocList())
	require.Equal(t, 9, m.Len())

	d := m.Delete(5)
	require.False(t, d.Member(5))
	require.True(t, d.NotMember(5))
	require.Equal(t, 8, d.Len())
	require.NoError(t, d.Verify())
	require.True(t, m.Member(5))
}

func TestMapLookup(t *testing.T) {
	m := FromAssocList(strings.Compare, []Pair[string, int]{
		{"b", 2}, {"a", 1}, {"c", 3}, {"a", 10},
	})
	require.Equal(t, 3, m.Len())
	v, ok := m.Lookup("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
	_, ok = m.Lookup("z")
	require.False(t, ok)

	require.Equal(t, 2, m.Find("b"))
	require.PanicsWithValue(t, "wbtree: Find of a key that is not a member of the map", func() {
		m.Find("z")
	})
	require.Equal(t, 3, m.FindWithDefault(-1, "c"))
	require.Equal(t, -1, m.FindWithDefault(-1, "z"))
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Equal(t, []int{10, 2, 3}, m.Elems())
}

func TestMapEmpty(t *testing.T) {
	m := MakeOrderedMap[int, string]()
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.ToAssocList())
	require.True(t, m.Delete(3).IsEmpty())
	require.Panics(t, func() { m.DeleteFindMin() })
	require.Panics(t, func() { m.DeleteFindMax() })

	s := Singleton(strings.Compare, "k", 1)
	require.False(t, s.IsEmpty())
	require.Equal(t, 1, s.Find("k"))
}

func TestMapInsertWithDirections(t *testing.T) {
	m := MakeOrderedMap[int, string]().Insert(1, "old")
	oldFirst := m.InsertWith(func(old, v string) string { return old + v }, 1, "new")
	require.Equal(t, "oldnew", oldFirst.Find(1))
	newFirst := m.InsertWith(func(old, v string) string { return v + old }, 1, "new")
	require.Equal(t, "newold", newFirst.Find(1))

	withKey := m.InsertWithKey(func(k int, old, v string) string {
		return strings.Repeat(old, k) + "|" + v
	}, 1, "new")
	require.Equal(t, "old|new", withKey.Find(1))

	counts := MakeOrderedMap[string, int]()
	for _, w := range strings.Fields("a b a c b a") {
		counts = counts.InsertWith(func(old, v int) int { return old + v }, w, 1)
	}
	require.Equal(t, []Pair[string, int]{{"a", 3}, {"b", 2}, {"c", 1}}, counts.ToAssocList())
}

func TestMapRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		m := MakeOrderedMap[int, int]()
		for i := rng.Intn(200); i > 0; i-- {
			m = m.Insert(rng.Intn(100), rng.Int())
		}
		back := FromAssocList(func(a, b int) int { return a - b }, m.ToAssocList())
		require.NoError(t, back.Verify())
		require.Equal(t, m.Keys(), back.Keys())
		require.Equal(t, m.Elems(), back.Elems())
		for k := -1; k <= 100; k++ {
			v1, ok1 := m.Lookup(k)
			v2, ok2 := back.Lookup(k)
			require.Equal(t, ok1, ok2)
			require.Equal(t, v1, v2)
		}
	}
}

func TestMapDeleteKeepsOthers(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	m := MakeOrderedMap[int, int]()
	for i := 0; i < 300; i++ {
		m = m.Insert(rng.Intn(500), i)
	}
	for _, k := range m.Keys() {
		d := m.Delete(k)
		require.False(t, d.Member(k))
		require.Equal(t, m.Len()-1, d.Len())
		for _, other := range []int{k - 1, k + 1, 0, 499} {
			if other == k {
				continue
			}
			v1, ok1 := m.Lookup(other)
			v2, ok2 := d.Lookup(other)
			require.Equal(t, ok1, ok2)
			require.Equal(t, v1, v2)
		}
	}
}

func TestMapDeleteFind(t *testing.T) {
	m := FromAssocList(func(a, b int) int { return a - b }, intPairs(4, 2, 6))
	p, rest := m.DeleteFindMin()
	require.Equal(t, Pair[int, int]{2, 2}, p)
	require.Equal(t, []int{4, 6}, rest.Keys())
	p, rest = m.DeleteFindMax()
	require.Equal(t, Pair[int, int]{6, 6}, p)
	require.Equal(t, []int{2, 4}, rest.Keys())
}

func TestMapUnionDifference(t *testing.T) {
	a := FromAssocList(func(x, y int) int { return x - y }, []Pair[int, string]{{1, "a1"}, {3, "a3"}})
	b := FromAssocList(func(x, y int) int { return x - y }, []Pair[int, string]{{3, "b3"}, {5, "b5"}})
	u := a.Union(b)
	require.Equal(t, []Pair[int, string]{{1, "a1"}, {3, "a3"}, {5, "b5"}}, u.ToAssocList())
	require.Equal(t, []Pair[int, string]{{1, "a1"}}, a.Difference(b).ToAssocList())
}

func TestMapFoldsAndMaps(t *testing.T) {
	m := FromAssocList(strings.Compare, []Pair[string, int]{{"x", 1}, {"y", 2}, {"z", 3}})
	require.Equal(t, 6, Foldl(m, func(acc, v int) int { return acc + v }, 0))
	require.Equal(t, []int{1, 2, 3}, Foldr(m, func(v int, acc []int) []int {
		return append([]int{v}, acc...)
	}, nil))
	require.Equal(t, "zyx", FoldrWithKey(m, func(k string, _ int, acc string) string {
		return acc + k
	}, ""))
	require.Equal(t, "x1y2z3", FoldlWithKey(m, func(acc string, k string, v int) string {
		return acc + k + string(rune('0'+v))
	}, ""))

	doubled := MapValues(m, func(v int) int { return v * 2 })
	require.Equal(t, []int{2, 4, 6}, doubled.Elems())
	tagged := MapWithKey(m, func(k string, v int) string { return strings.Repeat(k, v) })
	require.Equal(t, []string{"x", "yy", "zzz"}, tagged.Elems())
	require.NoError(t, tagged.Verify())
}

func TestMapIteration(t *testing.T) {
	m := FromAssocList(func(a, b int) int { return a - b }, intPairs(10, 20, 30, 40))

	var keys []int
	for k, v := range m.All() {
		require.Equal(t, k, v)
		if k == 30 {
			break
		}
		keys = append(keys, k)
	}
	require.Equal(t, []int{10, 20}, keys)

	var desc []int
	m.Descend(func(k, _ int) bool {
		desc = append(desc, k)
		return true
	})
	require.Equal(t, []int{40, 30, 20, 10}, desc)

	it := m.Iterator()
	it.SeekGE(25)
	require.True(t, it.Valid())
	require.Equal(t, 30, it.Key())
	it.Prev()
	require.Equal(t, 20, it.Value())
	it.SeekLT(10)
	require.False(t, it.Valid())
	it.Last()
	require.Equal(t, 40, it.Key())
	it.Next()
	require.False(t, it.Valid())
	it.First()
	require.Equal(t, 10, it.Key())
}
