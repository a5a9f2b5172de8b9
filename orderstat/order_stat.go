// Package orderstat provides a mutable ordered set that answers positional
// queries in logarithmic time.
package orderstat

import (
	"cmp"

	"github.com/ajwerner/wbtree/abstract"
	"golang.org/x/exp/constraints"
)

// Item is implemented by types with a natural order.
type Item[T any] interface {
	Less(T) bool
}

// OrderStatTree is an ordered set of distinct items. Every subtree of the
// underlying tree records its size, so indexing and ranking need no extra
// bookkeeping.
//
// An OrderStatTree must not be written by more than one goroutine at a time.
// Clone hands out an independent copy in constant time.
type OrderStatTree[T any] struct {
	t abstract.Map[T, struct{}]
}

// MakeOrderStatTree returns an empty tree ordered by cmp.
func MakeOrderStatTree[T any](cmp func(T, T) int) *OrderStatTree[T] {
	return &OrderStatTree[T]{
		t: abstract.MakeMap[T, struct{}](cmp),
	}
}

// MakeOrderedStatTree returns an empty tree using the natural order of T.
func MakeOrderedStatTree[T constraints.Ordered]() *OrderStatTree[T] {
	return MakeOrderStatTree(cmp.Compare[T])
}

// MakeItemStatTree returns an empty tree ordered by T's Less method.
func MakeItemStatTree[T Item[T]]() *OrderStatTree[T] {
	return MakeOrderStatTree(func(a, b T) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}

// Set adds v, replacing an equal item if there is one.
func (t *OrderStatTree[T]) Set(v T) {
	t.t = t.t.Upsert(v, struct{}{})
}

// Remove deletes v and reports whether it was present.
func (t *OrderStatTree[T]) Remove(v T) (removed bool) {
	t.t, removed = t.t.Delete(v)
	return removed
}

// Has reports whether v is present.
func (t *OrderStatTree[T]) Has(v T) bool {
	_, ok := t.t.Get(v)
	return ok
}

// Len returns the number of items.
func (t *OrderStatTree[T]) Len() int { return t.t.Len() }

// At returns the item with index i in ascending order. It panics if i is out
// of range.
func (t *OrderStatTree[T]) At(i int) T {
	v, _ := t.t.At(i)
	return v
}

// Rank returns the number of items less than v, and whether v is present.
func (t *OrderStatTree[T]) Rank(v T) (int, bool) {
	return t.t.Rank(v)
}

// CountRange returns the number of items in [lo, hi).
func (t *OrderStatTree[T]) CountRange(lo, hi T) int {
	l, _ := t.t.Rank(lo)
	h, _ := t.t.Rank(hi)
	if h < l {
		return 0
	}
	return h - l
}

// Clone returns an independent copy of t.
func (t *OrderStatTree[T]) Clone() *OrderStatTree[T] {
	return &OrderStatTree[T]{t: t.t}
}

// Verify checks the invariants of the underlying tree.
func (t *OrderStatTree[T]) Verify() error { return t.t.Verify() }

// OrderStatIterator walks the items of a tree as of the moment MakeIter was
// called.
type OrderStatIterator[T any] struct {
	it abstract.Iterator[T, struct{}]
}

func (t *OrderStatTree[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		it: t.t.MakeIter(),
	}
}

// Nth positions the iterator at the item with index i. The iterator is
// invalid if i is out of range.
func (it *OrderStatIterator[T]) Nth(i int) { it.it.SeekNth(i) }

func (it *OrderStatIterator[T]) SeekGE(v T)  { it.it.SeekGE(v) }
func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Prev()       { it.it.Prev() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Key() }
