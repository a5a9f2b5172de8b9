package wbtree

import (
	"cmp"
	"iter"

	"github.com/ajwerner/wbtree/abstract"
	"golang.org/x/exp/constraints"
)

// Set is an immutable ordered set. It shares its tree with Map, storing an
// empty struct in the value slot.
type Set[T any] struct {
	t abstract.Map[T, struct{}]
}

// MakeSet returns an empty Set ordered by cmp.
func MakeSet[T any](cmp func(T, T) int) Set[T] {
	return Set[T]{t: abstract.MakeMap[T, struct{}](cmp)}
}

// MakeOrderedSet returns an empty Set ordered by the natural order of T.
func MakeOrderedSet[T constraints.Ordered]() Set[T] {
	return MakeSet[T](cmp.Compare[T])
}

// SetSingleton returns a Set holding only x.
func SetSingleton[T any](cmp func(T, T) int, x T) Set[T] {
	return MakeSet(cmp).Insert(x)
}

// FromList returns a Set holding the elements of xs.
func FromList[T any](cmp func(T, T) int, xs []T) Set[T] {
	s := MakeSet(cmp)
	for _, x := range xs {
		s = s.Insert(x)
	}
	return s
}

// Insert returns a set that contains x. An equal element already present is
// replaced by x.
func (s Set[T]) Insert(x T) Set[T] {
	return Set[T]{t: s.t.Upsert(x, struct{}{})}
}

// Delete returns a set without x. If x is absent s is returned unchanged.
func (s Set[T]) Delete(x T) Set[T] {
	t, _ := s.t.Delete(x)
	return Set[T]{t: t}
}

// Member reports whether x is in s.
func (s Set[T]) Member(x T) bool {
	_, ok := s.t.Get(x)
	return ok
}

// NotMember reports whether x is not in s.
func (s Set[T]) NotMember(x T) bool { return !s.Member(x) }

// Len returns the number of elements in s in constant time.
func (s Set[T]) Len() int { return s.t.Len() }

// IsEmpty reports whether s has no elements.
func (s Set[T]) IsEmpty() bool { return s.t.Len() == 0 }

// Elems returns the elements of s in ascending order.
func (s Set[T]) Elems() []T { return s.t.Keys() }

// Union returns the elements of s and o. Where both hold equal elements the
// one from s is kept.
func (s Set[T]) Union(o Set[T]) Set[T] {
	return Set[T]{t: s.t.Union(o.t)}
}

// Difference returns the elements of s that are not in o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	return Set[T]{t: abstract.Difference(s.t, o.t)}
}

// DeleteFindMin removes the smallest element, returning it and the rest of
// the set. It panics if s is empty.
func (s Set[T]) DeleteFindMin() (T, Set[T]) {
	if s.IsEmpty() {
		panic("wbtree: DeleteFindMin of an empty set")
	}
	x, _, t := s.t.DeleteMin()
	return x, Set[T]{t: t}
}

// DeleteFindMax removes the largest element, returning it and the rest of
// the set. It panics if s is empty.
func (s Set[T]) DeleteFindMax() (T, Set[T]) {
	if s.IsEmpty() {
		panic("wbtree: DeleteFindMax of an empty set")
	}
	x, _, t := s.t.DeleteMax()
	return x, Set[T]{t: t}
}

// Min returns the smallest element. It panics if s is empty.
func (s Set[T]) Min() T {
	x, _, ok := s.t.Min()
	if !ok {
		panic("wbtree: Min of an empty set")
	}
	return x
}

// Max returns the largest element. It panics if s is empty.
func (s Set[T]) Max() T {
	x, _, ok := s.t.Max()
	if !ok {
		panic("wbtree: Max of an empty set")
	}
	return x
}

// Ascend calls fn for each element in ascending order until fn returns
// false.
func (s Set[T]) Ascend(fn func(T) bool) {
	s.t.Ascend(func(x T, _ struct{}) bool { return fn(x) })
}

// Descend calls fn for each element in descending order until fn returns
// false.
func (s Set[T]) Descend(fn func(T) bool) {
	s.t.Descend(func(x T, _ struct{}) bool { return fn(x) })
}

// All returns an iterator over the elements of s in ascending order.
func (s Set[T]) All() iter.Seq[T] {
	return s.Ascend
}

// Verify checks the invariants of the underlying tree.
func (s Set[T]) Verify() error { return s.t.Verify() }

func (s Set[T]) String() string { return s.t.String() }

// FoldrSet folds f over the elements of s from the largest to the smallest.
func FoldrSet[T, B any](s Set[T], f func(T, B) B, z B) B {
	return abstract.Foldr(s.t, func(x T, _ struct{}, acc B) B { return f(x, acc) }, z)
}

// FoldlSet folds f over the elements of s from the smallest to the largest.
func FoldlSet[T, B any](s Set[T], f func(B, T) B, z B) B {
	return abstract.Foldl(s.t, func(acc B, x T, _ struct{}) B { return f(acc, x) }, z)
}
