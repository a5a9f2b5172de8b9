// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package wbtree provides immutable ordered maps and sets backed by a
// persistent weight-balanced tree.
//
// Every operation that looks like a mutation returns a new value and leaves
// its receiver untouched; the two share all subtrees the operation did not
// visit. Values are safe for concurrent use by any number of readers. Use a
// Ref to publish successive versions to other goroutines.
package wbtree

import (
	"cmp"
	"iter"

	"github.com/ajwerner/wbtree/abstract"
	"golang.org/x/exp/constraints"
)

// Pair is a key and its value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an immutable map from K to V ordered by a comparison function.
type Map[K, V any] struct {
	t abstract.Map[K, V]
}

// MakeMap returns an empty Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int) Map[K, V] {
	return Map[K, V]{t: abstract.MakeMap[K, V](cmp)}
}

// MakeOrderedMap returns an empty Map ordered by the natural order of K.
func MakeOrderedMap[K constraints.Ordered, V any]() Map[K, V] {
	return MakeMap[K, V](cmp.Compare[K])
}

// Singleton returns a Map holding only k bound to v.
func Singleton[K, V any](cmp func(K, K) int, k K, v V) Map[K, V] {
	return MakeMap[K, V](cmp).Insert(k, v)
}

// FromAssocList builds a Map by inserting pairs in order, so the last pair
// for a key wins.
func FromAssocList[K, V any](cmp func(K, K) int, pairs []Pair[K, V]) Map[K, V] {
	m := MakeMap[K, V](cmp)
	for _, p := range pairs {
		m = m.Insert(p.Key, p.Value)
	}
	return m
}

// ToAssocList returns the bindings of m in ascending key order.
func (m Map[K, V]) ToAssocList() []Pair[K, V] {
	return abstract.Foldl(m.t, func(acc []Pair[K, V], k K, v V) []Pair[K, V] {
		return append(acc, Pair[K, V]{Key: k, Value: v})
	}, make([]Pair[K, V], 0, m.Len()))
}

// Insert returns a map in which k is bound to v, replacing any previous
// binding.
func (m Map[K, V]) Insert(k K, v V) Map[K, V] {
	return Map[K, V]{t: m.t.Upsert(k, v)}
}

// InsertWith is like Insert, except that when k is already bound the new
// value is f(old, v).
func (m Map[K, V]) InsertWith(f func(old, v V) V, k K, v V) Map[K, V] {
	return m.InsertWithKey(func(_ K, old, v V) V { return f(old, v) }, k, v)
}

// InsertWithKey is like Insert, except that when k is already bound the new
// value is f(k, old, v).
func (m Map[K, V]) InsertWithKey(f func(k K, old, v V) V, k K, v V) Map[K, V] {
	return Map[K, V]{t: m.t.UpsertFunc(k, v, f)}
}

// Delete returns a map without k. If k is absent m is returned unchanged.
func (m Map[K, V]) Delete(k K) Map[K, V] {
	t, _ := m.t.Delete(k)
	return Map[K, V]{t: t}
}

// DeleteFindMin removes the binding with the smallest key, returning it and
// the rest of the map. It panics if m is empty.
func (m Map[K, V]) DeleteFindMin() (Pair[K, V], Map[K, V]) {
	if m.IsEmpty() {
		panic("wbtree: DeleteFindMin of an empty map")
	}
	k, v, t := m.t.DeleteMin()
	return Pair[K, V]{Key: k, Value: v}, Map[K, V]{t: t}
}

// DeleteFindMax removes the binding with the largest key, returning it and
// the rest of the map. It panics if m is empty.
func (m Map[K, V]) DeleteFindMax() (Pair[K, V], Map[K, V]) {
	if m.IsEmpty() {
		panic("wbtree: DeleteFindMax of an empty map")
	}
	k, v, t := m.t.DeleteMax()
	return Pair[K, V]{Key: k, Value: v}, Map[K, V]{t: t}
}

// Lookup returns the value bound to k, if any.
func (m Map[K, V]) Lookup(k K) (V, bool) {
	return m.t.Get(k)
}

// Member reports whether k is bound in m.
func (m Map[K, V]) Member(k K) bool {
	_, ok := m.t.Get(k)
	return ok
}

// NotMember reports whether k is not bound in m.
func (m Map[K, V]) NotMember(k K) bool {
	return !m.Member(k)
}

// Find returns the value bound to k. It panics if k is not bound; use Lookup
// or FindWithDefault when absence is expected.
func (m Map[K, V]) Find(k K) V {
	v, ok := m.t.Get(k)
	if !ok {
		panic("wbtree: Find of a key that is not a member of the map")
	}
	return v
}

// FindWithDefault returns the value bound to k, or def if there is none.
func (m Map[K, V]) FindWithDefault(def V, k K) V {
	if v, ok := m.t.Get(k); ok {
		return v
	}
	return def
}

// Len returns the number of bindings in m in constant time.
func (m Map[K, V]) Len() int { return m.t.Len() }

// IsEmpty reports whether m has no bindings.
func (m Map[K, V]) IsEmpty() bool { return m.t.Len() == 0 }

// Keys returns the keys of m in ascending order.
func (m Map[K, V]) Keys() []K { return m.t.Keys() }

// Elems returns the values of m in ascending key order.
func (m Map[K, V]) Elems() []V { return m.t.Values() }

// Union returns the bindings of m and o. Keys bound in both take their value
// from m.
func (m Map[K, V]) Union(o Map[K, V]) Map[K, V] {
	return Map[K, V]{t: m.t.Union(o.t)}
}

// Difference returns the bindings of m whose keys are not bound in o.
func (m Map[K, V]) Difference(o Map[K, V]) Map[K, V] {
	return Map[K, V]{t: abstract.Difference(m.t, o.t)}
}

// Ascend calls fn for each binding in ascending key order until fn returns
// false.
func (m Map[K, V]) Ascend(fn func(K, V) bool) { m.t.Ascend(fn) }

// Descend calls fn for each binding in descending key order until fn returns
// false.
func (m Map[K, V]) Descend(fn func(K, V) bool) { m.t.Descend(fn) }

// All returns an iterator over the bindings of m in ascending key order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) { m.t.Ascend(yield) }
}

// Verify checks the invariants of the underlying tree.
func (m Map[K, V]) Verify() error { return m.t.Verify() }

func (m Map[K, V]) String() string { return m.t.String() }

// Foldr folds f over the values of m from the largest key to the smallest.
func Foldr[K, V, B any](m Map[K, V], f func(V, B) B, z B) B {
	return abstract.Foldr(m.t, func(_ K, v V, acc B) B { return f(v, acc) }, z)
}

// FoldrWithKey folds f over the bindings of m from the largest key to the
// smallest.
func FoldrWithKey[K, V, B any](m Map[K, V], f func(K, V, B) B, z B) B {
	return abstract.Foldr(m.t, f, z)
}

// Foldl folds f over the values of m from the smallest key to the largest.
func Foldl[K, V, B any](m Map[K, V], f func(B, V) B, z B) B {
	return abstract.Foldl(m.t, func(acc B, _ K, v V) B { return f(acc, v) }, z)
}

// FoldlWithKey folds f over the bindings of m from the smallest key to the
// largest.
func FoldlWithKey[K, V, B any](m Map[K, V], f func(B, K, V) B, z B) B {
	return abstract.Foldl(m.t, f, z)
}

// MapValues returns a map with the keys of m and each value replaced by
// f(v).
func MapValues[K, V, W any](m Map[K, V], f func(V) W) Map[K, W] {
	return MapWithKey(m, func(_ K, v V) W { return f(v) })
}

// MapWithKey returns a map with the keys of m and each value replaced by
// f(k, v).
func MapWithKey[K, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	return Map[K, W]{t: abstract.MapWithKey(m.t, f)}
}

// MapIterator walks the bindings of a Map.
type MapIterator[K, V any] struct {
	it abstract.Iterator[K, V]
}

// Iterator returns an unpositioned iterator over m.
func (m Map[K, V]) Iterator() MapIterator[K, V] {
	return MapIterator[K, V]{it: m.t.MakeIter()}
}

func (it *MapIterator[K, V]) First() { it.it.First() }
func (it *MapIterator[K, V]) Last() { it.it.Last() }
func (it *MapIterator[K, V]) Next() { it.it.Next() }
func (it *MapIterator[K, V]) Prev() { it.it.Prev() }
func (it *MapIterator[K, V]) SeekGE(k K) { it.it.SeekGE(k) }
func (it *MapIterator[K, V]) SeekLT(k K) { it.it.SeekLT(k) }
func (it *MapIterator[K, V]) Valid() bool { return it.it.Valid() }
func (it *MapIterator[K, V]) Key() K { return it.it.Key() }
func (it *MapIterator[K, V]) Value() V { return it.it.Value() }
