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

// Package abstract implements a persistent weight-balanced binary search
// tree, the bounded-balance tree of Adams with parameters (3, 2).
//
// A Map is a small value: a root pointer and a comparison function. Every
// update returns a new Map that shares all untouched subtrees with the
// receiver, which stays valid and unchanged. Maps may therefore be read from
// any number of goroutines without synchronization.
package abstract

import (
	"strings"
)

// Map is an immutable ordered map backed by a weight-balanced tree.
//
// The zero value has no ordering and may only be read. Use MakeMap.
type Map[K, V any] struct {
	root *node[K, V]
	cmp  Cmp[K]
}

// MakeMap returns an empty Map ordered by cmp.
func MakeMap[K, V any](cmp Cmp[K]) Map[K, V] {
	return Map[K, V]{cmp: cmp}
}

// Compare returns the ordering of the Map.
func (t Map[K, V]) Compare() Cmp[K] { return t.cmp }

// Len returns the number of items in the map. O(1).
func (t Map[K, V]) Len() int { return t.root.len() }

// Height returns the height of the tree.
func (t Map[K, V]) Height() int { return t.root.height() }

// Identical reports whether t and o share the same root, which implies that
// they hold the same items.
func (t Map[K, V]) Identical(o Map[K, V]) bool { return t.root == o.root }

func (t Map[K, V]) with(root *node[K, V]) Map[K, V] {
	return Map[K, V]{root: root, cmp: t.cmp}
}

// Get returns the value bound to k.
func (t Map[K, V]) Get(k K) (v V, found bool) {
	return lookup(t.cmp, k, t.root)
}

// Upsert returns a map in which k is bound to v. An existing binding for an
// equal key is replaced, key and value.
func (t Map[K, V]) Upsert(k K, v V) Map[K, V] {
	return t.with(insert(t.cmp, k, v, t.root))
}

// UpsertFunc is like Upsert, except that if k is already bound the new value
// is f(k, old, v): the value already in the map comes first and the value
// being inserted second.
func (t Map[K, V]) UpsertFunc(k K, v V, f func(k K, old, v V) V) Map[K, V] {
	return t.with(insertWith(t.cmp, f, k, v, t.root))
}

// Delete returns a map without k. If k is absent the receiver is returned,
// root and all, and found is false.
func (t Map[K, V]) Delete(k K) (_ Map[K, V], found bool) {
	root, found := remove(t.cmp, k, t.root)
	if !found {
		return t, false
	}
	return t.with(root), true
}

// DeleteMin removes the item with the smallest key and returns it along with
// the remaining map. It panics if the map is empty.
func (t Map[K, V]) DeleteMin() (K, V, Map[K, V]) {
	if t.root == nil {
		panic("abstract: DeleteMin called on an empty map")
	}
	k, v, root := deleteFindMin(t.root)
	return k, v, t.with(root)
}

// DeleteMax removes the item with the largest key and returns it along with
// the remaining map. It panics if the map is empty.
func (t Map[K, V]) DeleteMax() (K, V, Map[K, V]) {
	if t.root == nil {
		panic("abstract: DeleteMax called on an empty map")
	}
	k, v, root := deleteFindMax(t.root)
	return k, v, t.with(root)
}

// Min returns the item with the smallest key.
func (t Map[K, V]) Min() (k K, v V, ok bool) {
	if n := minNode(t.root); n != nil {
		return n.key, n.value, true
	}
	return k, v, false
}

// Max returns the item with the largest key.
func (t Map[K, V]) Max() (k K, v V, ok bool) {
	if n := maxNode(t.root); n != nil {
		return n.key, n.value, true
	}
	return k, v, false
}

// Union returns the union of t and o. Where both hold a key, the item from t
// is kept. It runs in O(m log(n/m + 1)) for sizes m <= n.
func (t Map[K, V]) Union(o Map[K, V]) Map[K, V] {
	return t.with(union(t.cmp, t.root, o.root))
}

// Difference returns the items of a whose keys are not present in b.
func Difference[K, V, W any](a Map[K, V], b Map[K, W]) Map[K, V] {
	return a.with(difference(a.cmp, a.root, b.root))
}

// At returns the i'th item in ascending key order. It panics if i is out of
// range.
func (t Map[K, V]) At(i int) (K, V) {
	if i < 0 || i >= t.Len() {
		panic("abstract: index out of range")
	}
	n := at(i, t.root)
	return n.key, n.value
}

// Rank returns the number of keys smaller than k, which is k's index if
// found is true.
func (t Map[K, V]) Rank(k K) (idx int, found bool) {
	return rank(t.cmp, k, t.root)
}

// Ascend calls fn for every item in ascending key order until fn returns
// false.
func (t Map[K, V]) Ascend(fn func(K, V) bool) { ascend(fn, t.root) }

// Descend calls fn for every item in descending key order until fn returns
// false.
func (t Map[K, V]) Descend(fn func(K, V) bool) { descend(fn, t.root) }

// Keys returns all keys in ascending order.
func (t Map[K, V]) Keys() []K {
	out := make([]K, 0, t.Len())
	t.Ascend(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Values returns all values in ascending key order.
func (t Map[K, V]) Values() []V {
	out := make([]V, 0, t.Len())
	t.Ascend(func(_ K, v V) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Foldr folds f over the items of t from the largest key to the smallest,
// so that the smallest key is applied last: f(k0, v0, f(k1, v1, ... z)).
func Foldr[K, V, B any](t Map[K, V], f func(K, V, B) B, z B) B {
	return foldr(f, z, t.root)
}

// Foldl folds f over the items of t from the smallest key to the largest:
// f(f(f(z, k0, v0), k1, v1), ...).
func Foldl[K, V, B any](t Map[K, V], f func(B, K, V) B, z B) B {
	return foldl(f, z, t.root)
}

// MapWithKey returns a map with the same keys and shape as t, each value
// replaced by f(k, v).
func MapWithKey[K, V, W any](t Map[K, V], f func(K, V) W) Map[K, W] {
	return Map[K, W]{root: mapWithKey(f, t.root), cmp: t.cmp}
}

// MakeIter returns an Iterator over the map as of this call; later updates
// produce new maps and do not affect it.
func (t Map[K, V]) MakeIter() Iterator[K, V] {
	it := Iterator[K, V]{r: t}
	it.Reset()
	return it
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t Map[K, V]) String() string {
	if t.root == nil {
		return ";"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}
