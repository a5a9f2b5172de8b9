package wbtree

import (
	"go.uber.org/atomic"
)

// Ref is a mutable cell holding one version of an immutable value, typically
// a Map or a Set. Readers Load a version and keep using it for as long as
// they like; writers derive a new version and publish it with Update, which
// retries until no other writer has published in between.
//
// The zero Ref holds the zero value of T.
type Ref[T any] struct {
	p atomic.Pointer[T]
}

// NewRef returns a Ref holding v.
func NewRef[T any](v T) *Ref[T] {
	r := &Ref[T]{}
	r.p.Store(&v)
	return r
}

// Load returns the current version.
func (r *Ref[T]) Load() T {
	if p := r.p.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// Store publishes v unconditionally.
func (r *Ref[T]) Store(v T) {
	r.p.Store(&v)
}

// Swap publishes v and returns the version it replaced.
func (r *Ref[T]) Swap(v T) T {
	if old := r.p.Swap(&v); old != nil {
		return *old
	}
	var zero T
	return zero
}

// Update publishes f applied to the current version and returns the result.
// f may run more than once when writers race and must not have side
// effects beyond computing the new version.
func (r *Ref[T]) Update(f func(T) T) T {
	for {
		old := r.p.Load()
		var cur T
		if old != nil {
			cur = *old
		}
		next := f(cur)
		if r.p.CompareAndSwap(old, &next) {
			return next
		}
	}
}
