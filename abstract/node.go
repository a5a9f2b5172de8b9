package abstract

import (
	"fmt"
	"strings"
)

// Balance parameters for the bounded-balance tree. A subtree may be at most
// delta times the size of its sibling; ratio picks between a single and a
// double rotation. (3, 2) is the only integral pair for which insertion and
// deletion are known to preserve balance.
const (
	delta = 3
	ratio = 2
)

// node is an immutable tree node. A nil *node is the empty tree. Once a node
// is reachable from a Map it is never written again; every update builds new
// nodes along the search path and points them at the untouched subtrees.
type node[K, V any] struct {
	count       int
	key         K
	value       V
	left, right *node[K, V]
}

// len returns the number of items rooted at n.
func (n *node[K, V]) len() int {
	if n == nil {
		return 0
	}
	return n.count
}

func bin[K, V any](k K, v V, l, r *node[K, V]) *node[K, V] {
	return &node[K, V]{
		count: l.len() + r.len() + 1,
		key:   k,
		value: v,
		left:  l,
		right: r,
	}
}

func singleton[K, V any](k K, v V) *node[K, V] {
	return &node[K, V]{count: 1, key: k, value: v}
}

// balance builds a node from k, v and two subtrees whose sizes differ from a
// balanced pair by at most one insertion or deletion, rotating if needed.
func balance[K, V any](k K, v V, l, r *node[K, V]) *node[K, V] {
	sl, sr := l.len(), r.len()
	switch {
	case sl+sr <= 1:
		return bin(k, v, l, r)
	case sr > delta*sl:
		return rotateL(k, v, l, r)
	case sl > delta*sr:
		return rotateR(k, v, l, r)
	default:
		return bin(k, v, l, r)
	}
}

func rotateL[K, V any](k K, v V, l, r *node[K, V]) *node[K, V] {
	if r.left.len() < ratio*r.right.len() {
		return singleL(k, v, l, r)
	}
	return doubleL(k, v, l, r)
}

func rotateR[K, V any](k K, v V, l, r *node[K, V]) *node[K, V] {
	if l.right.len() < ratio*l.left.len() {
		return singleR(k, v, l, r)
	}
	return doubleR(k, v, l, r)
}

// singleL:
//
//	  k1              k2
//	 /  \            /  \
//	t1   k2   =>   k1    t3
//	    /  \      /  \
//	  t2    t3   t1   t2
func singleL[K, V any](k1 K, v1 V, t1, r *node[K, V]) *node[K, V] {
	return bin(r.key, r.value, bin(k1, v1, t1, r.left), r.right)
}

func singleR[K, V any](k1 K, v1 V, l, t3 *node[K, V]) *node[K, V] {
	return bin(l.key, l.value, l.left, bin(k1, v1, l.right, t3))
}

// doubleL:
//
//	  k1                   k3
//	 /  \                /    \
//	t1   k2            k1      k2
//	    /  \    =>    /  \    /  \
//	  k3    t4      t1   t2  t3   t4
//	 /  \
//	t2   t3
func doubleL[K, V any](k1 K, v1 V, t1, r *node[K, V]) *node[K, V] {
	b := r.left
	return bin(b.key, b.value, bin(k1, v1, t1, b.left), bin(r.key, r.value, b.right, r.right))
}

func doubleR[K, V any](k1 K, v1 V, l, t4 *node[K, V]) *node[K, V] {
	b := l.right
	return bin(b.key, b.value, bin(l.key, l.value, l.left, b.left), bin(k1, v1, b.right, t4))
}

func lookup[K, V any](cmp Cmp[K], k K, n *node[K, V]) (v V, found bool) {
	for n != nil {
		c := cmp(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return v, false
}

// insert returns n with k bound to v. An existing binding for k is replaced,
// key included.
func insert[K, V any](cmp Cmp[K], k K, v V, n *node[K, V]) *node[K, V] {
	if n == nil {
		return singleton(k, v)
	}
	c := cmp(k, n.key)
	switch {
	case c < 0:
		return balance(n.key, n.value, insert(cmp, k, v, n.left), n.right)
	case c > 0:
		return balance(n.key, n.value, n.left, insert(cmp, k, v, n.right))
	default:
		return &node[K, V]{count: n.count, key: k, value: v, left: n.left, right: n.right}
	}
}

// insertWith is insert, except that on a collision the stored value is
// f(k, old, v).
func insertWith[K, V any](cmp Cmp[K], f func(k K, old, v V) V, k K, v V, n *node[K, V]) *node[K, V] {
	if n == nil {
		return singleton(k, v)
	}
	c := cmp(k, n.key)
	switch {
	case c < 0:
		return balance(n.key, n.value, insertWith(cmp, f, k, v, n.left), n.right)
	case c > 0:
		return balance(n.key, n.value, n.left, insertWith(cmp, f, k, v, n.right))
	default:
		return &node[K, V]{count: n.count, key: k, value: f(k, n.value, v), left: n.left, right: n.right}
	}
}

// remove returns n without k. When k is absent n itself is returned and
// found is false.
func remove[K, V any](cmp Cmp[K], k K, n *node[K, V]) (_ *node[K, V], found bool) {
	if n == nil {
		return nil, false
	}
	c := cmp(k, n.key)
	switch {
	case c < 0:
		l, found := remove(cmp, k, n.left)
		if !found {
			return n, false
		}
		return balance(n.key, n.value, l, n.right), true
	case c > 0:
		r, found := remove(cmp, k, n.right)
		if !found {
			return n, false
		}
		return balance(n.key, n.value, n.left, r), true
	default:
		return glue(n.left, n.right), true
	}
}

// deleteFindMin removes the leftmost item of a non-empty tree.
func deleteFindMin[K, V any](n *node[K, V]) (K, V, *node[K, V]) {
	if n == nil {
		panic("abstract: deleteFindMin of an empty tree")
	}
	if n.left == nil {
		return n.key, n.value, n.right
	}
	k, v, l := deleteFindMin(n.left)
	return k, v, balance(n.key, n.value, l, n.right)
}

// deleteFindMax removes the rightmost item of a non-empty tree.
func deleteFindMax[K, V any](n *node[K, V]) (K, V, *node[K, V]) {
	if n == nil {
		panic("abstract: deleteFindMax of an empty tree")
	}
	if n.right == nil {
		return n.key, n.value, n.left
	}
	k, v, r := deleteFindMax(n.right)
	return k, v, balance(n.key, n.value, n.left, r)
}

// glue joins two trees that were siblings in a balanced tree, every key of l
// being smaller than every key of r. The new root is taken from the larger
// side so the result needs at most one rotation.
func glue[K, V any](l, r *node[K, V]) *node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case l.count > r.count:
		k, v, l1 := deleteFindMax(l)
		return balance(k, v, l1, r)
	default:
		k, v, r1 := deleteFindMin(r)
		return balance(k, v, l, r1)
	}
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

func (n *node[K, V]) writeString(b *strings.Builder) {
	if n.left != nil {
		b.WriteString("(")
		n.left.writeString(b)
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v:%v", n.key, n.value)
	if n.right != nil {
		b.WriteString("(")
		n.right.writeString(b)
		b.WriteString(")")
	}
}
