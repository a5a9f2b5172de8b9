package abstract

func foldr[K, V, B any](f func(K, V, B) B, z B, n *node[K, V]) B {
	for n != nil {
		z = f(n.key, n.value, foldr(f, z, n.right))
		n = n.left
	}
	return z
}

func foldl[K, V, B any](f func(B, K, V) B, z B, n *node[K, V]) B {
	for n != nil {
		z = f(foldl(f, z, n.left), n.key, n.value)
		n = n.right
	}
	return z
}

func mapWithKey[K, V, W any](f func(K, V) W, n *node[K, V]) *node[K, W] {
	if n == nil {
		return nil
	}
	return &node[K, W]{
		count: n.count,
		key:   n.key,
		value: f(n.key, n.value),
		left:  mapWithKey(f, n.left),
		right: mapWithKey(f, n.right),
	}
}

// ascend calls fn on every item in ascending key order until fn returns
// false. It reports whether the walk ran to completion.
func ascend[K, V any](fn func(K, V) bool, n *node[K, V]) bool {
	for n != nil {
		if !ascend(fn, n.left) || !fn(n.key, n.value) {
			return false
		}
		n = n.right
	}
	return true
}

func descend[K, V any](fn func(K, V) bool, n *node[K, V]) bool {
	for n != nil {
		if !descend(fn, n.right) || !fn(n.key, n.value) {
			return false
		}
		n = n.left
	}
	return true
}

// at returns the node holding the i'th smallest key, 0-based.
func at[K, V any](i int, n *node[K, V]) *node[K, V] {
	for n != nil {
		sl := n.left.len()
		switch {
		case i < sl:
			n = n.left
		case i > sl:
			i -= sl + 1
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// rank returns the number of keys in n smaller than k and whether k itself
// is present.
func rank[K, V any](cmp Cmp[K], k K, n *node[K, V]) (idx int, found bool) {
	for n != nil {
		c := cmp(k, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			idx += n.left.len() + 1
			n = n.right
		default:
			return idx + n.left.len(), true
		}
	}
	return idx, false
}
