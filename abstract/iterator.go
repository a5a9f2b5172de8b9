package abstract

// Iterator is responsible for search and traversal within a Map. It walks a
// fixed version of the map, so it remains usable after the map it was made
// from has been updated.
type Iterator[K, V any] struct {
	r    Map[K, V]
	node *node[K, V]
	s    iterStack[K, V]
}

// Reset leaves the Iterator at an invalid position.
func (i *Iterator[K, V]) Reset() {
	i.node = nil
	i.s.reset()
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V]) SeekGE(key K) {
	i.Reset()
	var cand *node[K, V]
	depth := 0
	for n := i.r.root; n != nil; {
		c := i.r.cmp(key, n.key)
		if c == 0 {
			i.node = n
			return
		}
		if c < 0 {
			cand, depth = n, i.s.len()
			i.s.push(n)
			n = n.left
		} else {
			i.s.push(n)
			n = n.right
		}
	}
	i.s.truncate(depth)
	i.node = cand
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V]) SeekLT(key K) {
	i.Reset()
	var cand *node[K, V]
	depth := 0
	for n := i.r.root; n != nil; {
		if i.r.cmp(key, n.key) > 0 {
			cand, depth = n, i.s.len()
			i.s.push(n)
			n = n.right
		} else {
			i.s.push(n)
			n = n.left
		}
	}
	i.s.truncate(depth)
	i.node = cand
}

// SeekNth seeks to the item with index idx in ascending key order. The
// Iterator is invalid if idx is out of range.
func (i *Iterator[K, V]) SeekNth(idx int) {
	i.Reset()
	if idx < 0 || idx >= i.r.Len() {
		return
	}
	for n := i.r.root; n != nil; {
		sl := n.left.len()
		switch {
		case idx < sl:
			i.s.push(n)
			n = n.left
		case idx > sl:
			idx -= sl + 1
			i.s.push(n)
			n = n.right
		default:
			i.node = n
			return
		}
	}
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V]) First() {
	i.Reset()
	n := i.r.root
	if n == nil {
		return
	}
	for n.left != nil {
		i.s.push(n)
		n = n.left
	}
	i.node = n
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V]) Last() {
	i.Reset()
	n := i.r.root
	if n == nil {
		return
	}
	for n.right != nil {
		i.s.push(n)
		n = n.right
	}
	i.node = n
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V]) Next() {
	if i.node == nil {
		return
	}
	if n := i.node.right; n != nil {
		i.s.push(i.node)
		for n.left != nil {
			i.s.push(n)
			n = n.left
		}
		i.node = n
		return
	}
	for i.s.len() > 0 {
		parent := i.s.pop()
		if parent.left == i.node {
			i.node = parent
			return
		}
		i.node = parent
	}
	i.node = nil
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V]) Prev() {
	if i.node == nil {
		return
	}
	if n := i.node.left; n != nil {
		i.s.push(i.node)
		for n.right != nil {
			i.s.push(n)
			n = n.right
		}
		i.node = n
		return
	}
	for i.s.len() > 0 {
		parent := i.s.pop()
		if parent.right == i.node {
			i.node = parent
			return
		}
		i.node = parent
	}
	i.node = nil
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V]) Valid() bool {
	return i.node != nil
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V]) Key() K {
	return i.node.key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V]) Value() V {
	return i.node.value
}
