package abstract

// iterStack holds the ancestors of an Iterator's current node, root first.
type iterStack[K, V any] struct {
	a    iterStackArr[K, V]
	aLen int16 // -1 when using s
	s    []*node[K, V]
}

// Trees of up to a few thousand items fit in the array. The height of a
// weight-balanced tree is at most about 2 log2(n).
const iterStackDepth = 24

// Used to avoid allocations for stacks below a certain size.
type iterStackArr[K, V any] [iterStackDepth]*node[K, V]

func (is *iterStack[K, V]) push(n *node[K, V]) {
	if is.aLen == -1 {
		is.s = append(is.s, n)
	} else if int(is.aLen) == len(is.a) {
		is.s = make([]*node[K, V], int(is.aLen)+1, 2*int(is.aLen))
		copy(is.s, is.a[:])
		is.s[int(is.aLen)] = n
		is.aLen = -1
	} else {
		is.a[is.aLen] = n
		is.aLen++
	}
}

func (is *iterStack[K, V]) pop() *node[K, V] {
	if is.aLen == -1 {
		n := is.s[len(is.s)-1]
		is.s = is.s[:len(is.s)-1]
		return n
	}
	is.aLen--
	return is.a[is.aLen]
}

func (is *iterStack[K, V]) len() int {
	if is.aLen == -1 {
		return len(is.s)
	}
	return int(is.aLen)
}

// truncate drops everything above depth d.
func (is *iterStack[K, V]) truncate(d int) {
	if is.aLen == -1 {
		is.s = is.s[:d]
	} else {
		is.aLen = int16(d)
	}
}

func (is *iterStack[K, V]) reset() {
	is.truncate(0)
}
