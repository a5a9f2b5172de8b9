package abstract

// The set operations below follow the hedge union of Adams' "Implementing
// Sets Efficiently in a Functional Language". A pair of optional open bounds
// (lo, hi) travels down the recursion; trim discards the parts of the second
// tree that cannot fall inside the current hedge without rebuilding anything.

// trim returns the first subtree of t, walking from the root, whose root key
// lies strictly between lo and hi. Its descendants may still lie outside the
// bounds.
func trim[K, V any](cmp Cmp[K], lo, hi bound[K], t *node[K, V]) *node[K, V] {
	for t != nil {
		switch {
		case lo.ok && cmp(t.key, lo.key) <= 0:
			t = t.right
		case hi.ok && cmp(t.key, hi.key) >= 0:
			t = t.left
		default:
			return t
		}
	}
	return nil
}

// filterGt returns the items of t whose keys are greater than lo.
func filterGt[K, V any](cmp Cmp[K], lo bound[K], t *node[K, V]) *node[K, V] {
	if !lo.ok {
		return t
	}
	return filterGreater(cmp, lo.key, t)
}

func filterGreater[K, V any](cmp Cmp[K], b K, t *node[K, V]) *node[K, V] {
	if t == nil {
		return nil
	}
	c := cmp(b, t.key)
	switch {
	case c < 0:
		return link(t.key, t.value, filterGreater(cmp, b, t.left), t.right)
	case c > 0:
		return filterGreater(cmp, b, t.right)
	default:
		return t.right
	}
}

// filterLt returns the items of t whose keys are less than hi.
func filterLt[K, V any](cmp Cmp[K], hi bound[K], t *node[K, V]) *node[K, V] {
	if !hi.ok {
		return t
	}
	return filterLess(cmp, hi.key, t)
}

func filterLess[K, V any](cmp Cmp[K], b K, t *node[K, V]) *node[K, V] {
	if t == nil {
		return nil
	}
	c := cmp(t.key, b)
	switch {
	case c < 0:
		return link(t.key, t.value, t.left, filterLess(cmp, b, t.right))
	case c > 0:
		return filterLess(cmp, b, t.left)
	default:
		return t.left
	}
}

// link joins l, the item (k, v) and r, where every key of l is smaller than
// k and every key of r is larger. l and r may have any sizes; link descends
// the spine of the larger one until the two sides are within delta of each
// other.
func link[K, V any](k K, v V, l, r *node[K, V]) *node[K, V] {
	switch {
	case l == nil:
		return insertMin(k, v, r)
	case r == nil:
		return insertMax(k, v, l)
	case delta*l.count < r.count:
		return balance(r.key, r.value, link(k, v, l, r.left), r.right)
	case delta*r.count < l.count:
		return balance(l.key, l.value, l.left, link(k, v, l.right, r))
	default:
		return bin(k, v, l, r)
	}
}

// insertMin adds an item known to be smaller than every key of t.
func insertMin[K, V any](k K, v V, t *node[K, V]) *node[K, V] {
	if t == nil {
		return singleton(k, v)
	}
	return balance(t.key, t.value, insertMin(k, v, t.left), t.right)
}

// insertMax adds an item known to be larger than every key of t.
func insertMax[K, V any](k K, v V, t *node[K, V]) *node[K, V] {
	if t == nil {
		return singleton(k, v)
	}
	return balance(t.key, t.value, t.left, insertMax(k, v, t.right))
}

// merge concatenates l and r, every key of l being smaller than every key of
// r. Unlike glue the two trees need not be balanced with respect to each
// other.
func merge[K, V any](l, r *node[K, V]) *node[K, V] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case delta*l.count < r.count:
		return balance(r.key, r.value, merge(l, r.left), r.right)
	case delta*r.count < l.count:
		return balance(l.key, l.value, l.left, merge(l.right, r))
	default:
		return glue(l, r)
	}
}

// hedgeUnion returns the union of the parts of t1 and t2 that lie strictly
// between lo and hi. t2 is expected to have been trimmed to (lo, hi). Items
// of t1 win over items of t2 with an equal key.
func hedgeUnion[K, V any](cmp Cmp[K], lo, hi bound[K], t1, t2 *node[K, V]) *node[K, V] {
	switch {
	case t2 == nil:
		return t1
	case t1 == nil:
		return link(t2.key, t2.value, filterGt(cmp, lo, t2.left), filterLt(cmp, hi, t2.right))
	}
	mid := boundAt(t1.key)
	return link(t1.key, t1.value,
		hedgeUnion(cmp, lo, mid, t1.left, trim(cmp, lo, mid, t2)),
		hedgeUnion(cmp, mid, hi, t1.right, trim(cmp, mid, hi, t2)),
	)
}

// hedgeDiff returns the items of t1 strictly between lo and hi whose keys do
// not appear in t2. t1 is expected to have been trimmed to (lo, hi).
func hedgeDiff[K, V, W any](cmp Cmp[K], lo, hi bound[K], t1 *node[K, V], t2 *node[K, W]) *node[K, V] {
	switch {
	case t1 == nil:
		return nil
	case t2 == nil:
		return link(t1.key, t1.value, filterGt(cmp, lo, t1.left), filterLt(cmp, hi, t1.right))
	}
	mid := boundAt(t2.key)
	return merge(
		hedgeDiff(cmp, lo, mid, trim(cmp, lo, mid, t1), t2.left),
		hedgeDiff(cmp, mid, hi, trim(cmp, mid, hi, t1), t2.right),
	)
}

func union[K, V any](cmp Cmp[K], t1, t2 *node[K, V]) *node[K, V] {
	switch {
	case t1 == nil:
		return t2
	case t2 == nil:
		return t1
	case t1 == t2:
		return t1
	}
	return hedgeUnion(cmp, bound[K]{}, bound[K]{}, t1, t2)
}

func difference[K, V, W any](cmp Cmp[K], t1 *node[K, V], t2 *node[K, W]) *node[K, V] {
	if t1 == nil || t2 == nil {
		return t1
	}
	return hedgeDiff(cmp, bound[K]{}, bound[K]{}, t1, t2)
}
