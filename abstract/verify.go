package abstract

import (
	"github.com/pingcap/errors"
)

// Verify checks the structural invariants of the tree: every node's count
// is one more than the counts of its children, keys are strictly ascending
// in order, and no subtree is more than delta times the size of its sibling
// unless the pair holds at most one item. It returns the first violation
// found.
func (t Map[K, V]) Verify() error {
	if t.root != nil && t.cmp == nil {
		return errors.New("non-empty map has no ordering")
	}
	_, err := verify(t.cmp, bound[K]{}, bound[K]{}, t.root)
	return err
}

func verify[K, V any](cmp Cmp[K], lo, hi bound[K], n *node[K, V]) (count int, _ error) {
	if n == nil {
		return 0, nil
	}
	if lo.ok && cmp(n.key, lo.key) <= 0 {
		return 0, errors.Errorf("key %v is not greater than %v", n.key, lo.key)
	}
	if hi.ok && cmp(n.key, hi.key) >= 0 {
		return 0, errors.Errorf("key %v is not less than %v", n.key, hi.key)
	}
	sl, err := verify(cmp, lo, boundAt(n.key), n.left)
	if err != nil {
		return 0, errors.Annotatef(err, "left of %v", n.key)
	}
	sr, err := verify(cmp, boundAt(n.key), hi, n.right)
	if err != nil {
		return 0, errors.Annotatef(err, "right of %v", n.key)
	}
	if n.count != sl+sr+1 {
		return 0, errors.Errorf("node %v has count %d, want %d", n.key, n.count, sl+sr+1)
	}
	if sl+sr > 1 && (sl > delta*sr || sr > delta*sl) {
		return 0, errors.Errorf("node %v is unbalanced: left %d, right %d", n.key, sl, sr)
	}
	return n.count, nil
}
