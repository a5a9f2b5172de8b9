package abstract

// Cmp is a three-way comparison. It returns a negative number when a sorts
// before b, zero when they are equal and a positive number otherwise.
//
// A Map relies on Cmp being a total order; every Map combined with another
// in a binary operation must share the same ordering.
type Cmp[K any] func(a, b K) int

// bound is an optional open bound used while hedging.
type bound[K any] struct {
	key K
	ok  bool
}

func boundAt[K any](k K) bound[K] { return bound[K]{key: k, ok: true} }
