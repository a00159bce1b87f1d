package ordmap

import "iter"

// bound is an optional, inclusive key bound for range walks.
type bound[K any] struct {
	key K
	set bool
}

func bounded[K any](key K) bound[K] {
	return bound[K]{key: key, set: true}
}

// All returns an iterator over all key/value pairs in ascending key order.
//
// The map must not be modified during iteration.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.IsEmpty() {
			return
		}
		m.walk(bound[K]{}, bound[K]{}, func(x *node[K, V]) bool {
			return yield(x.key, x.value)
		})
	}
}

// Ascend returns an iterator over the key/value pairs with lo ≤ key ≤ hi in
// ascending key order. If lo > hi the iterator is empty.
//
// The map must not be modified during iteration.
func (m *OrderedMap[K, V]) Ascend(lo, hi K) (iter.Seq2[K, V], error) {
	if err := m.checkBounds(lo, hi, "Ascend"); err != nil {
		return nil, err
	}
	return func(yield func(K, V) bool) {
		m.walk(bounded(lo), bounded(hi), func(x *node[K, V]) bool {
			return yield(x.key, x.value)
		})
	}, nil
}

// walk visits the nodes within [lo,hi] in order, using an explicit stack.
// Subtrees which cannot hold keys within the bounds are pruned. Iteration
// stops early if visit returns false.
func (m *OrderedMap[K, V]) walk(lo, hi bound[K], visit func(*node[K, V]) bool) {
	if lo.set && hi.set && m.cfg.Compare(lo.key, hi.key) > 0 {
		return
	}
	stack := make([]*node[K, V], 0, 32)
	x := m.root
	for {
		for x != nil {
			c := -1
			if lo.set {
				c = m.cfg.Compare(lo.key, x.key)
			}
			if c > 0 { // x and its left subtree are below lo
				x = x.right
				continue
			}
			stack = append(stack, x)
			if c == 0 {
				x = nil
			} else {
				x = x.left
			}
		}
		if len(stack) == 0 {
			return
		}
		x = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if hi.set && m.cfg.Compare(hi.key, x.key) < 0 {
			return
		}
		if !visit(x) {
			return
		}
		x = x.right
	}
}
