package ordmap

import (
	"fmt"
	"math/rand/v2"
)

// Get returns the value stored for key. ok is false if key is absent.
func (m *OrderedMap[K, V]) Get(key K) (value V, ok bool, err error) {
	if err = m.checkKey(key, "Get"); err != nil {
		return
	}
	if x := m.find(key); x != nil {
		return x.value, true, nil
	}
	return
}

// Contains reports whether key is present.
func (m *OrderedMap[K, V]) Contains(key K) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Min returns the smallest key.
func (m *OrderedMap[K, V]) Min() (K, error) {
	if m.IsEmpty() {
		var zero K
		return zero, fmt.Errorf("%w: no minimum", ErrEmptyTable)
	}
	x := m.root
	for x.left != nil {
		x = x.left
	}
	return x.key, nil
}

// Max returns the largest key.
func (m *OrderedMap[K, V]) Max() (K, error) {
	if m.IsEmpty() {
		var zero K
		return zero, fmt.Errorf("%w: no maximum", ErrEmptyTable)
	}
	x := m.root
	for x.right != nil {
		x = x.right
	}
	return x.key, nil
}

// Floor returns the largest key less than or equal to key.
// ok is false if every key in the map is greater than key.
func (m *OrderedMap[K, V]) Floor(key K) (floor K, ok bool, err error) {
	if err = m.checkKey(key, "Floor"); err != nil {
		return
	}
	if m.IsEmpty() {
		err = fmt.Errorf("%w: no floor", ErrEmptyTable)
		return
	}
	var best *node[K, V]
	x := m.root
	for x != nil {
		c := m.cfg.Compare(key, x.key)
		if c == 0 {
			return x.key, true, nil
		}
		if c < 0 {
			x = x.left
		} else {
			best = x
			x = x.right
		}
	}
	if best == nil {
		return
	}
	return best.key, true, nil
}

// Ceiling returns the smallest key greater than or equal to key.
// ok is false if every key in the map is less than key.
func (m *OrderedMap[K, V]) Ceiling(key K) (ceiling K, ok bool, err error) {
	if err = m.checkKey(key, "Ceiling"); err != nil {
		return
	}
	if m.IsEmpty() {
		err = fmt.Errorf("%w: no ceiling", ErrEmptyTable)
		return
	}
	var best *node[K, V]
	x := m.root
	for x != nil {
		c := m.cfg.Compare(key, x.key)
		if c == 0 {
			return x.key, true, nil
		}
		if c > 0 {
			x = x.right
		} else {
			best = x
			x = x.left
		}
	}
	if best == nil {
		return
	}
	return best.key, true, nil
}

// Rank returns the number of keys strictly less than key.
// key does not have to be present.
func (m *OrderedMap[K, V]) Rank(key K) (int, error) {
	if err := m.checkKey(key, "Rank"); err != nil {
		return 0, err
	}
	return m.rank(key), nil
}

func (m *OrderedMap[K, V]) rank(key K) int {
	r := 0
	x := m.root
	for x != nil {
		c := m.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			r += 1 + x.left.count()
			x = x.right
		default:
			return r + x.left.count()
		}
	}
	return r
}

// Select returns the key of rank k, i.e. the k-th smallest key counting
// from 0.
func (m *OrderedMap[K, V]) Select(k int) (K, error) {
	if k < 0 || k >= m.Size() {
		var zero K
		return zero, fmt.Errorf("%w: rank %d not in [0,%d)", ErrInvalidArgument, k, m.Size())
	}
	x := m.selectNode(k)
	assert(x != nil, "Select: rank routing exceeded subtree size")
	return x.key, nil
}

// selectNode returns the node of rank k, or nil if the cached sizes do not
// lead to one.
func (m *OrderedMap[K, V]) selectNode(k int) *node[K, V] {
	x := m.root
	for x != nil {
		t := x.left.count()
		switch {
		case t > k:
			x = x.left
		case t < k:
			k -= t + 1
			x = x.right
		default:
			return x
		}
	}
	return nil
}

// RandomKey returns a key chosen uniformly at random. If r is nil, the
// package-level source of math/rand/v2 is used.
func (m *OrderedMap[K, V]) RandomKey(r *rand.Rand) (K, error) {
	if m.IsEmpty() {
		var zero K
		return zero, fmt.Errorf("%w: no key to choose", ErrEmptyTable)
	}
	var k int
	if r == nil {
		k = rand.IntN(m.Size())
	} else {
		k = r.IntN(m.Size())
	}
	x := m.selectNode(k)
	assert(x != nil, "RandomKey: rank routing exceeded subtree size")
	return x.key, nil
}

// Keys returns all keys in ascending order.
func (m *OrderedMap[K, V]) Keys() ([]K, error) {
	if m.IsEmpty() {
		return nil, fmt.Errorf("%w: no keys", ErrEmptyTable)
	}
	keys := make([]K, 0, m.Size())
	m.walk(bound[K]{}, bound[K]{}, func(x *node[K, V]) bool {
		keys = append(keys, x.key)
		return true
	})
	return keys, nil
}

// KeysBetween returns the keys k with lo ≤ k ≤ hi in ascending order.
// If lo > hi the result is empty.
func (m *OrderedMap[K, V]) KeysBetween(lo, hi K) ([]K, error) {
	if err := m.checkBounds(lo, hi, "KeysBetween"); err != nil {
		return nil, err
	}
	var keys []K
	m.walk(bounded(lo), bounded(hi), func(x *node[K, V]) bool {
		keys = append(keys, x.key)
		return true
	})
	return keys, nil
}

// SizeBetween returns the number of keys k with lo ≤ k ≤ hi.
// If lo > hi the result is 0.
func (m *OrderedMap[K, V]) SizeBetween(lo, hi K) (int, error) {
	if err := m.checkBounds(lo, hi, "SizeBetween"); err != nil {
		return 0, err
	}
	if m.cfg.Compare(lo, hi) > 0 {
		return 0, nil
	}
	n := m.rank(hi) - m.rank(lo)
	if m.find(hi) != nil {
		n++
	}
	return n, nil
}

// LevelOrder returns the keys in breadth-first order, level by level from
// the root. Mostly useful for debugging the shape of the tree.
func (m *OrderedMap[K, V]) LevelOrder() []K {
	if m.IsEmpty() {
		return nil
	}
	keys := make([]K, 0, m.Size())
	queue := []*node[K, V]{m.root}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		keys = append(keys, x.key)
		if x.left != nil {
			queue = append(queue, x.left)
		}
		if x.right != nil {
			queue = append(queue, x.right)
		}
	}
	return keys
}

func (m *OrderedMap[K, V]) checkBounds(lo, hi K, op string) error {
	if err := m.checkKey(lo, op); err != nil {
		return err
	}
	return m.checkKey(hi, op)
}
