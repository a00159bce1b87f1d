package ordmap

import "fmt"

// Check validates the structural invariants of the map: symmetric key order,
// consistent subtree sizes and rank/select duality. A non-nil result wraps
// ErrCorrupted and always indicates a bug in this package.
//
// Check walks the whole tree and is meant for tests and debugging.
func (m *OrderedMap[K, V]) Check() error {
	if m == nil || m.root == nil {
		return nil
	}
	if err := m.checkOrder(); err != nil {
		return err
	}
	if err := m.checkSizes(); err != nil {
		return err
	}
	return m.checkRanks()
}

// CheckInvariants reports whether Check succeeds.
func (m *OrderedMap[K, V]) CheckInvariants() bool {
	return m.Check() == nil
}

// IsOrdered reports whether every key is greater than all keys in its left
// subtree and less than all keys in its right subtree.
func (m *OrderedMap[K, V]) IsOrdered() bool {
	return m.checkOrder() == nil
}

// IsSizeConsistent reports whether every cached subtree size equals one plus
// the sizes of both children.
func (m *OrderedMap[K, V]) IsSizeConsistent() bool {
	return m.checkSizes() == nil
}

// IsRankConsistent reports whether Rank and Select are mutual inverses for
// all ranks and keys.
func (m *OrderedMap[K, V]) IsRankConsistent() bool {
	return m.checkRanks() == nil
}

type orderFrame[K, V any] struct {
	n      *node[K, V]
	lo, hi bound[K] // exclusive
}

func (m *OrderedMap[K, V]) checkOrder() error {
	if m == nil || m.root == nil {
		return nil
	}
	stack := []orderFrame[K, V]{{n: m.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.lo.set && m.cfg.Compare(f.n.key, f.lo.key) <= 0 {
			return fmt.Errorf("%w: key %v not greater than ancestor %v", ErrCorrupted, f.n.key, f.lo.key)
		}
		if f.hi.set && m.cfg.Compare(f.n.key, f.hi.key) >= 0 {
			return fmt.Errorf("%w: key %v not less than ancestor %v", ErrCorrupted, f.n.key, f.hi.key)
		}
		if f.n.left != nil {
			stack = append(stack, orderFrame[K, V]{n: f.n.left, lo: f.lo, hi: bounded(f.n.key)})
		}
		if f.n.right != nil {
			stack = append(stack, orderFrame[K, V]{n: f.n.right, lo: bounded(f.n.key), hi: f.hi})
		}
	}
	return nil
}

func (m *OrderedMap[K, V]) checkSizes() error {
	if m == nil || m.root == nil {
		return nil
	}
	stack := []*node[K, V]{m.root}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if want := 1 + x.left.count() + x.right.count(); x.size != want {
			return fmt.Errorf("%w: node %v has size %d, should be %d", ErrCorrupted, x.key, x.size, want)
		}
		if x.left != nil {
			stack = append(stack, x.left)
		}
		if x.right != nil {
			stack = append(stack, x.right)
		}
	}
	return nil
}

func (m *OrderedMap[K, V]) checkRanks() error {
	if m == nil || m.root == nil {
		return nil
	}
	for i := 0; i < m.Size(); i++ {
		x := m.selectNode(i)
		if x == nil {
			return fmt.Errorf("%w: no key of rank %d", ErrCorrupted, i)
		}
		if r := m.rank(x.key); r != i {
			return fmt.Errorf("%w: rank(select(%d)) = %d", ErrCorrupted, i, r)
		}
	}
	var err error
	m.walk(bound[K]{}, bound[K]{}, func(x *node[K, V]) bool {
		r := m.rank(x.key)
		s := m.selectNode(r)
		if s == nil || m.cfg.Compare(s.key, x.key) != 0 {
			err = fmt.Errorf("%w: select(rank(%v)) differs from key", ErrCorrupted, x.key)
			return false
		}
		return true
	})
	return err
}
