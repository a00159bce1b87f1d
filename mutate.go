package ordmap

import "fmt"

// Put inserts key with value, replacing the value if key is already present.
//
// There is no value which means "delete"; use Delete to remove a key.
func (m *OrderedMap[K, V]) Put(key K, value V) error {
	if err := m.checkKey(key, "Put"); err != nil {
		return err
	}
	if x := m.find(key); x != nil {
		x.value = value
		return nil
	}
	// key is absent, so every node on the search path gains one descendant
	slot := &m.root
	for *slot != nil {
		x := *slot
		x.size++
		if m.cfg.Compare(key, x.key) < 0 {
			slot = &x.left
		} else {
			slot = &x.right
		}
	}
	*slot = &node[K, V]{key: key, value: value, size: 1}
	m.afterMutation("Put")
	return nil
}

// Delete removes key and its value. Deleting an absent key is a no-op.
//
// A node with two children is replaced by its in-order successor (Hibbard
// deletion), or by predecessor or successor at random if the map is
// configured with RandomizedDeletion.
func (m *OrderedMap[K, V]) Delete(key K) error {
	if err := m.checkKey(key, "Delete"); err != nil {
		return err
	}
	if m.find(key) == nil {
		return nil
	}
	slot := &m.root
	for {
		x := *slot
		c := m.cfg.Compare(key, x.key)
		if c == 0 {
			break
		}
		x.size--
		if c < 0 {
			slot = &x.left
		} else {
			slot = &x.right
		}
	}
	m.unlink(slot)
	m.afterMutation("Delete")
	return nil
}

// DeleteMin removes the smallest key.
func (m *OrderedMap[K, V]) DeleteMin() error {
	_, _, err := m.PopMin()
	return err
}

// DeleteMax removes the largest key.
func (m *OrderedMap[K, V]) DeleteMax() error {
	_, _, err := m.PopMax()
	return err
}

// PopMin removes the smallest key and returns it together with its value.
func (m *OrderedMap[K, V]) PopMin() (K, V, error) {
	if m.IsEmpty() {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: cannot remove minimum", ErrEmptyTable)
	}
	x := detachMin(&m.root)
	m.afterMutation("PopMin")
	return x.key, x.value, nil
}

// PopMax removes the largest key and returns it together with its value.
func (m *OrderedMap[K, V]) PopMax() (K, V, error) {
	if m.IsEmpty() {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: cannot remove maximum", ErrEmptyTable)
	}
	x := detachMax(&m.root)
	m.afterMutation("PopMax")
	return x.key, x.value, nil
}

// unlink removes the node held by slot. Sizes of the nodes above slot have
// to be adjusted by the caller.
func (m *OrderedMap[K, V]) unlink(slot **node[K, V]) {
	x := *slot
	switch {
	case x.right == nil:
		*slot = x.left
	case x.left == nil:
		*slot = x.right
	case m.takePredecessor():
		pred := detachMax(&x.left)
		x.key, x.value = pred.key, pred.value
		x.size--
	default:
		succ := detachMin(&x.right)
		x.key, x.value = succ.key, succ.value
		x.size--
	}
}

func (m *OrderedMap[K, V]) takePredecessor() bool {
	return m.cfg.Deletion == RandomizedDeletion && m.cfg.Rand.IntN(2) == 0
}

// detachMin unlinks the leftmost node of the non-empty subtree held by slot
// and returns it. Its right child takes its place.
func detachMin[K, V any](slot **node[K, V]) *node[K, V] {
	assert(*slot != nil, "detachMin called on empty subtree")
	for (*slot).left != nil {
		(*slot).size--
		slot = &(*slot).left
	}
	x := *slot
	*slot = x.right
	x.right = nil
	return x
}

// detachMax unlinks the rightmost node of the non-empty subtree held by slot
// and returns it. Its left child takes its place.
func detachMax[K, V any](slot **node[K, V]) *node[K, V] {
	assert(*slot != nil, "detachMax called on empty subtree")
	for (*slot).right != nil {
		(*slot).size--
		slot = &(*slot).right
	}
	x := *slot
	*slot = x.left
	x.left = nil
	return x
}

func (m *OrderedMap[K, V]) afterMutation(op string) {
	if !m.cfg.CheckMutations {
		return
	}
	if err := m.Check(); err != nil {
		T().Errorf("ordmap: %s broke an invariant: %v", op, err)
		panic(err)
	}
}
