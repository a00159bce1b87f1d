package ordmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
)

// OrderedMap is an ordered symbol table backed by a size-augmented binary
// search tree.
//
// Keys are unique; putting an existing key replaces its value. Maps have to
// be created by New or NewOrdered.
type OrderedMap[K, V any] struct {
	cfg  Config[K]
	root *node[K, V]
}

// node is the unit of storage. Each node is owned by exactly one pointer,
// either the map's root or a parent's left or right link.
type node[K, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	size        int // number of nodes in the subtree rooted here, including self
}

// count is nil-safe and returns the cached subtree size.
func (n *node[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// New creates an empty map with validated configuration.
func New[K, V any](cfg Config[K]) (*OrderedMap[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	T().Debugf("ordmap: new map with %s deletion, checked=%v", cfg.Deletion, cfg.CheckMutations)
	return &OrderedMap[K, V]{cfg: cfg}, nil
}

// NewOrdered creates an empty map for keys with a natural Go ordering.
func NewOrdered[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	m, err := New[K, V](OrderedConfig[K]())
	assert(err == nil, "NewOrdered: ordered configuration must be valid")
	return m
}

// Config returns a copy of the effective map configuration.
func (m *OrderedMap[K, V]) Config() Config[K] {
	return m.cfg
}

// Size returns the number of keys in the map.
func (m *OrderedMap[K, V]) Size() int {
	if m == nil {
		return 0
	}
	return m.root.count()
}

// IsEmpty reports whether the map has no keys.
func (m *OrderedMap[K, V]) IsEmpty() bool {
	return m == nil || m.root == nil
}

// Height returns the number of edges on the longest root-to-leaf path.
// The empty map has height -1, a single key has height 0.
func (m *OrderedMap[K, V]) Height() int {
	if m == nil || m.root == nil {
		return -1
	}
	height := -1
	level := []*node[K, V]{m.root}
	for len(level) > 0 {
		height++
		next := make([]*node[K, V], 0, 2*len(level))
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Clear removes all keys.
func (m *OrderedMap[K, V]) Clear() {
	T().Debugf("ordmap: clearing map of size %d", m.Size())
	m.root = nil
}

// checkKey rejects keys flagged by Config.NilKey.
func (m *OrderedMap[K, V]) checkKey(key K, op string) error {
	if m.cfg.NilKey != nil && m.cfg.NilKey(key) {
		return fmt.Errorf("%w: %s called with nil key", ErrInvalidArgument, op)
	}
	return nil
}

// find returns the node holding key, or nil.
func (m *OrderedMap[K, V]) find(key K) *node[K, V] {
	x := m.root
	for x != nil {
		c := m.cfg.Compare(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			return x
		}
	}
	return nil
}
