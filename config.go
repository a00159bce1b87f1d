package ordmap

import (
	"cmp"
	"fmt"
	"math/rand/v2"
)

// DeletionStrategy selects how Delete replaces a node with two children.
type DeletionStrategy int

const (
	// HibbardDeletion replaces the node by its in-order successor.
	// Long runs of deletions tend to skew the tree to the left.
	HibbardDeletion DeletionStrategy = iota
	// RandomizedDeletion flips a coin between in-order predecessor and
	// successor. Resulting tree shapes differ from HibbardDeletion.
	RandomizedDeletion
)

func (d DeletionStrategy) String() string {
	switch d {
	case HibbardDeletion:
		return "hibbard"
	case RandomizedDeletion:
		return "randomized"
	}
	return fmt.Sprintf("DeletionStrategy(%d)", int(d))
}

// Config configures an OrderedMap.
type Config[K any] struct {
	// Compare defines the key order. It must be a strict total order,
	// returning a negative number, zero or a positive number if a is less
	// than, equal to or greater than b. Required.
	Compare func(a, b K) int
	// NilKey reports keys which are to be treated as unset, e.g. nil pointers.
	// Operations receiving such a key fail with ErrInvalidArgument.
	// Optional; without it every key is valid.
	NilKey func(key K) bool
	// Deletion selects the replacement policy of Delete.
	Deletion DeletionStrategy
	// Rand is the coin for RandomizedDeletion. If nil, a randomly seeded
	// source is created.
	Rand *rand.Rand
	// CheckMutations runs Check after every mutating operation and panics
	// if an invariant is broken. Expensive; meant for debugging.
	CheckMutations bool
}

// OrderedConfig returns a configuration for keys with a natural Go ordering.
func OrderedConfig[K cmp.Ordered]() Config[K] {
	return Config[K]{Compare: cmp.Compare[K]}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Deletion == RandomizedDeletion && cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	switch cfg.Deletion {
	case HibbardDeletion, RandomizedDeletion:
	default:
		return fmt.Errorf("%w: unknown deletion strategy %s", ErrInvalidConfig, cfg.Deletion)
	}
	return nil
}
