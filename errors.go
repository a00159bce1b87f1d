package ordmap

import "errors"

var (
	// ErrInvalidArgument signals a nil key or an out-of-range rank.
	ErrInvalidArgument = errors.New("ordmap: invalid argument")
	// ErrEmptyTable signals an extremal or nearest-key query on an empty map.
	ErrEmptyTable = errors.New("ordmap: empty table")
	// ErrInvalidConfig signals an invalid map configuration.
	ErrInvalidConfig = errors.New("ordmap: invalid configuration")
	// ErrCorrupted is reported by Check if a structural invariant is broken.
	// It always indicates a bug in this package.
	ErrCorrupted = errors.New("ordmap: corrupted tree")
)
