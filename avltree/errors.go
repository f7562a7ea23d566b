package avltree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("avltree: invalid configuration")
	// ErrInvariant signals a violated structural invariant, reported by Check.
	ErrInvariant = errors.New("avltree: invariant violated")
)
