package avltree

import (
	"cmp"
	"fmt"
)

// Config configures an AVL tree.
type Config[T any] struct {
	// Compare defines the ordering of keys. It must return a negative number
	// if a < b, a positive number if a > b and zero if a and b are equivalent.
	// It has to be a strict weak ordering; equivalent keys are treated as
	// duplicates.
	Compare func(a, b T) int
}

// OrderedConfig returns a configuration ordering keys with cmp.Compare.
func OrderedConfig[T cmp.Ordered]() Config[T] {
	return Config[T]{Compare: cmp.Compare[T]}
}

func (cfg Config[T]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
