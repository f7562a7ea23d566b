package ordset

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordset/avltree"
)

// Set is an ordered collection of unique elements.
//
// Elements are kept sorted by an ordering function. Inserting an element
// equivalent to a stored one is a no-op; the stored element is not replaced.
//
// Sets are created with New (for ordered Go types) or NewFunc (for arbitrary
// element types and an explicit comparison function). The zero value of a Set,
// like a nil Go map, can be read but not written.
//
//	Operation     |   Set
//	--------------+-----------
//	Insert        |   O(log n)
//	Erase         |   O(log n)
//	Find          |   O(log n)
//	LowerBound    |   O(log n)
//	Len           |   O(1)
//	Iterate       |   O(n)
//	Clone         |   O(n log n)
type Set[T any] struct {
	tree *avltree.Tree[T]
	size int
}

// New creates a set of elements of an ordered type, initially holding elems.
// Later duplicates in elems are ignored.
func New[T cmp.Ordered](elems ...T) *Set[T] {
	s := newSet(avltree.OrderedConfig[T]())
	s.insertAll(elems)
	return s
}

// NewFunc creates a set ordered by compare, initially holding elems.
// compare(a, b) must return a negative number if a < b, a positive number
// if a > b and zero if a and b are equivalent.
func NewFunc[T any](compare func(a, b T) int, elems ...T) (*Set[T], error) {
	tree, err := avltree.New(avltree.Config[T]{Compare: compare})
	if err != nil {
		return nil, err
	}
	s := &Set[T]{tree: tree}
	s.insertAll(elems)
	return s, nil
}

// FromSeq creates a set of elements of an ordered type from a sequence.
// Elements are inserted in sequence order; later duplicates are ignored.
func FromSeq[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := newSet(avltree.OrderedConfig[T]())
	s.insertSeq(seq)
	return s
}

// FromSeqFunc creates a set ordered by compare from a sequence.
func FromSeqFunc[T any](compare func(a, b T) int, seq iter.Seq[T]) (*Set[T], error) {
	s, err := NewFunc(compare)
	if err != nil {
		return nil, err
	}
	s.insertSeq(seq)
	return s, nil
}

// FromRange creates a set holding the elements in [first, last) of another set.
// The new set uses the ordering of the source set.
//
// Both iterators have to belong to the same set. If last does not follow
// first, the range extends to the end of the source set.
func FromRange[T any](first, last Iterator[T]) (*Set[T], error) {
	if first.tree == nil || first.tree != last.tree {
		return nil, fmt.Errorf("%w: iterators do not belong to the same set", ErrIllegalArguments)
	}
	s := newSet(first.tree.Config())
	for it := first; it != last && !it.IsEnd(); it.Next() {
		s.Insert(it.Key())
	}
	return s, nil
}

func newSet[T any](cfg avltree.Config[T]) *Set[T] {
	tree, err := avltree.New(cfg)
	assert(err == nil, "ordset: cannot create tree")
	return &Set[T]{tree: tree}
}

func (s *Set[T]) insertAll(elems []T) {
	for _, e := range elems {
		s.Insert(e)
	}
}

func (s *Set[T]) insertSeq(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for e := range seq {
		s.Insert(e)
	}
}

// Clone returns an independent copy of s holding the same elements with the
// same ordering.
func (s *Set[T]) Clone() *Set[T] {
	if s == nil || s.tree == nil {
		return &Set[T]{}
	}
	c := newSet(s.tree.Config())
	s.tree.ForEach(func(e T) bool {
		c.Insert(e)
		return true
	})
	return c
}

// Assign replaces the contents of s with copies of the elements of src.
// s takes over the ordering of src. Assigning a set to itself does nothing.
func (s *Set[T]) Assign(src *Set[T]) {
	assert(s != nil, "ordset: Assign called on nil set")
	if s == src {
		return
	}
	if src == nil || src.tree == nil {
		s.Clear()
		return
	}
	*s = *src.Clone()
}

// Clear removes all elements from s.
func (s *Set[T]) Clear() {
	if s == nil || s.tree == nil {
		return
	}
	s.tree.Clear()
	s.size = 0
}

// Len returns the number of elements in s.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether s has no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Insert adds e to s. It reports whether e has been added, i.e. false if an
// equivalent element was already present.
func (s *Set[T]) Insert(e T) bool {
	assert(s != nil && s.tree != nil, "ordset: Insert on uninitialized set; use New or NewFunc")
	if !s.tree.Insert(e) {
		return false
	}
	s.size++
	return true
}

// Erase removes the element equivalent to e from s. It reports whether an
// element has been removed.
//
// Iterators pointing to the removed element become invalid.
func (s *Set[T]) Erase(e T) bool {
	if s == nil || s.tree == nil {
		return false
	}
	if !s.tree.Erase(e) {
		return false
	}
	s.size--
	return true
}

// Contains reports whether s holds an element equivalent to e.
func (s *Set[T]) Contains(e T) bool {
	return s.treeOrNil().Find(e) != nil
}

// Find returns an iterator to the element equivalent to e, or End() if there
// is none.
func (s *Set[T]) Find(e T) Iterator[T] {
	return s.at(s.treeOrNil().Find(e))
}

// LowerBound returns an iterator to the smallest element not less than e, or
// End() if every element is less than e.
func (s *Set[T]) LowerBound(e T) Iterator[T] {
	return s.at(s.treeOrNil().LowerBound(e))
}

// UpperBound returns an iterator to the smallest element greater than e, or
// End() if no element is greater than e.
func (s *Set[T]) UpperBound(e T) Iterator[T] {
	return s.at(s.treeOrNil().UpperBound(e))
}

// Min returns the smallest element of s. The boolean result is false for an
// empty set.
func (s *Set[T]) Min() (T, bool) {
	return keyOf(s.treeOrNil().Min())
}

// Max returns the largest element of s. The boolean result is false for an
// empty set.
func (s *Set[T]) Max() (T, bool) {
	return keyOf(s.treeOrNil().Max())
}

// Root returns the root node of the tree backing s, or nil for an empty set.
// It is meant for inspection and debugging; nodes cannot be modified through
// it.
func (s *Set[T]) Root() *avltree.Node[T] {
	return s.treeOrNil().Root()
}

// Check validates the internal structure of s. It returns an error wrapping
// avltree.ErrInvariant if the backing tree is inconsistent or if the element
// count does not match the number of tree nodes.
func (s *Set[T]) Check() error {
	if s == nil || s.tree == nil {
		if s.Len() != 0 {
			return fmt.Errorf("%w: uninitialized set has size %d", avltree.ErrInvariant, s.Len())
		}
		return nil
	}
	count, err := s.tree.Check()
	if err != nil {
		return err
	}
	if count != s.size {
		return fmt.Errorf("%w: size counter is %d, tree holds %d nodes",
			avltree.ErrInvariant, s.size, count)
	}
	return nil
}

// treeOrNil returns the backing tree; avltree.Tree methods treat a nil tree as
// empty.
func (s *Set[T]) treeOrNil() *avltree.Tree[T] {
	if s == nil {
		return nil
	}
	return s.tree
}

func keyOf[T any](n *avltree.Node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Key(), true
}
