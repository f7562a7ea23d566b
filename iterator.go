package ordset

import (
	"iter"

	"github.com/npillmayer/ordset/avltree"
)

// Iterator is a bidirectional cursor over the elements of a set in ascending
// order.
//
// An iterator either points to an element or is at the end position, one past
// the largest element. The end iterator still remembers the largest element,
// so Prev on it moves to that element. Iterators are values; copies move
// independently. Two iterators are equal (==) if they belong to the same set
// and are at the same position.
//
// An iterator is invalidated if the element it points to is erased from the
// set. Using an invalidated iterator results in undefined behaviour.
type Iterator[T any] struct {
	tree  *avltree.Tree[T]
	node  *avltree.Node[T]
	isEnd bool
}

// Begin returns an iterator to the smallest element of s, or End() if s is
// empty.
func (s *Set[T]) Begin() Iterator[T] {
	return s.at(s.treeOrNil().Min())
}

// End returns the iterator positioned one past the largest element of s.
func (s *Set[T]) End() Iterator[T] {
	tree := s.treeOrNil()
	return Iterator[T]{tree: tree, node: tree.Max(), isEnd: true}
}

// at returns an iterator to n, or the end iterator if n is nil.
func (s *Set[T]) at(n *avltree.Node[T]) Iterator[T] {
	if n == nil {
		return s.End()
	}
	return Iterator[T]{tree: s.treeOrNil(), node: n}
}

// IsEnd reports whether it is at the end position.
func (it Iterator[T]) IsEnd() bool {
	return it.isEnd
}

// Key returns the element it points to.
//
// Calling Key on the end iterator is a precondition violation and panics;
// check IsEnd (or compare against End) first.
func (it Iterator[T]) Key() T {
	assert(!it.isEnd && it.node != nil, "ordset: Key called on end iterator")
	return it.node.Key()
}

// Next advances it to the next larger element. Advancing past the largest
// element moves it to the end position; advancing the end iterator does
// nothing.
func (it *Iterator[T]) Next() {
	if it.isEnd || it.node == nil {
		return
	}
	if next := avltree.Next(it.node); next != nil {
		it.node = next
		return
	}
	it.isEnd = true
}

// Prev moves it to the next smaller element. On the end iterator, Prev moves
// to the largest element.
//
// Calling Prev on the iterator to the smallest element, or on the end iterator
// of an empty set, is a precondition violation and panics.
func (it *Iterator[T]) Prev() {
	assert(it.node != nil, "ordset: Prev called on iterator of empty set")
	if it.isEnd {
		it.isEnd = false
		return
	}
	prev := avltree.Prev(it.node)
	assert(prev != nil, "ordset: Prev called on iterator to first element")
	it.node = prev
}

// Equal reports whether it and other are at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.isEnd == other.isEnd && it.node == other.node
}

// --- Range functions -------------------------------------------------------

// All returns an iterator over the elements of s in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.treeOrNil().ForEach(yield)
	}
}

// Backward returns an iterator over the elements of s in descending order.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.treeOrNil().Max(); n != nil; n = avltree.Prev(n) {
			if !yield(n.Key()) {
				return
			}
		}
	}
}

// From returns an iterator over the elements of s not less than e, in
// ascending order.
func (s *Set[T]) From(e T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.treeOrNil().LowerBound(e); n != nil; n = avltree.Next(n) {
			if !yield(n.Key()) {
				return
			}
		}
	}
}

// Keys collects the elements of s into a slice, in ascending order.
func (s *Set[T]) Keys() []T {
	keys := make([]T, 0, s.Len())
	for e := range s.All() {
		keys = append(keys, e)
	}
	return keys
}
