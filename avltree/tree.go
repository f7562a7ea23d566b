package avltree

import (
	"fmt"
)

// Tree is an AVL tree over keys of type T, augmented with cached subtree
// maxima and parent links.
//
// A Tree does not allow duplicate keys: inserting a key equivalent to a stored
// one leaves the tree untouched. Trees are not safe for concurrent use.
type Tree[T any] struct {
	cfg  Config[T]
	root *Node[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[T]{cfg: cfg}, nil
}

// Config returns a copy of the tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Height returns the tree height, where 0 means empty and 1 means a single
// leaf root.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return int(heightOf(t.root))
}

// Min returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[T]) Min() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return findMin(t.root)
}

// Max returns the node with the largest key, or nil for an empty tree.
func (t *Tree[T]) Max() *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	return findMax(t.root)
}

// Insert adds key to the tree. If an equivalent key is already present, the
// tree is left unchanged (the stored key is not replaced) and Insert returns
// false.
func (t *Tree[T]) Insert(key T) (added bool) {
	assert(t != nil, "Insert called on nil tree")
	t.root, added = t.insert(t.root, key)
	t.root.anc = nil
	return added
}

// Erase removes the node holding a key equivalent to key. It returns false if
// no such node exists.
//
// Nodes other than the erased one keep their identity, although rotations may
// move them to different positions in the tree.
func (t *Tree[T]) Erase(key T) (removed bool) {
	assert(t != nil, "Erase called on nil tree")
	t.root, removed = t.remove(t.root, key)
	if t.root != nil {
		t.root.anc = nil
	}
	return removed
}

// Clear drops all nodes of the tree.
func (t *Tree[T]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
}

// --- Recursive structural operations ---------------------------------------

// insert adds key to subtree n and returns the new subtree root.
func (t *Tree[T]) insert(n *Node[T], key T) (*Node[T], bool) {
	if n == nil {
		return newNode(key), true
	}
	var added bool
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		n.left, added = t.insert(n.left, key)
	case c > 0:
		n.right, added = t.insert(n.right, key)
	default:
		return n, false
	}
	if !added {
		return n, false
	}
	return t.balance(n), true
}

// remove erases key from subtree n and returns the new subtree root.
//
// A node with a right subtree is replaced by its in-order successor, which is
// unlinked from the right subtree first. This always promotes the successor,
// independent of which subtree is taller.
func (t *Tree[T]) remove(n *Node[T], key T) (*Node[T], bool) {
	if n == nil {
		return nil, false
	}
	var removed bool
	switch c := t.cfg.Compare(key, n.key); {
	case c < 0:
		n.left, removed = t.remove(n.left, key)
	case c > 0:
		n.right, removed = t.remove(n.right, key)
	default:
		l, r := n.left, n.right
		detach(n)
		if r == nil {
			return l, true
		}
		succ := findMin(r)
		tracer().Debugf("avltree: erase splices successor %v into place of %v", succ.key, key)
		succ.right = t.removeMin(r)
		succ.left = l
		return t.balance(succ), true
	}
	if !removed {
		return n, false
	}
	return t.balance(n), true
}

// removeMin unlinks the leftmost node of subtree n and returns the new
// subtree root. The unlinked node is left for the caller to reuse.
func (t *Tree[T]) removeMin(n *Node[T]) *Node[T] {
	if n.left == nil {
		return n.right
	}
	n.left = t.removeMin(n.left)
	return t.balance(n)
}

// balance re-derives the fields of n and restores the height balance of the
// subtree rooted at n, returning the (possibly new) subtree root.
//
// Children of n are required to be balanced already and to differ in height
// by at most 2.
func (t *Tree[T]) balance(n *Node[T]) *Node[T] {
	update(n)
	switch bf := n.BalanceFactor(); bf {
	case 2:
		if n.right.BalanceFactor() < 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case -2:
		if n.left.BalanceFactor() > 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	default:
		assert(bf >= -1 && bf <= 1, fmt.Sprintf("balance factor %d out of range", bf))
	}
	return n
}

// rotateRight lifts the left child of n into n's place.
func rotateRight[T any](n *Node[T]) *Node[T] {
	son := n.left
	n.left = son.right
	son.right = n
	update(n)
	update(son)
	return son
}

// rotateLeft lifts the right child of n into n's place.
func rotateLeft[T any](n *Node[T]) *Node[T] {
	son := n.right
	n.right = son.left
	son.left = n
	update(n)
	update(son)
	return son
}

func findMin[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func findMax[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}
