package avltree

import "fmt"

// Check validates structural tree invariants and returns the number of nodes.
//
// It verifies BST ordering, uniqueness, height balance, the height recurrence,
// the cached subtree maxima and the consistency of parent links. Check visits
// every node and is meant for tests and debugging.
func (t *Tree[T]) Check() (count int, err error) {
	if t == nil {
		return 0, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		return 0, nil
	}
	if t.root.anc != nil {
		return 0, fmt.Errorf("%w: root has a parent link", ErrInvariant)
	}
	count, _, _, err = t.checkNode(t.root, nil, nil)
	return count, err
}

// checkNode validates the subtree rooted at n. Keys in the subtree must lie
// strictly between lo and hi, where a nil bound is unbounded.
func (t *Tree[T]) checkNode(n, lo, hi *Node[T]) (count int, height uint8, maxKey T, err error) {
	if lo != nil && t.cfg.Compare(lo.key, n.key) >= 0 {
		return 0, 0, maxKey, fmt.Errorf("%w: key %v not greater than %v", ErrInvariant, n.key, lo.key)
	}
	if hi != nil && t.cfg.Compare(n.key, hi.key) >= 0 {
		return 0, 0, maxKey, fmt.Errorf("%w: key %v not less than %v", ErrInvariant, n.key, hi.key)
	}
	count, maxKey = 1, n.key
	var hl, hr uint8
	if n.left != nil {
		if n.left.anc != n {
			return 0, 0, maxKey, fmt.Errorf("%w: left child of %v has wrong parent", ErrInvariant, n.key)
		}
		c, h, _, e := t.checkNode(n.left, lo, n)
		if e != nil {
			return 0, 0, maxKey, e
		}
		count, hl = count+c, h
	}
	if n.right != nil {
		if n.right.anc != n {
			return 0, 0, maxKey, fmt.Errorf("%w: right child of %v has wrong parent", ErrInvariant, n.key)
		}
		c, h, m, e := t.checkNode(n.right, n, hi)
		if e != nil {
			return 0, 0, maxKey, e
		}
		count, hr, maxKey = count+c, h, m
	}
	if d := int(hr) - int(hl); d < -1 || d > 1 {
		return 0, 0, maxKey, fmt.Errorf("%w: node %v has balance factor %d", ErrInvariant, n.key, d)
	}
	height = max(hl, hr) + 1
	if n.height != height {
		return 0, 0, maxKey, fmt.Errorf("%w: node %v has height %d, expected %d",
			ErrInvariant, n.key, n.height, height)
	}
	if t.cfg.Compare(n.max, maxKey) != 0 {
		return 0, 0, maxKey, fmt.Errorf("%w: node %v caches max %v, expected %v",
			ErrInvariant, n.key, n.max, maxKey)
	}
	return count, height, maxKey, nil
}
