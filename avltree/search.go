package avltree

// Find returns the node holding a key equivalent to key, or nil.
func (t *Tree[T]) Find(key T) *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	n := t.root
	for n != nil {
		switch c := t.cfg.Compare(key, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// LowerBound returns the node with the smallest key not less than key, or nil
// if every stored key is less than key.
//
// The search uses the cached subtree maxima: if the maximum of a left subtree
// is less than key, nothing in that subtree qualifies and it is skipped as a
// whole.
func (t *Tree[T]) LowerBound(key T) *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	less := func(a, b T) bool { return t.cfg.Compare(a, b) < 0 }
	n := t.root
	for n != nil {
		if less(n.key, key) {
			n = n.right
			continue
		}
		// key <= n.key
		if n.left == nil || less(n.left.max, key) {
			return n
		}
		n = n.left
	}
	return nil
}

// UpperBound returns the node with the smallest key greater than key, or nil
// if no stored key is greater than key.
func (t *Tree[T]) UpperBound(key T) *Node[T] {
	if t.IsEmpty() {
		return nil
	}
	n := t.root
	for n != nil {
		if t.cfg.Compare(n.key, key) <= 0 {
			n = n.right
			continue
		}
		// key < n.key
		if n.left == nil || t.cfg.Compare(n.left.max, key) <= 0 {
			return n
		}
		n = n.left
	}
	return nil
}
