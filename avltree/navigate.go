package avltree

// Next returns the in-order successor of n, or nil if n holds the largest key.
//
// Next needs no stack. If n has a right subtree, the successor is its leftmost
// node. Otherwise Next climbs parent links as long as it comes up from a right
// child; the first ancestor reached from a left child is the successor.
func Next[T any](n *Node[T]) *Node[T] {
	assert(n != nil, "Next called with nil node")
	if n.right != nil {
		return findMin(n.right)
	}
	child, p := n, n.anc
	for p != nil && p.right == child {
		child, p = p, p.anc
	}
	return p
}

// Prev returns the in-order predecessor of n, or nil if n holds the smallest
// key. It mirrors Next.
func Prev[T any](n *Node[T]) *Node[T] {
	assert(n != nil, "Prev called with nil node")
	if n.left != nil {
		return findMax(n.left)
	}
	child, p := n, n.anc
	for p != nil && p.left == child {
		child, p = p, p.anc
	}
	return p
}
