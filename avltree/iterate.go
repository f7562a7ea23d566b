package avltree

// ForEach walks the keys in ascending order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEach(fn func(key T) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	for n := findMin(t.root); n != nil; n = Next(n) {
		if !fn(n.key) {
			return
		}
	}
}

// ForEachNode walks the nodes in post-order, children before their parent.
// The callback receives the depth of each node, 0 for the root.
//
// Iteration stops early if fn returns false.
func (t *Tree[T]) ForEachNode(fn func(n *Node[T], depth int) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, 0, fn)
}

func (t *Tree[T]) forEachNode(n *Node[T], depth int, fn func(*Node[T], int) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if n.left != nil && !t.forEachNode(n.left, depth+1, fn) {
		return false
	}
	if n.right != nil && !t.forEachNode(n.right, depth+1, fn) {
		return false
	}
	return fn(n, depth)
}
