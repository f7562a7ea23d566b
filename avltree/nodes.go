package avltree

// Node is a tree node holding one key.
//
// Nodes are owned by their tree. Clients receive nodes for reading only; all
// fields are private and the exported methods do not allow modification.
type Node[T any] struct {
	key T
	// max is the largest key in the subtree rooted here. With BST ordering this
	// is right.max if a right child exists, key otherwise.
	max T
	// height of the subtree; a leaf has height 1, an absent subtree 0.
	height uint8
	left   *Node[T]
	right  *Node[T]
	// anc is the structural parent, nil for the root. Not an ownership edge.
	anc *Node[T]
}

func newNode[T any](key T) *Node[T] {
	return &Node[T]{key: key, max: key, height: 1}
}

// Key returns the key stored in n.
func (n *Node[T]) Key() T { return n.key }

// MaxValue returns the largest key in the subtree rooted at n.
func (n *Node[T]) MaxValue() T { return n.max }

// Height returns the height of the subtree rooted at n. A nil node has
// height 0.
func (n *Node[T]) Height() int { return int(heightOf(n)) }

// Left returns the left child of n, or nil.
func (n *Node[T]) Left() *Node[T] { return n.left }

// Right returns the right child of n, or nil.
func (n *Node[T]) Right() *Node[T] { return n.right }

// Parent returns the structural parent of n, or nil for the root.
func (n *Node[T]) Parent() *Node[T] { return n.anc }

// BalanceFactor returns height(right) - height(left).
func (n *Node[T]) BalanceFactor() int {
	return int(heightOf(n.right)) - int(heightOf(n.left))
}

func heightOf[T any](n *Node[T]) uint8 {
	if n == nil {
		return 0
	}
	return n.height
}

// update re-derives height and cached maximum of n from its children and
// points the children's parent links at n. The parent link of n itself is
// cleared; whoever attaches n will set it on its own update.
func update[T any](n *Node[T]) {
	hl, hr := heightOf(n.left), heightOf(n.right)
	n.height = max(hl, hr) + 1
	n.max = n.key
	if n.right != nil {
		n.max = n.right.max
	}
	n.anc = nil
	if n.left != nil {
		n.left.anc = n
	}
	if n.right != nil {
		n.right.anc = n
	}
}

// detach clears all links of a node removed from the tree.
func detach[T any](n *Node[T]) {
	n.left, n.right, n.anc = nil, nil, nil
	n.height = 0
}
