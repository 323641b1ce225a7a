package tree

import "golang.org/x/exp/constraints"

// unbalanced is a pair of algorithms that insert
// and delete nodes from the tree without applying any
// balancing strategy
type unbalanced[K constraints.Ordered] struct{}

// Insert the node into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. Equal
// keys descend to the right
func (unbalanced[K]) Insert(t *Tree[K], n *Node[K]) {
	var parent *Node[K]
	var isLeft bool

	for curr := t.root; isNotSentinel(curr); {
		parent = curr
		isLeft = n.Key < curr.Key
		if isLeft {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	switch {
	case parent == nil:
		t.root = n
		n.parent = newSentinelNode[K]()
	case isLeft:
		n.parent = parent
		parent.left = n
	default:
		n.parent = parent
		parent.right = n
	}

	n.left = newSentinelNode[K]()
	n.left.parent = n
	n.right = newSentinelNode[K]()
	n.right.parent = n
}

// Delete the node from the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. A node
// with two children is replaced by its successor
func (m unbalanced[K]) Delete(t *Tree[K], n *Node[K]) {
	switch {
	case isSentinel(n.left):
		m.Transplant(t, n, n.right)
	case isSentinel(n.right):
		m.Transplant(t, n, n.left)
	default:
		min := n.Right().Min()
		if min.parent != n {
			m.Transplant(t, min, min.right)
			min.right = n.right
			min.right.parent = min
		}

		m.Transplant(t, n, min)
		min.left = n.left
		min.left.parent = min
	}
}

// Transplant replaces the subtree rooted at u with
// the subtree rooted at v
func (unbalanced[K]) Transplant(t *Tree[K], u *Node[K], v *Node[K]) {
	switch {
	case isSentinel(u.parent):
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}

	v.parent = u.parent
}

// NewUnbalancedTree creates a tree that applies no balancing
// at all. Its shape depends exclusively on the order of the
// insert and delete operations performed on it
func NewUnbalancedTree[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{root: newSentinelNode[K](), mod: unbalanced[K]{}}
}
