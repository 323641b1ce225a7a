package tree

import "golang.org/x/exp/constraints"

const sentinelValue = 0xa0000000

func isNotSentinel[K constraints.Ordered](n *Node[K]) bool {
	return n.metadata&sentinelValue != sentinelValue
}

func isSentinel[K constraints.Ordered](n *Node[K]) bool {
	return n.metadata&sentinelValue == sentinelValue
}

func newSentinelNode[K constraints.Ordered]() *Node[K] {
	return &Node[K]{metadata: sentinelValue}
}

func nilIfSentinel[K constraints.Ordered](n *Node[K]) *Node[K] {
	if n == nil || isSentinel(n) {
		return nil
	}

	return n
}

// Node of a tree. Leaves point to sentinel nodes instead of
// nil so that the balancing algorithms can read and write the
// metadata of absent children
type Node[K constraints.Ordered] struct {
	Key K

	metadata uint
	left     *Node[K]
	right    *Node[K]
	parent   *Node[K]
}

// Left returns the node's left child
func (n *Node[K]) Left() *Node[K] {
	return nilIfSentinel(n.left)
}

// Right returns the node's right child
func (n *Node[K]) Right() *Node[K] {
	return nilIfSentinel(n.right)
}

// Parent returns the node's parent
func (n *Node[K]) Parent() *Node[K] {
	return nilIfSentinel(n.parent)
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the tree
// is empty
func (n *Node[K]) Min() *Node[K] {
	curr := n

	for isNotSentinel(curr) && isNotSentinel(curr.left) {
		curr = curr.left
	}

	return nilIfSentinel(curr)
}

// Max returns the node in the subtree of the
// highest order. It returns nil if tree
// is empty
func (n *Node[K]) Max() *Node[K] {
	curr := n

	for isNotSentinel(curr) && isNotSentinel(curr.right) {
		curr = curr.right
	}

	return nilIfSentinel(curr)
}

// Contains returns true if the subtree contains at
// least one node with key k
func (n *Node[K]) Contains(k K) bool {
	return n.Find(k) != nil
}

// Find returns the first node in the subtree that
// holds a key equal to the one provided
func (n *Node[K]) Find(k K) *Node[K] {
	for curr := n; isNotSentinel(curr); {
		switch compare(k, curr.Key) {
		case -1:
			curr = curr.left
		case 0:
			return curr
		default:
			curr = curr.right
		}
	}

	return nil
}

// Count returns the number of occurrences of k
// in the current subtree. Rotations may leave equal keys
// on both sides of a node, so both branches are visited
// whenever k matches
func (n *Node[K]) Count(k K) int {
	if isSentinel(n) {
		return 0
	}

	switch compare(k, n.Key) {
	case -1:
		return n.left.Count(k)
	case 1:
		return n.right.Count(k)
	default:
		return 1 + n.left.Count(k) + n.right.Count(k)
	}
}

// Successor finds the successor of the current
// node in its tree. That is, the node in the tree
// of the lowest order that is strictly greater than
// the current node.
func (n *Node[K]) Successor() *Node[K] {
	if isNotSentinel(n.right) {
		return n.right.Min()
	}

	curr := n
	prev := n.parent
	for isNotSentinel(prev) && curr == prev.right {
		curr = prev
		prev = prev.parent
	}

	return nilIfSentinel(prev)
}

// InOrderWalk implements an in order walk
// on the subtree using Morris traversal.
func (n *Node[K]) InOrderWalk(fn func(*Node[K])) {
	var prev *Node[K]

	for curr := n; curr != nil; {
		if curr.left == nil {
			if isNotSentinel(curr) {
				fn(curr)
			}

			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				// thread prev.right to curr so the walk can come back
				// once the left subtree has been visited
				prev.right = curr
				curr = curr.left
			} else {
				prev.right = nil
				if isNotSentinel(curr) {
					fn(curr)
				}
				curr = curr.right
			}
		}
	}
}

// Tree represents a binary search tree whose shape is
// maintained by a modifier
type Tree[K constraints.Ordered] struct {
	root *Node[K]
	mod  modifier[K]
	len  int
}

// Len returns the number of nodes in the tree
func (t *Tree[K]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[K]) Empty() bool {
	return isSentinel(t.root)
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[K]) Root() *Node[K] {
	return nilIfSentinel(t.root)
}

// Min returns the node in the tree with the
// lowest key. It returns nil if the tree
// is empty
func (t *Tree[K]) Min() *Node[K] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest key. It returns nil if tree
// is empty
func (t *Tree[K]) Max() *Node[K] {
	return t.root.Max()
}

// Contains returns true if the tree contains at
// least one node with key k
func (t *Tree[K]) Contains(k K) bool {
	return t.root.Find(k) != nil
}

// Count returns the number of occurrences of k
// in the tree
func (t *Tree[K]) Count(k K) int {
	return t.root.Count(k)
}

// Find returns the first node in the tree that
// holds a key equal to the one provided
func (t *Tree[K]) Find(k K) *Node[K] {
	return t.root.Find(k)
}

// InOrderWalk implements an in order walk
// on the tree using Morris traversal.
func (t *Tree[K]) InOrderWalk(fn func(*Node[K])) {
	t.root.InOrderWalk(fn)
}

// Insert a key into the tree
func (t *Tree[K]) Insert(k K) {
	t.mod.Insert(t, &Node[K]{Key: k})
	t.len++
}

// Delete the first node on the tree that has a key
// equal to k
func (t *Tree[K]) Delete(k K) bool {
	n := t.Find(k)
	if n == nil {
		return false
	}

	t.mod.Delete(t, n)
	t.len--
	return true
}
