package scapegoat

import "golang.org/x/exp/constraints"

// Node of a scapegoat tree. A node owns its two children and
// keeps no reference to its parent
type Node[K constraints.Ordered] struct {
	Key K

	left  *Node[K]
	right *Node[K]
}

// Left returns the node's left child
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns the node's right child
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// size counts the nodes of the subtree rooted at n. Sizes
// are not cached anywhere so this walks the whole subtree
func size[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return 0
	}

	return 1 + size(n.left) + size(n.right)
}

func height[K constraints.Ordered](n *Node[K]) int {
	if n == nil {
		return -1
	}

	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// flatten appends the nodes of the subtree rooted at n to
// nodes in order
func flatten[K constraints.Ordered](n *Node[K], nodes []*Node[K]) []*Node[K] {
	if n == nil {
		return nodes
	}

	nodes = flatten(n.left, nodes)
	nodes = append(nodes, n)
	return flatten(n.right, nodes)
}

// build links the ordered nodes into a perfectly balanced subtree
// and returns its root. The lower middle of every range becomes
// the subroot, so the left half never holds more nodes than the
// right one
func build[K constraints.Ordered](nodes []*Node[K]) *Node[K] {
	if len(nodes) == 0 {
		return nil
	}

	mid := (len(nodes) - 1) / 2
	subroot := nodes[mid]
	subroot.left = build(nodes[:mid])
	subroot.right = build(nodes[mid+1:])
	return subroot
}

// rebuild reshapes the subtree rooted at n into a perfectly
// balanced one and returns the new subroot together with the
// number of nodes that were relinked
func rebuild[K constraints.Ordered](n *Node[K]) (*Node[K], int) {
	nodes := flatten(n, nil)
	return build(nodes), len(nodes)
}

func walk[K constraints.Ordered](n *Node[K], fn func(*Node[K])) {
	if n == nil {
		return
	}

	walk(n.left, fn)
	fn(n)
	walk(n.right, fn)
}

func count[K constraints.Ordered](n *Node[K], k K) int {
	if n == nil {
		return 0
	}

	switch {
	case k < n.Key:
		return count(n.left, k)
	case k > n.Key:
		return count(n.right, k)
	default:
		// a predecessor swap during deletion may leave a key equal to
		// its ancestor on the left side, so both branches are visited
		return 1 + count(n.left, k) + count(n.right, k)
	}
}
