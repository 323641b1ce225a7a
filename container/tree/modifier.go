package tree

import "golang.org/x/exp/constraints"

// modifier is a pair of algorithms used to insert
// and remove nodes from the tree
type modifier[K constraints.Ordered] interface {
	// Insert a node into the tree
	Insert(t *Tree[K], n *Node[K])

	// Delete a node from the tree
	Delete(t *Tree[K], n *Node[K])
}
