package container

import "golang.org/x/exp/constraints"

// Set is an ordered collection of keys that admits duplicates.
// Both the scapegoat tree and the trees of package tree
// implement it
type Set[K constraints.Ordered] interface {
	// Insert adds one occurrence of k
	Insert(k K)

	// Delete removes one occurrence of k and returns whether
	// there was any
	Delete(k K) bool

	// Contains returns true if at least one occurrence of k
	// is in the set
	Contains(k K) bool

	// Len returns the number of keys in the set
	Len() int
}
