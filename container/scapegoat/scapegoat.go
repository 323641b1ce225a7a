// Package scapegoat implements a scapegoat tree, a binary search tree
// that stores no balance information in its nodes. Imbalance is detected
// when an insertion lands too deep and is repaired by rebuilding the
// subtree of an unbalanced ancestor into a perfectly balanced shape.
// Deletions trigger a rebuild of the whole tree once the number of keys
// falls far enough below the largest size seen since the last one.
package scapegoat

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// MinAlpha is the smallest balance parameter accepted by New
	MinAlpha = 0.5

	// MaxAlpha is the exclusive upper bound of the balance parameter
	MaxAlpha = 1.0

	// DefaultAlpha is used by NewWithOpts when no alpha is given
	DefaultAlpha = 0.7

	// thresholdSlack absorbs the rounding of log(size)/log(1/alpha)
	// when the exact quotient is an integer
	thresholdSlack = 1e-9
)

type direction uint8

const (
	dirNone direction = iota
	dirLeft
	dirRight
)

// step is an entry of the ancestor trail recorded while descending
// to insert a key: the node visited and the side taken from it
type step[K constraints.Ordered] struct {
	node *Node[K]
	dir  direction
}

// Stats counts the repairs performed by a tree since it was created
type Stats struct {
	// PartialRebuilds is the number of scapegoat subtrees rebuilt
	// after an insertion
	PartialRebuilds int

	// GlobalRebuilds is the number of times the whole tree was rebuilt
	// after a deletion
	GlobalRebuilds int

	// RebuiltNodes is the total number of nodes relinked by both
	// kinds of rebuild
	RebuiltNodes int
}

// Tree is a scapegoat tree holding keys of type K. Duplicate keys
// are allowed and sort to the right of their equals. A Tree is not
// safe for concurrent use
type Tree[K constraints.Ordered] struct {
	alpha       float64
	logInvAlpha float64

	root    *Node[K]
	size    int
	maxSize int

	// trail is reused across insertions to record the ancestors
	// of the new leaf
	trail []step[K]
	stats Stats
}

// New creates an empty tree with balance parameter alpha. Smaller
// values keep the tree closer to perfect balance at the cost of more
// frequent rebuilds. It fails with ErrInvalidAlpha if alpha is
// outside of [MinAlpha, MaxAlpha)
func New[K constraints.Ordered](alpha float64) (*Tree[K], error) {
	if !(alpha >= MinAlpha && alpha < MaxAlpha) {
		return nil, ErrInvalidAlpha{Alpha: alpha}
	}

	return &Tree[K]{
		alpha:       alpha,
		logInvAlpha: math.Log(1 / alpha),
	}, nil
}

// Opts are the options to configure a Tree
type Opts struct {
	// Alpha is the balance parameter of the tree. The zero value
	// selects DefaultAlpha
	Alpha float64

	// Capacity preallocates the trail used by insertions for trees
	// expected to grow to about that many keys
	Capacity int
}

// NewWithOpts creates an empty tree configured with opts
func NewWithOpts[K constraints.Ordered](opts Opts) (*Tree[K], error) {
	if opts.Alpha == 0 {
		opts.Alpha = DefaultAlpha
	}

	t, err := New[K](opts.Alpha)
	if err != nil {
		return nil, err
	}

	if opts.Capacity > 1 {
		depth := int(math.Log(float64(opts.Capacity))/t.logInvAlpha) + 2
		t.trail = make([]step[K], 0, depth)
	}

	return t, nil
}

// MustNew is the same as New but it panics if alpha is invalid
func MustNew[K constraints.Ordered](alpha float64) *Tree[K] {
	t, err := New[K](alpha)
	if err != nil {
		panic(err)
	}

	return t
}

// Alpha returns the balance parameter of the tree
func (t *Tree[K]) Alpha() float64 {
	return t.alpha
}

// Len returns the number of keys in the tree
func (t *Tree[K]) Len() int {
	return t.size
}

// MaxLen returns the largest number of keys the tree has held
// since it was last rebuilt as a whole
func (t *Tree[K]) MaxLen() int {
	return t.maxSize
}

// Empty returns true if the tree has no keys
func (t *Tree[K]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns nil for an
// empty tree
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Stats returns the repair counters of the tree
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// Height returns the number of edges in the longest path from
// the root to a leaf. An empty tree has height -1
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Min returns the node with the lowest key or nil if the tree
// is empty
func (t *Tree[K]) Min() *Node[K] {
	curr := t.root
	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node with the highest key or nil if the tree
// is empty
func (t *Tree[K]) Max() *Node[K] {
	curr := t.root
	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Find returns the shallowest node holding key k, or nil if
// there is none
func (t *Tree[K]) Find(k K) *Node[K] {
	n, _, _ := t.search(k)
	return n
}

// Contains returns true if the tree holds at least one
// occurrence of k
func (t *Tree[K]) Contains(k K) bool {
	return t.Find(k) != nil
}

// Count returns the number of occurrences of k
func (t *Tree[K]) Count(k K) int {
	return count(t.root, k)
}

// InOrderWalk calls fn for every node of the tree in key order
func (t *Tree[K]) InOrderWalk(fn func(*Node[K])) {
	walk(t.root, fn)
}

// Keys returns all the keys of the tree in order
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	walk(t.root, func(n *Node[K]) {
		keys = append(keys, n.Key)
	})

	return keys
}

// Valid checks that an in order walk of the tree yields a
// non decreasing sequence of keys
func (t *Tree[K]) Valid() error {
	nodes := flatten(t.root, make([]*Node[K], 0, t.size))
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Key < nodes[i-1].Key {
			return ErrInvalidOrder{Index: i, Prev: nodes[i-1].Key, Next: nodes[i].Key}
		}
	}

	return nil
}

// search returns the shallowest node holding k together with its
// parent and the side of the parent it hangs from. The parent is
// nil when the node is the root or when k is not found
func (t *Tree[K]) search(k K) (*Node[K], *Node[K], direction) {
	var parent *Node[K]
	dir := dirNone

	for curr := t.root; curr != nil; {
		switch {
		case k == curr.Key:
			return curr, parent, dir
		case k < curr.Key:
			parent, dir, curr = curr, dirLeft, curr.left
		default:
			parent, dir, curr = curr, dirRight, curr.right
		}
	}

	return nil, nil, dirNone
}

// link replaces the child of parent on side dir with n. A nil
// parent stands for the root slot of the tree
func (t *Tree[K]) link(parent *Node[K], dir direction, n *Node[K]) {
	switch {
	case parent == nil:
		t.root = n
	case dir == dirLeft:
		parent.left = n
	case dir == dirRight:
		parent.right = n
	default:
		panic("unreachable statement")
	}
}

// isBalanced reports whether a node whose children hold c1 and c2
// nodes is alpha weight balanced
func (t *Tree[K]) isBalanced(c1, c2 int) bool {
	n := float64(1 + c1 + c2)
	return float64(c1) <= t.alpha*n && float64(c2) <= t.alpha*n
}

// depthThreshold is the deepest a node can be in an alpha weight
// balanced tree holding the current number of keys
func (t *Tree[K]) depthThreshold() int {
	return int(math.Floor(math.Log(float64(t.size))/t.logInvAlpha + thresholdSlack))
}

// Insert adds one occurrence of k to the tree. If the new node
// lands deeper than the tree size allows, the subtree of the
// closest unbalanced ancestor is rebuilt
func (t *Tree[K]) Insert(k K) {
	t.size++
	if t.size > t.maxSize {
		t.maxSize = t.size
	}

	leaf := &Node[K]{Key: k}
	if t.root == nil {
		t.root = leaf
		return
	}

	trail := t.trail[:0]
	for curr := t.root; curr != nil; {
		if k < curr.Key {
			trail = append(trail, step[K]{node: curr, dir: dirLeft})
			if curr.left == nil {
				curr.left = leaf
				break
			}
			curr = curr.left
		} else {
			trail = append(trail, step[K]{node: curr, dir: dirRight})
			if curr.right == nil {
				curr.right = leaf
				break
			}
			curr = curr.right
		}
	}

	if len(trail) > t.depthThreshold() {
		t.rebuildScapegoat(trail)
	}

	// the scratch trail must not pin nodes that get deleted later
	clear(trail)
	t.trail = trail[:0]
}

// rebuildScapegoat walks the trail from the new leaf up to the root
// looking for the first ancestor that is not alpha weight balanced
// and rebuilds its subtree
func (t *Tree[K]) rebuildScapegoat(trail []step[K]) {
	childSize := 1

	for i := len(trail) - 1; i >= 0; i-- {
		ancestor := trail[i].node

		var siblingSize int
		if trail[i].dir == dirLeft {
			siblingSize = size(ancestor.right)
		} else {
			siblingSize = size(ancestor.left)
		}

		if !t.isBalanced(childSize, siblingSize) {
			subroot, n := rebuild(ancestor)
			if i == 0 {
				t.link(nil, dirNone, subroot)
			} else {
				t.link(trail[i-1].node, trail[i-1].dir, subroot)
			}

			t.stats.PartialRebuilds++
			t.stats.RebuiltNodes += n
			return
		}

		childSize += siblingSize + 1
	}

	// a node deeper than the threshold always has an unbalanced
	// ancestor, so reaching this point means the tree is corrupt
	panic(fmt.Sprintf(
		"scapegoat: no unbalanced ancestor for a node at depth %d in a tree of %d keys with alpha %v",
		len(trail), t.size, t.alpha))
}

// Delete removes the shallowest occurrence of k from the tree
// and returns true, or returns false if k is not in the tree
func (t *Tree[K]) Delete(k K) bool {
	n, parent, dir := t.search(k)
	if n == nil {
		return false
	}

	switch {
	case n.left == nil && n.right == nil:
		t.link(parent, dir, nil)
	case n.left == nil:
		t.link(parent, dir, n.right)
	case n.right == nil:
		t.link(parent, dir, n.left)
	default:
		t.splicePredecessor(n)
	}

	t.size--
	if float64(t.size) < t.alpha*float64(t.maxSize) {
		t.rebuildAll()
	}

	return true
}

// splicePredecessor moves the key of the in order predecessor of n
// into n and unlinks the predecessor. n must have two children
func (t *Tree[K]) splicePredecessor(n *Node[K]) {
	parent, dir, pred := n, dirLeft, n.left
	for pred.right != nil {
		parent, dir, pred = pred, dirRight, pred.right
	}

	n.Key = pred.Key
	t.link(parent, dir, pred.left)
}

func (t *Tree[K]) rebuildAll() {
	root, n := rebuild(t.root)
	t.root = root
	t.maxSize = t.size
	t.stats.GlobalRebuilds++
	t.stats.RebuiltNodes += n
}
