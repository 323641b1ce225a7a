package main

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/eaugeas/octopus/bench"
	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/xlab/treeprint"
)

// render draws t with one branch per node. Children are tagged
// with the side of their parent they hang from
func render(t *scapegoat.Tree[int]) string {
	if t.Empty() {
		return treeprint.NewWithRoot("(empty)").String()
	}

	root := treeprint.NewWithRoot(strconv.Itoa(t.Root().Key))
	addChildren(root, t.Root())
	return root.String()
}

func addChildren(branch treeprint.Tree, n *scapegoat.Node[int]) {
	if left := n.Left(); left != nil {
		addChildren(branch.AddMetaBranch("L", strconv.Itoa(left.Key)), left)
	}

	if right := n.Right(); right != nil {
		addChildren(branch.AddMetaBranch("R", strconv.Itoa(right.Key)), right)
	}
}

// sample builds a scapegoat tree from n random keys
func sample(n int, alpha float64, seed int64) (*scapegoat.Tree[int], error) {
	t, err := scapegoat.New[int](alpha)
	if err != nil {
		return nil, err
	}

	for _, k := range bench.GenerateKeys(rand.New(rand.NewSource(seed)), n) {
		t.Insert(k)
	}

	return t, nil
}

func describe(t *scapegoat.Tree[int]) string {
	stats := t.Stats()
	return fmt.Sprintf("keys=%d height=%d alpha=%v partial_rebuilds=%d rebuilt_nodes=%d",
		t.Len(), t.Height(), t.Alpha(), stats.PartialRebuilds, stats.RebuiltNodes)
}
