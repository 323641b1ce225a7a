package bench

import (
	"github.com/eaugeas/octopus/container"
	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/eaugeas/octopus/container/tree"
	"golang.org/x/exp/slices"
)

// Verify checks that set holds exactly keys. Its keys are read
// in order and compared with a sorted copy of keys
func Verify(kind Kind, set container.Set[int], keys []int) error {
	var actual []int

	switch s := set.(type) {
	case *scapegoat.Tree[int]:
		if err := s.Valid(); err != nil {
			return err
		}
		actual = s.Keys()

	case *tree.Tree[int]:
		actual = make([]int, 0, s.Len())
		s.InOrderWalk(func(n *tree.Node[int]) {
			actual = append(actual, n.Key)
		})

		// the walk borrows child slots, so the parent links followed
		// by Successor must still agree with it afterwards
		i := 0
		for n := s.Min(); n != nil; n = n.Successor() {
			if i >= len(actual) || n.Key != actual[i] {
				return ErrCorruptSet{Kind: kind, Index: i}
			}
			i++
		}

		if i != len(actual) {
			return ErrCorruptSet{Kind: kind, Index: i}
		}

	default:
		for _, k := range keys {
			if !set.Contains(k) {
				return ErrCorruptSet{Kind: kind}
			}
		}
		if set.Len() != len(keys) {
			return ErrCorruptSet{Kind: kind, Index: min(set.Len(), len(keys))}
		}
		return nil
	}

	expected := slices.Clone(keys)
	slices.Sort(expected)

	for i := 0; i < len(expected) && i < len(actual); i++ {
		if expected[i] != actual[i] {
			return ErrCorruptSet{Kind: kind, Index: i}
		}
	}

	if len(expected) != len(actual) {
		return ErrCorruptSet{Kind: kind, Index: min(len(expected), len(actual))}
	}

	return nil
}
