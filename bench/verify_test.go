package bench

import (
	"testing"

	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/eaugeas/octopus/container/tree"
	"github.com/stretchr/testify/assert"
)

// mapSet is a set that cannot list its keys in order
type mapSet map[int]int

func (s mapSet) Insert(k int) { s[k]++ }

func (s mapSet) Delete(k int) bool {
	if s[k] == 0 {
		return false
	}
	s[k]--
	return true
}

func (s mapSet) Contains(k int) bool { return s[k] > 0 }

func (s mapSet) Len() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}

var verifyKeys = []int{5, 3, 8, 3, 1, 9, 5}

func TestVerifyScapegoat(t *testing.T) {
	set := scapegoat.MustNew[int](0.5)
	for _, k := range verifyKeys {
		set.Insert(k)
	}

	assert.Nil(t, Verify(KindScapegoat, set, verifyKeys))

	set.Delete(3)
	assert.Equal(t, ErrCorruptSet{Kind: KindScapegoat, Index: 2}, Verify(KindScapegoat, set, verifyKeys))
}

func TestVerifyRedBlack(t *testing.T) {
	set := tree.NewRedBlackTree[int]()
	for _, k := range verifyKeys {
		set.Insert(k)
	}

	assert.Nil(t, Verify(KindRedBlack, set, verifyKeys))
	// walking twice proves the first walk restored every child slot
	assert.Nil(t, Verify(KindRedBlack, set, verifyKeys))

	set.Insert(10)
	assert.Equal(t, ErrCorruptSet{Kind: KindRedBlack, Index: 7}, Verify(KindRedBlack, set, verifyKeys))
}

func TestVerifyUnbalanced(t *testing.T) {
	set := tree.NewUnbalancedTree[int]()
	for _, k := range verifyKeys {
		set.Insert(k)
	}

	assert.Nil(t, Verify(KindUnbalanced, set, verifyKeys))
	assert.Equal(t, ErrCorruptSet{Kind: KindUnbalanced, Index: 0}, Verify(KindUnbalanced, set, []int{0, 1, 3, 3, 5, 5, 8}))
}

func TestVerifyOtherSet(t *testing.T) {
	set := mapSet{}
	for _, k := range verifyKeys {
		set.Insert(k)
	}

	assert.Nil(t, Verify("map", set, verifyKeys))
	assert.Equal(t, ErrCorruptSet{Kind: "map"}, Verify("map", set, []int{4}))
	assert.Equal(t, ErrCorruptSet{Kind: "map", Index: 2}, Verify("map", set, []int{1, 3}))
}
