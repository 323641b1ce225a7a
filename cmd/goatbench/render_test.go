package main

import (
	"strings"
	"testing"

	"github.com/eaugeas/octopus/container/scapegoat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	tree := scapegoat.MustNew[int](0.5)
	assert.Equal(t, "(empty)", strings.TrimSpace(render(tree)))
}

func TestRenderBalanced(t *testing.T) {
	tree := scapegoat.MustNew[int](0.5)
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(k)
	}

	lines := strings.Split(strings.TrimSpace(render(tree)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "4", lines[0])

	// children are listed depth first, left before right
	order := []string{"[L]  2", "[L]  1", "[R]  3", "[R]  6", "[L]  5", "[R]  7"}
	for i, label := range order {
		assert.Contains(t, lines[i+1], label, "line %d", i+1)
	}
}

func TestRenderOneSided(t *testing.T) {
	tree := scapegoat.MustNew[int](0.9)
	tree.Insert(1)
	tree.Insert(2)

	out := render(tree)
	assert.Contains(t, out, "[R]  2")
	assert.NotContains(t, out, "[L]")
}

func TestSample(t *testing.T) {
	tree, err := sample(50, 0.6, 1)
	require.Nil(t, err)
	assert.Equal(t, 50, tree.Len())
	assert.Nil(t, tree.Valid())

	again, err := sample(50, 0.6, 1)
	require.Nil(t, err)
	assert.Equal(t, tree.Keys(), again.Keys())

	_, err = sample(10, 1.5, 1)
	assert.IsType(t, scapegoat.ErrInvalidAlpha{}, err)
}

func TestDescribe(t *testing.T) {
	tree := scapegoat.MustNew[int](0.5)
	for k := 1; k <= 7; k++ {
		tree.Insert(k)
	}

	assert.Equal(t, "keys=7 height=2 alpha=0.5 partial_rebuilds=4 rebuilt_nodes=19", describe(tree))
}
