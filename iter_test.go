// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaissmai/splay/internal/tests/random"
)

func TestAllBackwardRangeOverFunc(t *testing.T) {
	t.Parallel()

	prng := rand.New(rand.NewPCG(7, 7))
	keys := random.Keys(prng, workLoadN(), 500)
	tree, _ := buildTree(keys...)

	want := slices.Sorted(slices.Values(keys))

	t.Run("All", func(t *testing.T) {
		var got []int
		for e := range tree.All {
			got = append(got, e.Key)
		}
		assert.Equal(t, want, got)
	})

	t.Run("Backward", func(t *testing.T) {
		var got []int
		for e := range tree.Backward {
			got = append(got, e.Key)
		}
		slices.Reverse(got)
		assert.Equal(t, want, got)
	})

	t.Run("premature exit", func(t *testing.T) {
		for _, seq := range []func(func(*item) bool){tree.All, tree.Backward} {
			count := 0
			for range seq {
				count++
				if count >= 10 {
					break
				}
			}
			assert.Equal(t, 10, count)
		}
	})
}

func TestAllDeepTree(t *testing.T) {
	t.Parallel()

	// a degenerated tree, deeper than the preallocated stack
	n := 10 * stackDepth
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	tree, _ := buildTree(keys...)
	require.Equal(t, n, tree.Height())

	assert.Equal(t, keys, keysOf(tree))

	var back []int
	for e := range tree.Backward {
		back = append(back, e.Key)
	}
	slices.Reverse(back)
	assert.Equal(t, keys, back)
}

func TestAllDoesNotSplay(t *testing.T) {
	t.Parallel()

	tree, _ := buildTree(4, 2, 6, 1, 3, 5, 7)
	before := tree.dumpString()

	for range tree.All {
	}
	for range tree.Backward {
	}
	_ = tree.Height()

	assert.Equal(t, before, tree.dumpString())
}
