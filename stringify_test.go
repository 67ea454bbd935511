// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringEmpty(t *testing.T) {
	t.Parallel()

	var tree itemTree
	assert.Equal(t, "", tree.String())

	var nilTree *itemTree
	assert.Equal(t, "", nilTree.String())

	buf, err := tree.MarshalText()
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestStringShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []int
		find []int
		want string
	}{
		{
			name: "single",
			keys: []int{42},
			want: "42\n",
		},
		{
			name: "left spine",
			keys: []int{1, 2, 3},
			want: "3\n" +
				"└── [L]  2\n" +
				"    └── [L]  1\n",
		},
		{
			name: "balanced",
			keys: []int{1, 2, 3},
			find: []int{2},
			want: "2\n" +
				"├── [L]  1\n" +
				"└── [R]  3\n",
		},
		{
			name: "right spine",
			keys: []int{3, 2, 1},
			want: "1\n" +
				"└── [R]  2\n" +
				"    └── [R]  3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tree, _ := buildTree(tt.keys...)
			for _, k := range tt.find {
				_, ok := FindKey(tree, k)
				require.True(t, ok)
			}

			assert.Equal(t, tt.want, tree.String())

			// the diagram does not splay
			assert.Equal(t, tt.want, tree.String())

			text, err := tree.MarshalText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(text))
		})
	}
}

func TestStringMonsters(t *testing.T) {
	t.Parallel()

	var names Tree[byName, monster]
	for _, m := range []*monster{
		{name: "Frankenstein's Monster", health: 99},
		{name: "Vegeta", health: 9001},
		{name: "Godzilla", health: 2000},
	} {
		names.Insert(m)
	}

	want := "Godzilla\n" +
		"├── [L]  Frankenstein's Monster\n" +
		"└── [R]  Vegeta\n"
	assert.Equal(t, want, names.String())
}

func TestFprintNilWriter(t *testing.T) {
	t.Parallel()

	tree, _ := buildTree(1)
	assert.Panics(t, func() { _ = tree.Fprint(nil) })
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintWriteError(t *testing.T) {
	t.Parallel()

	tree, _ := buildTree(1, 2)
	assert.ErrorIs(t, tree.Fprint(failingWriter{}), errWrite)

	// empty tree writes nothing, no error
	var empty itemTree
	assert.NoError(t, empty.Fprint(failingWriter{}))

	w := new(bytes.Buffer)
	require.NoError(t, tree.Fprint(w))
	assert.Equal(t, tree.String(), w.String())
}
