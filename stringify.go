// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Tree.Fprint].
func (t *Tree[T, E]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical diagram of the current tree shape
// as string, just a wrapper for [Tree.Fprint].
// If Fprint returns an error, String panics.
func (t *Tree[T, E]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical diagram of the current tree shape
// with default formatted elements to w. If w is nil, Fprint panics.
// An empty tree writes nothing. Fprint does not splay.
//
// The root is on top, the children are tagged with L and R:
//
//	Godzilla
//	├── [L]  Frankenstein's Monster
//	└── [R]  Vegeta
func (t *Tree[T, E]) Fprint(w io.Writer) error {
	if w == nil {
		panic("nil writer")
	}

	if t == nil || t.root == nil {
		return nil
	}

	_, err := w.Write(t.shape().Bytes())
	return err
}

// branch pairs an element with its diagram branch.
type branch[E any] struct {
	e  *E
	tp treeprint.Tree
}

// shape builds the diagram, the tree must not be empty.
func (t *Tree[T, E]) shape() treeprint.Tree {
	var tag T

	root := treeprint.NewWithRoot(fmt.Sprint(t.root))

	// no recursion, degenerated splay trees are deep
	stack := []branch[E]{{t.root, root}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := tag.Node(b.e)
		if n.left != nil {
			stack = append(stack, branch[E]{n.left, b.tp.AddMetaBranch("L", fmt.Sprint(n.left))})
		}
		if n.right != nil {
			stack = append(stack, branch[E]{n.right, b.tp.AddMetaBranch("R", fmt.Sprint(n.right))})
		}
	}

	return root
}
