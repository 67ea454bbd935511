// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// dumpString is just a wrapper for dump.
func (t *Tree[T, E]) dumpString() string {
	w := new(strings.Builder)
	t.dump(w)

	return w.String()
}

// dump the tree statistics and all the elements in preorder to w,
// indented by depth and tagged with the side of the parent.
func (t *Tree[T, E]) dump(w io.Writer) {
	if t == nil {
		return
	}

	fmt.Fprintf(w, "### size(%d), height(%d)\n", t.size, t.Height())
	if t.root == nil {
		return
	}

	var tag T

	stack := []dumpFrame[E]{{t.root, "root", 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fmt.Fprintf(w, "%s[%s] %v\n", strings.Repeat(".", f.depth), f.side, f.e)

		// push right first, left is printed first
		n := tag.Node(f.e)
		if n.right != nil {
			stack = append(stack, dumpFrame[E]{n.right, "right", f.depth + 1})
		}
		if n.left != nil {
			stack = append(stack, dumpFrame[E]{n.left, "left", f.depth + 1})
		}
	}
}

type dumpFrame[E any] struct {
	e     *E
	side  string
	depth int
}
