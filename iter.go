// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

// stackDepth is the preallocated traversal stack, splay trees are
// not balanced, deeper trees just spill to the heap.
const stackDepth = 64

// All may be used in a for/range loop to iterate
// through all elements in ascending sort order.
//
// All does not splay. Elements must not be inserted, found or removed
// during iteration, otherwise the behavior is undefined. Finding is a
// mutation for a splay tree!
//
// If the yield function returns false, the iteration ends prematurely.
func (t *Tree[T, E]) All(yield func(e *E) bool) {
	if t == nil {
		return
	}

	var tag T
	var buf [stackDepth]*E
	stack := buf[:0]

	cur := t.root
	for cur != nil || len(stack) > 0 {
		// go down left as far as possible
		for cur != nil {
			stack = append(stack, cur)
			cur = tag.Node(cur).left
		}

		// pop
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(cur) {
			// early exit
			return
		}

		cur = tag.Node(cur).right
	}
}

// Backward, like [Tree.All] but in descending sort order.
func (t *Tree[T, E]) Backward(yield func(e *E) bool) {
	if t == nil {
		return
	}

	var tag T
	var buf [stackDepth]*E
	stack := buf[:0]

	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = tag.Node(cur).right
		}

		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(cur) {
			return
		}

		cur = tag.Node(cur).left
	}
}

// Height returns the number of elements on the longest path from the
// root to a leaf, useful for statistics and tests. Height does not splay.
func (t *Tree[T, E]) Height() int {
	if t == nil || t.root == nil {
		return 0
	}

	var tag T
	var buf [stackDepth]depthItem[E]
	stack := append(buf[:0], depthItem[E]{t.root, 1})

	height := 0
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		height = max(height, it.depth)

		n := tag.Node(it.e)
		if n.left != nil {
			stack = append(stack, depthItem[E]{n.left, it.depth + 1})
		}
		if n.right != nil {
			stack = append(stack, depthItem[E]{n.right, it.depth + 1})
		}
	}

	return height
}

// depthItem is an element with its depth, for traversals.
type depthItem[E any] struct {
	e     *E
	depth int
}
