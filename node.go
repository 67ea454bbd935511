// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

// Node is the intrusive link of an element for one tree tag.
//
// Embed one Node per tag the element participates in. The zero value
// is unlinked. The links are owned by the tree, they are rewritten by
// Insert, Find, Remove and friends and reset to nil when the element
// is removed from the tree.
//
// There is no parent link, the top-down splay never needs one.
type Node[E any] struct {
	left  *E
	right *E
}

// isLinked reports whether the node has at least one child.
// A linked leaf node is indistinguishable from an unlinked node.
func (n *Node[E]) isLinked() bool {
	return n.left != nil || n.right != nil
}

// Tag declares one ordering of elements of type E together with the
// embedded [Node] that realizes it.
//
// Implement Tag on a zero-sized marker type, e.g. struct{}; a tag
// with fields panics on first insert. Both methods must be pure:
//
//   - Node must always return the same Node for the same element.
//   - Compare must be a strict weak ordering, consistent across calls,
//     returning a negative number, zero or a positive number like
//     [cmp.Compare]. An inconsistent ordering silently corrupts the
//     tree shape, the tree cannot detect it.
type Tag[E any] interface {
	Node(e *E) *Node[E]
	Compare(a, b *E) int
}

// KeyTag is a [Tag] that can also compare a key of type K
// with elements, so the tree can be queried without constructing an
// element, see [FindKey] and [RemoveKey].
//
// CompareKey must be consistent with Compare: for every element x with
// key k, CompareKey(k, e) == Compare(x, e).
type KeyTag[K, E any] interface {
	Tag[E]
	CompareKey(k K, e *E) int
}
