// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"iter"
)

// Tree is an intrusive splay tree of elements *E, ordered by the
// tag T. The zero value is an empty tree, ready to use.
//
// The tree never allocates, copies or moves elements, it only rewrites
// the [Node] links that T locates inside the elements. An element may
// be linked into many trees at once, but only into one tree per tag.
//
// All elements linked into one tree must share one lifetime, see the
// arena package. A Tree is not safe for concurrent use, not even Find:
// every lookup restructures the tree.
type Tree[T Tag[E], E any] struct {
	root *E
	size int
}

// Len returns the number of elements in the tree.
func (t *Tree[T, E]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T, E]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Root returns the current root element, the element of the last
// successful Insert, Find, Min or Max. Root does not splay.
func (t *Tree[T, E]) Root() (*E, bool) {
	if t == nil || t.root == nil {
		return nil, false
	}
	return t.root, true
}

// Insert adds e to the tree and splays it to the root.
//
// Elements comparing equal to an element already in the tree are
// admitted, e is placed next to the equal element the search stopped at.
// Use [Tree.InsertUnique] to reject duplicates.
//
// Insert panics if e is nil or already linked into a T tree, as far as
// this is detectable: a linked leaf element looks like an unlinked one.
// Inserting a linked element corrupts the tree.
func (t *Tree[T, E]) Insert(e *E) {
	t.insert(e, false)
}

// InsertUnique adds e to the tree unless an equal element is already
// in the tree. It reports whether e was inserted.
//
// If e is inserted it becomes the root, else the equal element is the
// new root and e stays unlinked.
func (t *Tree[T, E]) InsertUnique(e *E) bool {
	return t.insert(e, true)
}

// Find returns the element comparing equal to q, with q as a
// prototype element carrying the key. Find splays, the last visited
// element becomes the root, even on a miss.
func (t *Tree[T, E]) Find(q *E) (*E, bool) {
	var tag T
	return t.find(func(e *E) int { return tag.Compare(q, e) })
}

// FindFunc is like [Tree.Find], cmp compares the wanted key with the
// given element. cmp must be consistent with the tag's ordering.
func (t *Tree[T, E]) FindFunc(cmp func(e *E) int) (*E, bool) {
	return t.find(cmp)
}

// Remove unlinks and returns an element comparing equal to q.
// On a miss the tree content is unchanged, but splayed.
func (t *Tree[T, E]) Remove(q *E) (*E, bool) {
	var tag T
	return t.remove(func(e *E) int { return tag.Compare(q, e) })
}

// RemoveFunc is like [Tree.Remove] with a comparison func, see [Tree.FindFunc].
func (t *Tree[T, E]) RemoveFunc(cmp func(e *E) int) (*E, bool) {
	return t.remove(cmp)
}

// Min splays the minimum element to the root and returns it.
func (t *Tree[T, E]) Min() (*E, bool) {
	if t.root == nil {
		return nil, false
	}
	t.root = t.splay(t.root, least[E])
	return t.root, true
}

// Max splays the maximum element to the root and returns it.
func (t *Tree[T, E]) Max() (*E, bool) {
	if t.root == nil {
		return nil, false
	}
	t.root = t.splay(t.root, greatest[E])
	return t.root, true
}

// PopMin removes and returns the minimum element.
func (t *Tree[T, E]) PopMin() (*E, bool) {
	if _, ok := t.Min(); !ok {
		return nil, false
	}
	return t.removeRoot(), true
}

// PopMax removes and returns the maximum element.
func (t *Tree[T, E]) PopMax() (*E, bool) {
	if _, ok := t.Max(); !ok {
		return nil, false
	}
	return t.removeRoot(), true
}

// PopRoot removes and returns the current root element.
func (t *Tree[T, E]) PopRoot() (*E, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.removeRoot(), true
}

// Clear unlinks all elements and empties the tree.
// The elements may be inserted again afterwards, in this or another T tree.
func (t *Tree[T, E]) Clear() {
	var tag T

	// rotate left children up until the root has none,
	// then cut the root loose, O(n) without a stack
	cur := t.root
	for cur != nil {
		cn := tag.Node(cur)

		if left := cn.left; left != nil {
			ln := tag.Node(left)
			cn.left = ln.right
			ln.right = cur
			cur = left
			continue
		}

		next := cn.right
		cn.right = nil
		cur = next
	}

	t.root = nil
	t.size = 0
}

// InsertSeq inserts all elements of seq, see [Tree.Insert].
func (t *Tree[T, E]) InsertSeq(seq iter.Seq[*E]) {
	for e := range seq {
		t.Insert(e)
	}
}

// FindKey is like [Tree.Find] for trees whose tag can compare keys of type K.
func FindKey[K any, T KeyTag[K, E], E any](t *Tree[T, E], key K) (*E, bool) {
	var tag T
	return t.find(func(e *E) int { return tag.CompareKey(key, e) })
}

// RemoveKey is like [Tree.Remove] for trees whose tag can compare keys of type K.
func RemoveKey[K any, T KeyTag[K, E], E any](t *Tree[T, E], key K) (*E, bool) {
	var tag T
	return t.remove(func(e *E) int { return tag.CompareKey(key, e) })
}

// ContainsKey reports whether an element with key is in the tree,
// like [FindKey] it splays.
func ContainsKey[K any, T KeyTag[K, E], E any](t *Tree[T, E], key K) bool {
	_, ok := FindKey(t, key)
	return ok
}
