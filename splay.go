// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package splay

import (
	"errors"
	"fmt"

	"github.com/gaissmai/splay/internal/value"
)

// cmpFunc reports the ordering of the query relative to the element e,
// negative if the query sorts before e, zero if equal, positive after.
type cmpFunc[E any] func(e *E) int

// greatest and least steer the splay to the max resp. min element.
func greatest[E any](*E) int { return 1 }
func least[E any](*E) int    { return -1 }

// splay is the simple top-down splay from Sleator and Tarjan,
// "Self-Adjusting Binary Search Trees", 1985.
//
// It descends from root towards the query, rotating on zig-zig steps
// and collecting the passed nodes in a left and a right spine, hung
// off the header node. The spines hold all nodes known to sort
// before resp. after the query. The descent stops at an empty child
// slot or at an element comparing equal. The last visited node becomes
// the new root, the spines are reassembled as its subtrees.
//
// The in-order sequence of the subtree is preserved. splay returns the
// new subtree root, root must not be nil.
func (t *Tree[T, E]) splay(root *E, cmp cmpFunc[E]) *E {
	var tag T

	// header.right collects the left spine, header.left the right spine,
	// l and r are the last nodes in the respective spine.
	var header Node[E]
	l, r := &header, &header

	cur := root
	cn := tag.Node(cur)

	for {
		c := cmp(cur)

		if c < 0 {
			child := cn.left
			if child == nil {
				break
			}
			chn := tag.Node(child)

			// zig-zig, rotate right
			if cmp(child) < 0 {
				cn.left = chn.right
				chn.right = cur
				cur, cn = child, chn

				if cn.left == nil {
					break
				}
				child = cn.left
				chn = tag.Node(child)
			}

			// link right
			r.left = cur
			r = cn
			cur, cn = child, chn
			continue
		}

		if c > 0 {
			child := cn.right
			if child == nil {
				break
			}
			chn := tag.Node(child)

			// zag-zag, rotate left
			if cmp(child) > 0 {
				cn.right = chn.left
				chn.left = cur
				cur, cn = child, chn

				if cn.right == nil {
					break
				}
				child = cn.right
				chn = tag.Node(child)
			}

			// link left
			l.right = cur
			l = cn
			cur, cn = child, chn
			continue
		}

		// equal
		break
	}

	// assemble
	l.right = cn.left
	r.left = cn.right
	cn.left = header.right
	cn.right = header.left

	return cur
}

// insert links e into the tree, e becomes the new root.
//
// With unique set, an existing equal element rejects e and insert
// returns false, else e is spliced in right after the equal element
// the descent stopped at.
func (t *Tree[T, E]) insert(e *E, unique bool) bool {
	var tag T

	if e == nil {
		panic(errNilElement)
	}

	n := tag.Node(e)
	if n.isLinked() || e == t.root {
		panic(alreadyLinkedError[T](e))
	}

	if t.root == nil {
		value.PanicOnNonZST[T]()

		t.root = e
		t.size = 1
		return true
	}

	cmp := func(x *E) int { return tag.Compare(e, x) }

	root := t.splay(t.root, cmp)
	t.root = root
	rn := tag.Node(root)

	c := cmp(root)
	if c == 0 && unique {
		return false
	}

	if c < 0 {
		n.left = rn.left
		n.right = root
		rn.left = nil
	} else {
		// greater or equal, equal keys are stable after the splayed root
		n.right = rn.right
		n.left = root
		rn.right = nil
	}

	t.root = e
	t.size++
	return true
}

// find splays the query to the root and reports a match.
func (t *Tree[T, E]) find(cmp cmpFunc[E]) (*E, bool) {
	if t.root == nil {
		return nil, false
	}

	t.root = t.splay(t.root, cmp)
	if cmp(t.root) != 0 {
		return nil, false
	}
	return t.root, true
}

// remove splays the query to the root and unlinks it on a match.
func (t *Tree[T, E]) remove(cmp cmpFunc[E]) (*E, bool) {
	if _, ok := t.find(cmp); !ok {
		return nil, false
	}
	return t.removeRoot(), true
}

// removeRoot unlinks the root, the maximum of the left subtree
// takes its place. The tree must not be empty.
func (t *Tree[T, E]) removeRoot() *E {
	var tag T

	old := t.root
	on := tag.Node(old)

	if on.left == nil {
		t.root = on.right
	} else {
		// after the splay the max has no right child
		root := t.splay(on.left, greatest[E])
		tag.Node(root).right = on.right
		t.root = root
	}

	on.left, on.right = nil, nil
	t.size--

	return old
}

var errNilElement = errors.New("splay: insert of nil element")

// alreadyLinkedError, an element is linked into at most one tree per tag.
func alreadyLinkedError[T any, E any](e *E) error {
	return fmt.Errorf("splay: element %p is already linked into a %T tree", e, *new(T))
}
